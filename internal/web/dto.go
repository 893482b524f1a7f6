package web

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/whitecollar/shopgallery/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// entryDateLayout renders entry dates as dd/MM/yyyy hh:mm:ss a, e.g.
// "27/08/2026 03:41:07 PM".
const entryDateLayout = "02/01/2006 03:04:05 PM"

type shopResource struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int64  `json:"capacity"`
	Links    links  `json:"_links"`
}

type pictureResource struct {
	IDPicture    int64   `json:"idPicture"`
	IDShop       int64   `json:"idShop"`
	ShopCapacity int64   `json:"shopCapacity"`
	Name         string  `json:"name"`
	Author       string  `json:"author"`
	Price        float64 `json:"price"`
	EntryDate    string  `json:"entryDate"`
	Links        links   `json:"_links"`
}

type shopCollection struct {
	Embedded struct {
		Shops []shopResource `json:"shops"`
	} `json:"_embedded"`
	Links links `json:"_links"`
}

type pictureCollection struct {
	Embedded struct {
		Pictures []pictureResource `json:"pictures"`
	} `json:"_embedded"`
	Links links `json:"_links"`
}

func toShopResource(shop *domain.Shop) shopResource {
	return shopResource{
		ID:       shop.ID,
		Name:     shop.Name,
		Capacity: shop.Capacity,
		Links:    shopLinks(),
	}
}

// toPictureResource denormalizes the owning shop's capacity into the
// representation; it is a read-time projection, not stored state.
func toPictureResource(picture *domain.Picture, shop *domain.Shop) pictureResource {
	return pictureResource{
		IDPicture:    picture.ID,
		IDShop:       picture.ShopID,
		ShopCapacity: shop.Capacity,
		Name:         picture.Name,
		Author:       picture.Author,
		Price:        picture.Price,
		EntryDate:    picture.EntryDate.Format(entryDateLayout),
		Links:        pictureLinks(picture.ShopID),
	}
}

// problemResponse is the body of a capacity rejection.
type problemResponse struct {
	Code   string `json:"code"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type validationResponse struct {
	Errors map[string]string `json:"errors"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}
