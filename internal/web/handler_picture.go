package web

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/whitecollar/shopgallery/internal/domain"
	"github.com/whitecollar/shopgallery/internal/service"
)

type createPictureRequest struct {
	Name   string   `json:"name"`
	Author string   `json:"author"`
	Price  *float64 `json:"price"`
	// Optional; when absent the entry date is stamped at admission time.
	EntryDate string `json:"entryDate"`
}

func (s *Server) handleListPictures(w http.ResponseWriter, r *http.Request) {
	shopID, err := parseShopID(r)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid shop id"})
		return
	}

	shop, pictures, err := s.service.ListPicturesByShop(r.Context(), shopID)
	if err != nil {
		s.writeServiceError(w, err, "failed to list pictures")
		return
	}

	if len(pictures) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	body := pictureCollection{Links: collectionLinks(shopPicturesHref(shopID))}
	body.Embedded.Pictures = make([]pictureResource, 0, len(pictures))
	for _, picture := range pictures {
		body.Embedded.Pictures = append(body.Embedded.Pictures, toPictureResource(picture, shop))
	}

	s.writeJSON(w, http.StatusOK, body)
}

func (s *Server) handleAdmitPicture(w http.ResponseWriter, r *http.Request) {
	shopID, err := parseShopID(r)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid shop id"})
		return
	}

	var req createPictureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid request body"})
		return
	}

	fieldErrors := make(map[string]string)
	if strings.TrimSpace(req.Name) == "" {
		fieldErrors["name"] = "name is required"
	}
	if req.Price == nil {
		fieldErrors["price"] = "price is required"
	} else if *req.Price < 0 {
		fieldErrors["price"] = "price must not be negative"
	}

	var entryDate time.Time
	if req.EntryDate != "" {
		entryDate, err = time.Parse(entryDateLayout, req.EntryDate)
		if err != nil {
			fieldErrors["entryDate"] = "entryDate must match dd/MM/yyyy hh:mm:ss a"
		}
	}
	if len(fieldErrors) > 0 {
		s.writeJSON(w, http.StatusBadRequest, validationResponse{Errors: fieldErrors})
		return
	}

	candidate := &domain.Picture{
		Name:      strings.TrimSpace(req.Name),
		Author:    strings.TrimSpace(req.Author),
		Price:     *req.Price,
		EntryDate: entryDate,
	}

	picture, shop, err := s.service.AdmitPicture(r.Context(), shopID, candidate)
	if err != nil {
		s.writeServiceError(w, err, "failed to admit picture")
		return
	}

	resource := toPictureResource(picture, shop)
	w.Header().Set("Location", resource.Links["self"].Href)
	s.writeJSON(w, http.StatusCreated, resource)
}

func (s *Server) handleRemovePictures(w http.ResponseWriter, r *http.Request) {
	shopID, err := parseShopID(r)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid shop id"})
		return
	}

	if err := s.service.RemovePictures(r.Context(), shopID); err != nil {
		s.writeServiceError(w, err, "failed to remove pictures")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeServiceError maps the service's domain errors onto the HTTP contract:
// unknown shop is 404, a full shop is 400 with the fixed problem document,
// anything else is an opaque 500.
func (s *Server) writeServiceError(w http.ResponseWriter, err error, msg string) {
	var notFound *service.ShopNotFoundError
	if errors.As(err, &notFound) {
		s.writeJSON(w, http.StatusNotFound, messageResponse{Message: notFound.Error()})
		return
	}

	var capacity *service.CapacityExceededError
	if errors.As(err, &capacity) {
		s.writeJSON(w, http.StatusBadRequest, problemResponse{
			Code:   capacity.Code(),
			Title:  service.CapacityExceededTitle,
			Detail: service.CapacityExceededDetail,
		})
		return
	}

	s.internalError(w, msg, err)
}
