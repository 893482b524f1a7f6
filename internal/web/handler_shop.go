package web

import (
	"net/http"
	"strconv"
	"strings"
)

type createShopRequest struct {
	Name     string `json:"name"`
	Capacity *int64 `json:"capacity"`
}

func (s *Server) handleListShops(w http.ResponseWriter, r *http.Request) {
	shops, err := s.service.ListShops(r.Context())
	if err != nil {
		s.internalError(w, "failed to list shops", err)
		return
	}

	body := shopCollection{Links: collectionLinks(shopCollectionHref())}
	body.Embedded.Shops = make([]shopResource, 0, len(shops))
	for _, shop := range shops {
		body.Embedded.Shops = append(body.Embedded.Shops, toShopResource(shop))
	}

	s.writeJSON(w, http.StatusOK, body)
}

func (s *Server) handleCreateShop(w http.ResponseWriter, r *http.Request) {
	var req createShopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid request body"})
		return
	}

	fieldErrors := make(map[string]string)
	if strings.TrimSpace(req.Name) == "" {
		fieldErrors["name"] = `"Shop Name" is required`
	}
	if req.Capacity == nil {
		fieldErrors["capacity"] = `"Shop Capacity" is required`
	} else if *req.Capacity < 0 {
		fieldErrors["capacity"] = `"Shop Capacity" must not be negative`
	}
	if len(fieldErrors) > 0 {
		s.writeJSON(w, http.StatusBadRequest, validationResponse{Errors: fieldErrors})
		return
	}

	shop, err := s.service.CreateShop(r.Context(), strings.TrimSpace(req.Name), *req.Capacity)
	if err != nil {
		s.internalError(w, "failed to create shop", err)
		return
	}

	resource := toShopResource(shop)
	w.Header().Set("Location", resource.Links["self"].Href)
	s.writeJSON(w, http.StatusCreated, resource)
}

// parseShopID extracts the {id} path variable and returns it as int64.
func parseShopID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func (s *Server) internalError(w http.ResponseWriter, msg string, err error) {
	s.logger.Error(msg, "error", err)
	s.writeJSON(w, http.StatusInternalServerError, messageResponse{Message: msg})
}
