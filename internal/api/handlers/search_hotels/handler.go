package search_hotels

import (
	"net/http"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBooking/internal/service/hotels/models"
)

type Handler struct {
	service HotelService
	logger  Logger
}

func NewHandler(service HotelService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels?title=&country=&state=&city=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.SearchHotelsRequest{
		Title:   handlers.OptionalQuery(r, "title"),
		Country: handlers.OptionalQuery(r, "country"),
		State:   handlers.OptionalQuery(r, "state"),
		City:    handlers.OptionalQuery(r, "city"),
	}

	result, err := h.service.Search(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /hotels - Failed to search hotels: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /hotels - Hotels found: count=%d", len(result.Hotels))
	handlers.RespondJSON(w, http.StatusOK, result.Hotels)
}
