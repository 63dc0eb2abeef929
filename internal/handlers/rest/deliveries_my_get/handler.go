package deliveries_my_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"delivery-marketplace/internal/entities"
	"delivery-marketplace/internal/handlers/rest/actor"
	"delivery-marketplace/internal/handlers/rest/dto"
	"delivery-marketplace/internal/service/delivery"
	"delivery-marketplace/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, err := actor.FromRequest(r)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	filter := entities.MineFilter(r.URL.Query().Get("role"))

	deliveries, err := h.service.GetMine(r.Context(), userID, filter)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidMineFilter):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.NewDeliveryList(deliveries))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
