package delivery_cancel_post

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

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
	requesterID, err := actor.FromRequest(r)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	idStr := mux.Vars(r)["id"]
	deliveryID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// Тело опционально: отмена без причины тоже валидна.
	var cancelDTO dto.CancelDeliveryRequest
	err = json.NewDecoder(r.Body).Decode(&cancelDTO)
	if err != nil && !errors.Is(err, io.EOF) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	cancelled, err := h.service.Cancel(r.Context(), deliveryID, requesterID, cancelDTO.Reason)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, delivery.ErrNotRequester):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, delivery.ErrNotPending):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.NewDelivery(cancelled))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
