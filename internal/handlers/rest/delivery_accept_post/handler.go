package delivery_accept_post

import (
	"encoding/json"
	"errors"
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
	acceptorID, err := actor.FromRequest(r)
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

	accepted, err := h.service.Accept(r.Context(), deliveryID, acceptorID)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, delivery.ErrOwnDelivery):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, delivery.ErrAcceptDeadlinePassed):
			w.WriteHeader(http.StatusGone)
		case errors.Is(err, delivery.ErrNotPending),
			errors.Is(err, delivery.ErrScheduleConflict),
			errors.Is(err, delivery.ErrAlreadyTaken):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.NewDelivery(accepted))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
