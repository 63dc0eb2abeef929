package delivery_post

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
	requesterID, err := actor.FromRequest(r)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var createDTO dto.CreateDeliveryRequest
	err = json.NewDecoder(r.Body).Decode(&createDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	draft := entities.DeliveryDraft{
		Title:       createDTO.Title,
		Description: createDTO.Description,
		Pickup: entities.Location{
			Address: createDTO.Pickup.Address,
			Lat:     createDTO.Pickup.Lat,
			Lng:     createDTO.Pickup.Lng,
		},
		Dropoff: entities.Location{
			Address: createDTO.Dropoff.Address,
			Lat:     createDTO.Dropoff.Lat,
			Lng:     createDTO.Dropoff.Lng,
		},
		Package: entities.PackageDetails{
			Weight:     createDTO.Package.Weight,
			Dimensions: createDTO.Package.Dimensions,
			Fragile:    createDTO.Package.Fragile,
		},
		Images:           createDTO.Images,
		AcceptDeadline:   createDTO.AcceptDeadline,
		DeliveryDeadline: createDTO.DeliveryDeadline,
		Price:            createDTO.Price,
	}

	created, err := h.service.Create(r.Context(), requesterID, draft)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrMissingRequiredFields),
			errors.Is(err, delivery.ErrInvalidPrice),
			errors.Is(err, delivery.ErrAcceptDeadlineInPast),
			errors.Is(err, delivery.ErrDeliveryDeadlineTooEarly):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.NewDelivery(created))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
