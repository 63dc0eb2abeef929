package deliveries_available_get

import (
	"encoding/json"
	"net/http"
	"strconv"

	"delivery-marketplace/internal/entities"
	"delivery-marketplace/internal/handlers/rest/actor"
	"delivery-marketplace/internal/handlers/rest/dto"
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

	filter, err := parseFilter(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	page, err := h.service.ListAvailable(r.Context(), userID, filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.DeliveryPageResponse{
		Deliveries: dto.NewDeliveryList(page.Deliveries),
		Total:      page.Total,
		TotalPages: page.TotalPages,
		Page:       page.Page,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func parseFilter(r *http.Request) (entities.AvailableFilter, error) {
	query := r.URL.Query()

	filter := entities.AvailableFilter{
		Search: query.Get("search"),
	}

	if raw := query.Get("min_price"); raw != "" {
		minPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return entities.AvailableFilter{}, err
		}
		filter.MinPrice = &minPrice
	}

	if raw := query.Get("max_price"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return entities.AvailableFilter{}, err
		}
		filter.MaxPrice = &maxPrice
	}

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return entities.AvailableFilter{}, err
		}
		filter.Page = page
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return entities.AvailableFilter{}, err
		}
		filter.Limit = limit
	}

	return filter, nil
}
