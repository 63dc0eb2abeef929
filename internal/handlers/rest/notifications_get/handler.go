package notifications_get

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

	page, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.NotificationPageResponse{
		Notifications: dto.NewNotificationList(page.Notifications),
		Total:         page.Total,
		TotalPages:    page.TotalPages,
		Page:          page.Page,
		UnreadCount:   page.UnreadCount,
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

func parseFilter(r *http.Request) (entities.NotificationFilter, error) {
	query := r.URL.Query()

	var filter entities.NotificationFilter

	if raw := query.Get("read"); raw != "" {
		read, err := strconv.ParseBool(raw)
		if err != nil {
			return entities.NotificationFilter{}, err
		}
		filter.Read = &read
	}

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return entities.NotificationFilter{}, err
		}
		filter.Page = page
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return entities.NotificationFilter{}, err
		}
		filter.Limit = limit
	}

	return filter, nil
}
