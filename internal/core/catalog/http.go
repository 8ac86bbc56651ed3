// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/douren/internal/platform/request"
	"github.com/taibuivan/douren/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/tags", handler.listTags)
	router.Get("/events", handler.listEvents)
	router.Get("/events/{eventRef}", handler.getEvent)
}

func (handler *Handler) listTags(writer http.ResponseWriter, request *http.Request) {
	tags, err := handler.service.ListTags(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tags)
}

func (handler *Handler) listEvents(writer http.ResponseWriter, request *http.Request) {
	events, err := handler.service.ListEvents(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, events)
}

func (handler *Handler) getEvent(writer http.ResponseWriter, request *http.Request) {
	id, name := requestutil.Ref(request, "eventRef")

	event, err := handler.service.GetEvent(request.Context(), id, name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, event)
}
