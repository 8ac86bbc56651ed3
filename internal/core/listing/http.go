// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package listing

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/douren/internal/platform/constants"
	requestutil "github.com/taibuivan/douren/internal/platform/request"
	"github.com/taibuivan/douren/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public listing endpoints.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/artists", handler.listArtists)
	router.Get("/events/{eventRef}/artists", handler.listEventArtists)
}

// RegisterAdminRoutes mounts cache maintenance. The caller guards it with auth.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Delete("/cache", handler.purgeCache)
}

func (handler *Handler) listArtists(writer http.ResponseWriter, request *http.Request) {
	params := ParseParams(request.URL.Query())

	envelope, err := handler.service.ListArtists(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Page(writer, envelope)
}

func (handler *Handler) listEventArtists(writer http.ResponseWriter, request *http.Request) {
	eventID, eventName := requestutil.Ref(request, "eventRef")
	params := ParseParams(request.URL.Query()).WithEvent(eventID, eventName)

	envelope, err := handler.service.ListEventArtists(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Page(writer, envelope)
}

func (handler *Handler) purgeCache(writer http.ResponseWriter, request *http.Request) {
	target := request.URL.Query().Get("prefix")
	if target == "" {
		target = PurgeAll
	}

	deleted, err := handler.service.PurgeCache(request.Context(), target)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]int{constants.FieldDeleted: deleted})
}
