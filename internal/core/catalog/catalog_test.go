// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/douren/internal/core/catalog"
	"github.com/taibuivan/douren/internal/platform/apperr"
)

type fakeRepository struct {
	tags   []catalog.Tag
	events []catalog.Event
}

func (repo *fakeRepository) ListTags(context.Context) ([]catalog.Tag, error) {
	return repo.tags, nil
}

func (repo *fakeRepository) ListEvents(context.Context) ([]catalog.Event, error) {
	return repo.events, nil
}

func (repo *fakeRepository) GetEventByID(_ context.Context, id int64) (*catalog.Event, error) {
	for _, event := range repo.events {
		if event.ID == id {
			return &event, nil
		}
	}
	return nil, apperr.NotFound("Event")
}

func (repo *fakeRepository) GetEventByName(_ context.Context, name string) (*catalog.Event, error) {
	for _, event := range repo.events {
		if event.Name == name {
			return &event, nil
		}
	}
	return nil, apperr.NotFound("Event")
}

func newRouter() chi.Router {
	ranked := int64(15)
	repo := &fakeRepository{
		tags: []catalog.Tag{
			{Name: "原創", Count: &ranked, Index: 1},
			{Name: "測試", Count: nil, Index: 2},
		},
		events: []catalog.Event{{ID: 2, Name: "CWT"}, {ID: 1, Name: "FF42"}},
	}
	handler := catalog.NewHandler(catalog.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil))))

	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func get(router http.Handler, target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	return recorder
}

/*
TestHandler_ListTags wraps the ranked tag list in the data envelope.
*/
func TestHandler_ListTags(t *testing.T) {
	recorder := get(newRouter(), "/tags")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":[
		{"tag":"原創","count":15,"index":1},
		{"tag":"測試","count":null,"index":2}
	]}`, recorder.Body.String())
}

/*
TestHandler_ListEvents returns every event.
*/
func TestHandler_ListEvents(t *testing.T) {
	recorder := get(newRouter(), "/events")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":[{"id":2,"name":"CWT"},{"id":1,"name":"FF42"}]}`, recorder.Body.String())
}

/*
TestHandler_GetEvent resolves numeric references as IDs and anything else as names.
*/
func TestHandler_GetEvent(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantID     int64
	}{
		{"by_id", "/events/1", http.StatusOK, 1},
		{"by_name", "/events/CWT", http.StatusOK, 2},
		{"zero_is_a_name", "/events/0", http.StatusNotFound, 0},
		{"missing_id", "/events/99", http.StatusNotFound, 0},
		{"missing_name", "/events/Nope", http.StatusNotFound, 0},
	}

	router := newRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := get(router, tt.target)
			require.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus != http.StatusOK {
				assert.Contains(t, recorder.Body.String(), "NOT_FOUND")
				return
			}

			var body struct {
				Data catalog.Event `json:"data"`
			}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.wantID, body.Data.ID)
		})
	}
}

/*
TestService_GetEvent_RequiresReference rejects an empty name.
*/
func TestService_GetEvent_RequiresReference(t *testing.T) {
	service := catalog.NewService(&fakeRepository{}, slog.Default())

	_, err := service.GetEvent(context.Background(), nil, "")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}
