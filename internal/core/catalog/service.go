// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"log/slog"

	"github.com/taibuivan/douren/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListTags(ctx context.Context) ([]Tag, error) {
	return service.repo.ListTags(ctx)
}

func (service *Service) ListEvents(ctx context.Context) ([]Event, error) {
	return service.repo.ListEvents(ctx)
}

// GetEvent looks an event up by ID when id is set, otherwise by name.
func (service *Service) GetEvent(ctx context.Context, id *int64, name string) (*Event, error) {
	if id != nil {
		return service.repo.GetEventByID(ctx, *id)
	}

	if err := (&validate.Validator{}).Required("eventRef", name).Err(); err != nil {
		return nil, err
	}
	return service.repo.GetEventByName(ctx, name)
}
