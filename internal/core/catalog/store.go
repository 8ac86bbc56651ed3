// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "context"

type Repository interface {
	ListTags(ctx context.Context) ([]Tag, error)
	ListEvents(ctx context.Context) ([]Event, error)
	GetEventByID(ctx context.Context, id int64) (*Event, error)
	GetEventByName(ctx context.Context, name string) (*Event, error)
}
