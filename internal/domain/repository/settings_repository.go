package repository

import (
	"context"

	"github.com/jarad-ux/eccocontrol-center/internal/domain/entity"
)

// SettingsRepository persistence port for the single app_settings row.
// Get returns (nil, nil) when no row exists yet.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.AppSettings, error)
	Create(ctx context.Context, s *entity.AppSettings) error
	Update(ctx context.Context, s *entity.AppSettings) error
}
