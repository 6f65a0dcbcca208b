package repository

import (
	"context"

	"github.com/jarad-ux/eccocontrol-center/internal/domain/entity"
)

// SalesRepRepository persistence port for sales reps.
// Get* methods return (nil, nil) when the rep does not exist.
type SalesRepRepository interface {
	Create(ctx context.Context, rep *entity.SalesRep) error
	GetByID(ctx context.Context, id string) (*entity.SalesRep, error)
	GetByUserID(ctx context.Context, userID string) (*entity.SalesRep, error)
	List(ctx context.Context) ([]*entity.SalesRep, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, rep *entity.SalesRep) error
}
