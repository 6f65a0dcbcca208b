package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jarad-ux/eccocontrol-center/internal/application/dto"
	"github.com/jarad-ux/eccocontrol-center/internal/domain"
	"github.com/jarad-ux/eccocontrol-center/internal/domain/entity"
	"github.com/jarad-ux/eccocontrol-center/internal/domain/repository"
	"github.com/jarad-ux/eccocontrol-center/pkg/jwt"
	"github.com/jarad-ux/eccocontrol-center/pkg/logger"
)

// RepUseCase CRUD and bootstrap logic for sales reps.
type RepUseCase struct {
	repo repository.SalesRepRepository
	log  *logger.Logger
}

// NewRepUseCase builds the use case.
func NewRepUseCase(repo repository.SalesRepRepository, log *logger.Logger) *RepUseCase {
	return &RepUseCase{repo: repo, log: log}
}

// List returns every rep, newest first.
func (uc *RepUseCase) List(ctx context.Context) ([]dto.SalesRepResponse, error) {
	reps, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalesRepResponse, 0, len(reps))
	for _, r := range reps {
		out = append(out, *toRepResponse(r))
	}
	return out, nil
}

// Me resolves the rep linked to the authenticated identity. When no rep
// exists for the subject AND the table is empty, the caller becomes the first
// admin with visibility over all divisions. The unique index on user_id makes
// a race between two simultaneous first logins collapse into one admin: the
// loser gets ErrDuplicate and re-reads.
// Returns (nil, nil) for an authenticated user with no rep record.
func (uc *RepUseCase) Me(ctx context.Context, id *jwt.Identity) (*dto.SalesRepResponse, error) {
	rep, err := uc.repo.GetByUserID(ctx, id.Subject)
	if err != nil {
		return nil, err
	}
	if rep != nil {
		return toRepResponse(rep), nil
	}

	count, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, nil
	}

	rep = &entity.SalesRep{
		ID:        uuid.New().String(),
		UserID:    id.Subject,
		Name:      id.DisplayName(),
		Role:      entity.RoleAdmin,
		Division:  entity.DivisionAll,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, rep); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			// Lost the bootstrap race; the other login created our record.
			return uc.Me(ctx, id)
		}
		return nil, err
	}
	uc.log.Info().Str("user_id", id.Subject).Str("name", rep.Name).Msg("auto-created first admin user")
	return toRepResponse(rep), nil
}

// Create creates a rep from an admin-entered payload.
func (uc *RepUseCase) Create(ctx context.Context, in dto.CreateSalesRepRequest) (*dto.SalesRepResponse, error) {
	if in.Division != entity.DivisionAll && !entity.ValidDivision(in.Division) {
		return nil, fmt.Errorf("%w: unknown division %q", domain.ErrInvalidInput, in.Division)
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	rep := &entity.SalesRep{
		ID:        uuid.New().String(),
		UserID:    in.UserID,
		Name:      in.Name,
		Role:      in.Role,
		Division:  in.Division,
		IsActive:  active,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, rep); err != nil {
		return nil, err
	}
	return toRepResponse(rep), nil
}

// Update applies a partial edit. Returns (nil, nil) when the rep is missing.
func (uc *RepUseCase) Update(ctx context.Context, id string, in dto.UpdateSalesRepRequest) (*dto.SalesRepResponse, error) {
	rep, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rep == nil {
		return nil, nil
	}
	if in.Name != nil {
		rep.Name = *in.Name
	}
	if in.Role != nil {
		rep.Role = *in.Role
	}
	if in.Division != nil {
		if *in.Division != entity.DivisionAll && !entity.ValidDivision(*in.Division) {
			return nil, fmt.Errorf("%w: unknown division %q", domain.ErrInvalidInput, *in.Division)
		}
		rep.Division = *in.Division
	}
	if in.IsActive != nil {
		rep.IsActive = *in.IsActive
	}
	if err := uc.repo.Update(ctx, rep); err != nil {
		return nil, err
	}
	return toRepResponse(rep), nil
}

func toRepResponse(r *entity.SalesRep) *dto.SalesRepResponse {
	if r == nil {
		return nil
	}
	return &dto.SalesRepResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		Name:      r.Name,
		Role:      r.Role,
		Division:  r.Division,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
	}
}
