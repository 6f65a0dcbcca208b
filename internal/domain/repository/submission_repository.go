package repository

import (
	"context"
	"time"

	"github.com/jarad-ux/eccocontrol-center/internal/domain/entity"
)

// SubmissionFilters narrows a submission listing. Zero values mean
// "no filter"; Division "all" is treated as unfiltered by the caller.
// Date bounds are inclusive on submitted_at.
type SubmissionFilters struct {
	Division  string
	StartDate *time.Time
	EndDate   *time.Time
}

// SubmissionRepository persistence port for sales submissions.
// GetByID returns (nil, nil) when the submission does not exist.
type SubmissionRepository interface {
	Create(ctx context.Context, s *entity.Submission) error
	GetByID(ctx context.Context, id string) (*entity.Submission, error)
	List(ctx context.Context, filters SubmissionFilters) ([]*entity.Submission, error)
	Update(ctx context.Context, s *entity.Submission) error
	// UpdateStatus advances the sync status; syncedAt is only written when
	// non-nil. This is the second write of the create/fan-out sequence.
	UpdateStatus(ctx context.Context, id, status string, syncedAt *time.Time) error
}
