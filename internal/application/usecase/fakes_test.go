package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/jarad-ux/eccocontrol-center/internal/domain"
	"github.com/jarad-ux/eccocontrol-center/internal/domain/entity"
	"github.com/jarad-ux/eccocontrol-center/internal/domain/repository"
	"github.com/jarad-ux/eccocontrol-center/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

// ──────────────────────────────────────────────────────────────────────────────
// In-memory repositories
// ──────────────────────────────────────────────────────────────────────────────

type memRepRepo struct {
	byID     map[string]*entity.SalesRep
	byUserID map[string]*entity.SalesRep
}

func newMemRepRepo() *memRepRepo {
	return &memRepRepo{
		byID:     map[string]*entity.SalesRep{},
		byUserID: map[string]*entity.SalesRep{},
	}
}

func (r *memRepRepo) Create(_ context.Context, rep *entity.SalesRep) error {
	if _, ok := r.byUserID[rep.UserID]; ok {
		return domain.ErrDuplicate
	}
	cp := *rep
	r.byID[rep.ID] = &cp
	r.byUserID[rep.UserID] = &cp
	return nil
}

func (r *memRepRepo) GetByID(_ context.Context, id string) (*entity.SalesRep, error) {
	rep, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *rep
	return &cp, nil
}

func (r *memRepRepo) GetByUserID(_ context.Context, userID string) (*entity.SalesRep, error) {
	rep, ok := r.byUserID[userID]
	if !ok {
		return nil, nil
	}
	cp := *rep
	return &cp, nil
}

func (r *memRepRepo) List(_ context.Context) ([]*entity.SalesRep, error) {
	out := make([]*entity.SalesRep, 0, len(r.byID))
	for _, rep := range r.byID {
		cp := *rep
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memRepRepo) Count(_ context.Context) (int, error) {
	return len(r.byID), nil
}

func (r *memRepRepo) Update(_ context.Context, rep *entity.SalesRep) error {
	cp := *rep
	r.byID[rep.ID] = &cp
	r.byUserID[rep.UserID] = &cp
	return nil
}

type memSubmissionRepo struct {
	subs []*entity.Submission
}

func (r *memSubmissionRepo) Create(_ context.Context, s *entity.Submission) error {
	cp := *s
	r.subs = append(r.subs, &cp)
	return nil
}

func (r *memSubmissionRepo) GetByID(_ context.Context, id string) (*entity.Submission, error) {
	for _, s := range r.subs {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memSubmissionRepo) List(_ context.Context, f repository.SubmissionFilters) ([]*entity.Submission, error) {
	out := []*entity.Submission{}
	for _, s := range r.subs {
		if f.Division != "" && s.Division != f.Division {
			continue
		}
		if f.StartDate != nil && s.SubmittedAt.Before(*f.StartDate) {
			continue
		}
		if f.EndDate != nil && s.SubmittedAt.After(*f.EndDate) {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memSubmissionRepo) Update(_ context.Context, s *entity.Submission) error {
	for i, existing := range r.subs {
		if existing.ID == s.ID {
			cp := *s
			r.subs[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memSubmissionRepo) UpdateStatus(_ context.Context, id, status string, syncedAt *time.Time) error {
	for _, s := range r.subs {
		if s.ID == id {
			s.Status = status
			if syncedAt != nil {
				s.SyncedAt = syncedAt
			}
			return nil
		}
	}
	return domain.ErrNotFound
}

type memSettingsRepo struct {
	row *entity.AppSettings
}

func (r *memSettingsRepo) Get(_ context.Context) (*entity.AppSettings, error) {
	if r.row == nil {
		return nil, nil
	}
	cp := *r.row
	return &cp, nil
}

func (r *memSettingsRepo) Create(_ context.Context, s *entity.AppSettings) error {
	cp := *s
	r.row = &cp
	return nil
}

func (r *memSettingsRepo) Update(_ context.Context, s *entity.AppSettings) error {
	cp := *s
	r.row = &cp
	return nil
}

// recordingSyncer captures which submissions were handed to the fan-out.
type recordingSyncer struct {
	ids []string
}

func (s *recordingSyncer) ProcessAsync(submissionID string) {
	s.ids = append(s.ids, submissionID)
}
