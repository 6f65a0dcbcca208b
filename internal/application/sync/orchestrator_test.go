package sync

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jarad-ux/eccocontrol-center/internal/domain/entity"
	"github.com/jarad-ux/eccocontrol-center/internal/domain/repository"
	"github.com/jarad-ux/eccocontrol-center/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeSubmissionRepo struct {
	mu   sync.Mutex
	subs map[string]*entity.Submission
}

func newFakeSubmissionRepo(subs ...*entity.Submission) *fakeSubmissionRepo {
	r := &fakeSubmissionRepo{subs: map[string]*entity.Submission{}}
	for _, s := range subs {
		r.subs[s.ID] = s
	}
	return r
}

func (r *fakeSubmissionRepo) Create(_ context.Context, s *entity.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs[s.ID] = s
	return nil
}

func (r *fakeSubmissionRepo) GetByID(_ context.Context, id string) (*entity.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.subs[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSubmissionRepo) List(_ context.Context, _ repository.SubmissionFilters) ([]*entity.Submission, error) {
	return nil, nil
}

func (r *fakeSubmissionRepo) Update(_ context.Context, s *entity.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs[s.ID] = s
	return nil
}

func (r *fakeSubmissionRepo) UpdateStatus(_ context.Context, id, status string, syncedAt *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.subs[id]
	if !ok {
		return errors.New("not found")
	}
	s.Status = status
	if syncedAt != nil {
		s.SyncedAt = syncedAt
	}
	return nil
}

type fakeSettingsRepo struct {
	settings *entity.AppSettings
}

func (r *fakeSettingsRepo) Get(_ context.Context) (*entity.AppSettings, error) {
	return r.settings, nil
}
func (r *fakeSettingsRepo) Create(_ context.Context, s *entity.AppSettings) error { return nil }
func (r *fakeSettingsRepo) Update(_ context.Context, s *entity.AppSettings) error { return nil }

// fakeWebhook records every attempted URL and fails the ones listed in fail.
type fakeWebhook struct {
	mu    sync.Mutex
	sent  []string
	fail  map[string]bool
	token map[string]string // url -> bearer token it was called with
}

func newFakeWebhook(failURLs ...string) *fakeWebhook {
	f := &fakeWebhook{fail: map[string]bool{}, token: map[string]string{}}
	for _, u := range failURLs {
		f.fail[u] = true
	}
	return f
}

func (f *fakeWebhook) Send(_ context.Context, url, bearerToken string, _ *entity.Submission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, url)
	f.token[url] = bearerToken
	if f.fail[url] {
		return errors.New("connection refused")
	}
	return nil
}

type fakeDispatch struct {
	calls int
	fail  bool
}

func (f *fakeDispatch) CreateJob(_ context.Context, _, _ string, _ *entity.Submission) error {
	f.calls++
	if f.fail {
		return errors.New("relay unavailable")
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

func pendingSubmission(id, leadSource string) *entity.Submission {
	return &entity.Submission{
		ID:                id,
		CustomerFirstName: "Dana",
		CustomerLastName:  "Reed",
		CustomerPhone:     "555-0147",
		CustomerAddress:   "12 Pine St",
		CustomerCity:      "Las Vegas",
		CustomerState:     "NV",
		CustomerZip:       "89101",
		EquipmentType:     "heat_pump",
		Division:          "NV",
		LeadSource:        leadSource,
		SaleAmount:        decimal.NewFromInt(8200),
		SubmittedBy:       "user-1",
		SubmittedByName:   "Alex Field",
		SubmittedAt:       time.Now().Add(-time.Minute),
		Status:            entity.StatusPending,
	}
}

func newTestOrchestrator(repo *fakeSubmissionRepo, settings *entity.AppSettings, wh *fakeWebhook, disp *fakeDispatch) *Orchestrator {
	return NewOrchestrator(repo, &fakeSettingsRepo{settings: settings}, wh, disp, nil, nil, testLogger())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestProcess_NothingConfigured_StaysPending(t *testing.T) {
	sub := pendingSubmission("s1", entity.LeadSourceCompany)
	repo := newFakeSubmissionRepo(sub)
	wh := newFakeWebhook()
	o := newTestOrchestrator(repo, nil, wh, nil)

	o.process("s1")

	got, _ := repo.GetByID(context.Background(), "s1")
	assert.Equal(t, entity.StatusPending, got.Status)
	assert.Nil(t, got.SyncedAt)
	assert.Empty(t, wh.sent, "no endpoint configured, nothing should be attempted")
}

func TestProcess_PrimarySucceeds_MarksSynced(t *testing.T) {
	sub := pendingSubmission("s1", entity.LeadSourceCompany)
	repo := newFakeSubmissionRepo(sub)
	wh := newFakeWebhook()
	o := newTestOrchestrator(repo, &entity.AppSettings{WebhookURL: "https://hooks.example.com/a"}, wh, nil)

	o.process("s1")

	got, _ := repo.GetByID(context.Background(), "s1")
	assert.Equal(t, entity.StatusSynced, got.Status)
	require.NotNil(t, got.SyncedAt)
	assert.False(t, got.SyncedAt.Before(got.SubmittedAt), "syncedAt must be >= submittedAt")
	assert.Equal(t, []string{"https://hooks.example.com/a"}, wh.sent)
}

func TestProcess_AllConfiguredFail_MarksError(t *testing.T) {
	sub := pendingSubmission("s1", entity.LeadSourceCompany)
	repo := newFakeSubmissionRepo(sub)
	wh := newFakeWebhook("https://hooks.example.com/a", "https://lindy.example.com/b")
	settings := &entity.AppSettings{
		WebhookURL:      "https://hooks.example.com/a",
		LindyWebhookURL: "https://lindy.example.com/b",
	}
	o := newTestOrchestrator(repo, settings, wh, nil)

	o.process("s1")

	got, _ := repo.GetByID(context.Background(), "s1")
	assert.Equal(t, entity.StatusError, got.Status)
	assert.Nil(t, got.SyncedAt)
	assert.Len(t, wh.sent, 2, "a failure in one endpoint must not block the next")
}

func TestProcess_OneOfTwoSucceeds_MarksSynced(t *testing.T) {
	sub := pendingSubmission("s1", entity.LeadSourceCompany)
	repo := newFakeSubmissionRepo(sub)
	wh := newFakeWebhook("https://hooks.example.com/a") // primary fails, lindy works
	settings := &entity.AppSettings{
		WebhookURL:      "https://hooks.example.com/a",
		LindyWebhookURL: "https://lindy.example.com/b",
		LindyAPIKey:     "lk-123",
	}
	o := newTestOrchestrator(repo, settings, wh, nil)

	o.process("s1")

	got, _ := repo.GetByID(context.Background(), "s1")
	assert.Equal(t, entity.StatusSynced, got.Status)
	assert.Equal(t, "lk-123", wh.token["https://lindy.example.com/b"],
		"lindy delivery must carry its bearer token")
	assert.Equal(t, "", wh.token["https://hooks.example.com/a"],
		"primary webhook has no bearer token")
}

func TestProcess_AlreadyProcessed_Skips(t *testing.T) {
	sub := pendingSubmission("s1", entity.LeadSourceCompany)
	sub.Status = entity.StatusSynced
	repo := newFakeSubmissionRepo(sub)
	wh := newFakeWebhook()
	o := newTestOrchestrator(repo, &entity.AppSettings{WebhookURL: "https://hooks.example.com/a"}, wh, nil)

	o.process("s1")

	assert.Empty(t, wh.sent, "a non-pending row must not be re-delivered")
}

func TestProcess_SelfGeneratedLead_CreatesDispatchJob(t *testing.T) {
	sub := pendingSubmission("s1", entity.LeadSourceSelf)
	repo := newFakeSubmissionRepo(sub)
	wh := newFakeWebhook()
	disp := &fakeDispatch{}
	settings := &entity.AppSettings{
		WebhookURL:   "https://hooks.example.com/a",
		MCPServerURL: "https://relay.example.com",
		MCPAPIKey:    "mk-1",
	}
	o := newTestOrchestrator(repo, settings, wh, disp)

	o.process("s1")

	assert.Equal(t, 1, disp.calls)
	got, _ := repo.GetByID(context.Background(), "s1")
	assert.Equal(t, entity.StatusSynced, got.Status)
}

func TestProcess_CompanyLead_SkipsDispatch(t *testing.T) {
	sub := pendingSubmission("s1", entity.LeadSourceCompany)
	repo := newFakeSubmissionRepo(sub)
	disp := &fakeDispatch{}
	settings := &entity.AppSettings{
		WebhookURL:   "https://hooks.example.com/a",
		MCPServerURL: "https://relay.example.com",
		MCPAPIKey:    "mk-1",
	}
	o := newTestOrchestrator(repo, settings, newFakeWebhook(), disp)

	o.process("s1")

	assert.Zero(t, disp.calls, "dispatch jobs are only for self-generated leads")
}

func TestProcess_DispatchFailure_DoesNotAffectStatus(t *testing.T) {
	sub := pendingSubmission("s1", entity.LeadSourceSelf)
	repo := newFakeSubmissionRepo(sub)
	disp := &fakeDispatch{fail: true}
	settings := &entity.AppSettings{
		WebhookURL:   "https://hooks.example.com/a",
		MCPServerURL: "https://relay.example.com",
		MCPAPIKey:    "mk-1",
	}
	o := newTestOrchestrator(repo, settings, newFakeWebhook(), disp)

	o.process("s1")

	got, _ := repo.GetByID(context.Background(), "s1")
	assert.Equal(t, entity.StatusSynced, got.Status,
		"relay failure is best-effort and must not degrade the sync status")
}

func TestProcess_OnlyLindyConfigured_FailureMarksError(t *testing.T) {
	sub := pendingSubmission("s1", entity.LeadSourceCompany)
	repo := newFakeSubmissionRepo(sub)
	wh := newFakeWebhook("https://lindy.example.com/b")
	o := newTestOrchestrator(repo, &entity.AppSettings{LindyWebhookURL: "https://lindy.example.com/b"}, wh, nil)

	o.process("s1")

	got, _ := repo.GetByID(context.Background(), "s1")
	assert.Equal(t, entity.StatusError, got.Status)
}
