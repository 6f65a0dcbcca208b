// Package sync forwards persisted submissions to the configured third-party
// endpoints and records the aggregate outcome on the row.
package sync

import (
	"context"
	"time"

	"github.com/jarad-ux/eccocontrol-center/internal/domain/entity"
	"github.com/jarad-ux/eccocontrol-center/internal/domain/repository"
	"github.com/jarad-ux/eccocontrol-center/pkg/logger"
)

const processTimeout = 30 * time.Second

// Orchestrator runs the fan-out for one submission:
//
//	re-fetch row → load settings → webhook attempts → status update → extras
//
// It always runs in its own goroutine (ProcessAsync) with its own context,
// decoupled from the HTTP request that created the submission.
//
// Status rules: any primary/Lindy webhook success makes the row synced (with
// synced_at); at least one configured and all failing makes it error; nothing
// configured leaves it pending. The spreadsheet append, the dispatch relay
// and the email notification are best-effort and never change the status.
// One attempt per endpoint per submission; there is no retry and no
// reconciliation job for rows stuck pending after a crash.
type Orchestrator struct {
	submissionRepo repository.SubmissionRepository
	settingsRepo   repository.SettingsRepository

	webhook  WebhookSender
	dispatch DispatchCreator
	sheets   SheetAppender
	email    EmailNotifier

	log *logger.Logger
	// now is swappable in tests.
	now func() time.Time
}

// NewOrchestrator builds the orchestrator. dispatch, sheets and email may be
// nil; their steps are skipped then.
func NewOrchestrator(
	submissionRepo repository.SubmissionRepository,
	settingsRepo repository.SettingsRepository,
	webhook WebhookSender,
	dispatch DispatchCreator,
	sheets SheetAppender,
	email EmailNotifier,
	log *logger.Logger,
) *Orchestrator {
	return &Orchestrator{
		submissionRepo: submissionRepo,
		settingsRepo:   settingsRepo,
		webhook:        webhook,
		dispatch:       dispatch,
		sheets:         sheets,
		email:          email,
		log:            log,
		now:            time.Now,
	}
}

// ProcessAsync runs the fan-out in an independent goroutine.
func (o *Orchestrator) ProcessAsync(submissionID string) {
	go o.process(submissionID)
}

// process is the synchronous core. It finishes by updating the stored status
// exactly once (unless nothing was configured), and never reports failure to
// the submitter.
func (o *Orchestrator) process(submissionID string) {
	ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
	defer cancel()

	log := o.log.With().Str("submission_id", submissionID).Logger()

	// Re-fetch fresh data instead of trusting what the HTTP goroutine saw.
	s, err := o.submissionRepo.GetByID(ctx, submissionID)
	if err != nil || s == nil {
		log.Error().Err(err).Msg("sync: submission not found")
		return
	}
	if s.Status != entity.StatusPending {
		log.Warn().Str("status", s.Status).Msg("sync: unexpected status, already processed? skipping")
		return
	}

	settings, err := o.settingsRepo.Get(ctx)
	if err != nil {
		log.Error().Err(err).Msg("sync: load settings")
		return
	}
	if settings == nil {
		settings = &entity.AppSettings{}
	}

	// Sequential, independent webhook attempts. A failure in one never
	// blocks the next; success of any one is enough to mark the row synced.
	type target struct {
		name  string
		url   string
		token string
	}
	targets := []target{
		{name: "webhook", url: settings.WebhookURL},
		{name: "lindy", url: settings.LindyWebhookURL, token: settings.LindyAPIKey},
	}

	attempted, succeeded := 0, 0
	for _, t := range targets {
		if t.url == "" {
			continue
		}
		attempted++
		if err := o.webhook.Send(ctx, t.url, t.token, s); err != nil {
			log.Error().Err(err).Str("target", t.name).Msg("sync: webhook delivery failed")
			continue
		}
		succeeded++
		log.Info().Str("target", t.name).Msg("sync: webhook delivered")
	}

	switch {
	case attempted == 0:
		// Nothing configured: the row stays pending, on purpose.
		log.Debug().Msg("sync: no webhook configured, leaving pending")
	case succeeded > 0:
		syncedAt := o.now()
		if err := o.submissionRepo.UpdateStatus(ctx, s.ID, entity.StatusSynced, &syncedAt); err != nil {
			log.Error().Err(err).Msg("sync: persist synced status")
		}
	default:
		if err := o.submissionRepo.UpdateStatus(ctx, s.ID, entity.StatusError, nil); err != nil {
			log.Error().Err(err).Msg("sync: persist error status")
		}
	}

	// Best-effort extras below. None of them affect the sync status.

	if o.sheets != nil && settings.GoogleSheetID != "" {
		if err := o.sheets.AppendSale(ctx, settings.GoogleSheetID, settings.GoogleSheetTab, s); err != nil {
			log.Error().Err(err).Msg("sync: sheet append failed")
		}
	}

	if o.dispatch != nil && s.LeadSource == entity.LeadSourceSelf &&
		settings.MCPServerURL != "" && settings.MCPAPIKey != "" {
		if err := o.dispatch.CreateJob(ctx, settings.MCPServerURL, settings.MCPAPIKey, s); err != nil {
			log.Error().Err(err).Msg("sync: dispatch job creation failed")
		} else {
			log.Info().Msg("sync: dispatch job created")
		}
	}

	if o.email != nil && settings.ResendAPIKey != "" &&
		settings.ResendFromEmail != "" && settings.ResendToEmail != "" {
		if err := o.email.NotifySale(ctx, settings.ResendAPIKey, settings.ResendFromEmail, settings.ResendToEmail, s); err != nil {
			log.Error().Err(err).Msg("sync: notification email failed")
		}
	}
}
