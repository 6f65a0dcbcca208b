package callcenter

import (
	"context"
	"math"
	"time"

	"github.com/jarad-ux/eccocontrol-center/internal/application/dto"
	"github.com/jarad-ux/eccocontrol-center/internal/domain/repository"
	"github.com/jarad-ux/eccocontrol-center/pkg/logger"
)

// maxCallLimit caps how many calls one request may pull from the platform.
// It doubles as the default page size.
const maxCallLimit = 100

// UseCase proxies the voice-call platform: listing recent calls and
// computing dashboard statistics over them. An unconfigured or failing
// platform degrades to an informative 200 body, never to a request error.
type UseCase struct {
	settingsRepo repository.SettingsRepository
	fetcher      CallFetcher
	log          *logger.Logger
	now          func() time.Time
}

func NewUseCase(settingsRepo repository.SettingsRepository, fetcher CallFetcher, log *logger.Logger) *UseCase {
	return &UseCase{
		settingsRepo: settingsRepo,
		fetcher:      fetcher,
		log:          log,
		now:          time.Now,
	}
}

// ListCalls returns the most recent calls, or configured:false when no API
// key is stored. limit <= 0 means the default page size; agentID overrides
// the configured agent filter when non-empty.
func (uc *UseCase) ListCalls(ctx context.Context, limit int, agentID string) (*dto.CallListResponse, error) {
	calls, configured, upstreamErr, err := uc.fetch(ctx, limit, agentID)
	if err != nil {
		return nil, err
	}
	if !configured {
		return &dto.CallListResponse{Configured: false}, nil
	}
	if upstreamErr != "" {
		return &dto.CallListResponse{Configured: true, Error: upstreamErr}, nil
	}

	out := make([]dto.CallDTO, 0, len(calls))
	for _, c := range calls {
		out = append(out, dto.CallDTO{
			CallID:              c.CallID,
			AgentID:             c.AgentID,
			FromNumber:          c.FromNumber,
			ToNumber:            c.ToNumber,
			Direction:           c.Direction,
			CallStatus:          c.CallStatus,
			DisconnectionReason: c.DisconnectionReason,
			StartTimestamp:      c.StartTimestamp,
			EndTimestamp:        c.EndTimestamp,
		})
	}
	return &dto.CallListResponse{Configured: true, Calls: out}, nil
}

// Stats aggregates the fetched calls into dashboard numbers.
func (uc *UseCase) Stats(ctx context.Context) (*dto.CallStatsResponse, error) {
	calls, configured, upstreamErr, err := uc.fetch(ctx, 0, "")
	if err != nil {
		return nil, err
	}
	if !configured {
		return &dto.CallStatsResponse{Configured: false}, nil
	}
	if upstreamErr != "" {
		return &dto.CallStatsResponse{Configured: true, Error: upstreamErr}, nil
	}

	now := uc.now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := todayStart.AddDate(0, 0, -int(todayStart.Weekday()))

	resp := &dto.CallStatsResponse{Configured: true, TotalCalls: len(calls)}

	var durationSum float64
	var durationCount int
	for _, c := range calls {
		if c.StartTimestamp > 0 {
			started := time.UnixMilli(c.StartTimestamp)
			if !started.Before(todayStart) {
				resp.TodayCalls++
			}
			if !started.Before(weekStart) {
				resp.WeekCalls++
			}
		}
		if c.StartTimestamp > 0 && c.EndTimestamp > 0 && c.EndTimestamp >= c.StartTimestamp {
			durationSum += float64(c.EndTimestamp-c.StartTimestamp) / 1000
			durationCount++
		}
		// Connected and failed are counted independently: a call still in
		// progress ("ongoing", "registered") is neither.
		if c.CallStatus == "ended" {
			resp.ConnectedCalls++
		}
		if isFailed(c) {
			resp.FailedCalls++
		}
	}

	if durationCount > 0 {
		resp.AvgDurationSeconds = math.Round(durationSum/float64(durationCount)*10) / 10
	}
	if resp.TotalCalls > 0 {
		resp.SuccessRate = int(math.Round(float64(resp.ConnectedCalls) / float64(resp.TotalCalls) * 100))
	}
	return resp, nil
}

// fetch loads the API key from settings and lists calls. The second return
// reports whether the integration is configured, the third an upstream error
// message suitable for the response body.
func (uc *UseCase) fetch(ctx context.Context, limit int, agentID string) ([]Call, bool, string, error) {
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, false, "", err
	}
	if settings == nil || settings.RetellAPIKey == "" {
		return nil, false, "", nil
	}

	if limit <= 0 || limit > maxCallLimit {
		limit = maxCallLimit
	}
	if agentID == "" {
		agentID = settings.RetellAgentID
	}
	calls, err := uc.fetcher.ListCalls(ctx, settings.RetellAPIKey, agentID, limit)
	if err != nil {
		uc.log.Warn().Err(err).Msg("call center: upstream fetch failed")
		return nil, true, "Unable to reach the calling platform", nil
	}
	return calls, true, "", nil
}

// isFailed marks a platform error or a dial that never went through.
func isFailed(c Call) bool {
	return c.CallStatus == "error" || c.DisconnectionReason == "dial_failed"
}
