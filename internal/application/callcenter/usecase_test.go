package callcenter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jarad-ux/eccocontrol-center/internal/domain/entity"
	"github.com/jarad-ux/eccocontrol-center/pkg/logger"
)

type fakeSettingsRepo struct {
	settings *entity.AppSettings
}

func (r *fakeSettingsRepo) Get(_ context.Context) (*entity.AppSettings, error) {
	return r.settings, nil
}
func (r *fakeSettingsRepo) Create(_ context.Context, _ *entity.AppSettings) error { return nil }
func (r *fakeSettingsRepo) Update(_ context.Context, _ *entity.AppSettings) error { return nil }

type fakeFetcher struct {
	calls    []Call
	err      error
	gotKey   string
	gotAgnt  string
	gotLimit int
}

func (f *fakeFetcher) ListCalls(_ context.Context, apiKey, agentID string, limit int) ([]Call, error) {
	f.gotKey = apiKey
	f.gotAgnt = agentID
	f.gotLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.calls, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

func newTestUseCase(settings *entity.AppSettings, fetcher *fakeFetcher) *UseCase {
	return NewUseCase(&fakeSettingsRepo{settings: settings}, fetcher, testLogger())
}

func TestListCalls_NotConfigured(t *testing.T) {
	uc := newTestUseCase(nil, &fakeFetcher{})

	resp, err := uc.ListCalls(context.Background(), 0, "")
	require.NoError(t, err)
	assert.False(t, resp.Configured)
	assert.Empty(t, resp.Calls)
	assert.Empty(t, resp.Error)
}

func TestListCalls_UpstreamFailureIsSoft(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("remote down")}
	uc := newTestUseCase(&entity.AppSettings{RetellAPIKey: "rk-1"}, fetcher)

	resp, err := uc.ListCalls(context.Background(), 0, "")
	require.NoError(t, err, "upstream failures must not become request errors")
	assert.True(t, resp.Configured)
	assert.NotEmpty(t, resp.Error)
	assert.Empty(t, resp.Calls)
}

func TestListCalls_PassesKeyAndAgentFilter(t *testing.T) {
	fetcher := &fakeFetcher{calls: []Call{{CallID: "c1", CallStatus: "ended"}}}
	uc := newTestUseCase(&entity.AppSettings{RetellAPIKey: "rk-1", RetellAgentID: "agent-7"}, fetcher)

	resp, err := uc.ListCalls(context.Background(), 0, "")
	require.NoError(t, err)
	assert.Equal(t, "rk-1", fetcher.gotKey)
	assert.Equal(t, "agent-7", fetcher.gotAgnt)
	assert.Equal(t, 100, fetcher.gotLimit)
	require.Len(t, resp.Calls, 1)
	assert.Equal(t, "c1", resp.Calls[0].CallID)
}

func TestListCalls_QueryOverridesLimitAndAgent(t *testing.T) {
	fetcher := &fakeFetcher{}
	uc := newTestUseCase(&entity.AppSettings{RetellAPIKey: "rk-1", RetellAgentID: "agent-7"}, fetcher)

	_, err := uc.ListCalls(context.Background(), 25, "agent-override")
	require.NoError(t, err)
	assert.Equal(t, 25, fetcher.gotLimit)
	assert.Equal(t, "agent-override", fetcher.gotAgnt)
}

func TestListCalls_LimitCappedAtMax(t *testing.T) {
	fetcher := &fakeFetcher{}
	uc := newTestUseCase(&entity.AppSettings{RetellAPIKey: "rk-1"}, fetcher)

	_, err := uc.ListCalls(context.Background(), 5000, "")
	require.NoError(t, err)
	assert.Equal(t, 100, fetcher.gotLimit)
}

func TestStats_ZeroCallsHasZeroRate(t *testing.T) {
	uc := newTestUseCase(&entity.AppSettings{RetellAPIKey: "rk-1"}, &fakeFetcher{})

	resp, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.Configured)
	assert.Equal(t, 0, resp.TotalCalls)
	assert.Equal(t, 0, resp.SuccessRate, "no calls means rate 0, not a division by zero")
	assert.Zero(t, resp.AvgDurationSeconds)
}

func TestStats_ClassifiesAndAverages(t *testing.T) {
	now := time.Date(2026, 8, 26, 15, 0, 0, 0, time.Local)
	todayMs := now.Add(-1 * time.Hour).UnixMilli()
	mondayMs := time.Date(2026, 8, 24, 10, 0, 0, 0, time.Local).UnixMilli()
	lastMonthMs := time.Date(2026, 7, 10, 10, 0, 0, 0, time.Local).UnixMilli()

	fetcher := &fakeFetcher{calls: []Call{
		// Connected today, 120s.
		{CallID: "c1", CallStatus: "ended", StartTimestamp: todayMs, EndTimestamp: todayMs + 120_000},
		// Connected Monday, 60s.
		{CallID: "c2", CallStatus: "ended", StartTimestamp: mondayMs, EndTimestamp: mondayMs + 60_000},
		// Dial failure last month, no end timestamp.
		{CallID: "c3", CallStatus: "error", DisconnectionReason: "dial_failed", StartTimestamp: lastMonthMs},
		// Platform error, no timestamps at all.
		{CallID: "c4", CallStatus: "error"},
		// Still in progress: neither connected nor failed.
		{CallID: "c5", CallStatus: "ongoing", StartTimestamp: todayMs},
	}}
	uc := newTestUseCase(&entity.AppSettings{RetellAPIKey: "rk-1"}, fetcher)
	uc.now = func() time.Time { return now }

	resp, err := uc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, resp.TotalCalls)
	assert.Equal(t, 2, resp.TodayCalls)
	assert.Equal(t, 3, resp.WeekCalls)
	assert.Equal(t, 2, resp.ConnectedCalls, "only ended calls count as connected")
	assert.Equal(t, 2, resp.FailedCalls)
	assert.Equal(t, 40, resp.SuccessRate)
	// (120 + 60) / 2 over the calls that report both timestamps.
	assert.InDelta(t, 90.0, resp.AvgDurationSeconds, 0.01)
}

func TestStats_ZeroLengthCallCountsInAverage(t *testing.T) {
	startMs := time.Date(2026, 8, 26, 9, 0, 0, 0, time.Local).UnixMilli()
	fetcher := &fakeFetcher{calls: []Call{
		{CallID: "c1", CallStatus: "ended", StartTimestamp: startMs, EndTimestamp: startMs + 100_000},
		// Dropped immediately: both timestamps present, zero duration.
		{CallID: "c2", CallStatus: "ended", StartTimestamp: startMs, EndTimestamp: startMs},
	}}
	uc := newTestUseCase(&entity.AppSettings{RetellAPIKey: "rk-1"}, fetcher)

	resp, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 50.0, resp.AvgDurationSeconds, 0.01)
}
