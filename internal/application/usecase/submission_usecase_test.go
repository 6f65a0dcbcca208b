package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jarad-ux/eccocontrol-center/internal/application/dto"
	"github.com/jarad-ux/eccocontrol-center/internal/domain/entity"
)

func validCreateRequest() dto.CreateSubmissionRequest {
	return dto.CreateSubmissionRequest{
		CustomerFirstName: "Dana",
		CustomerLastName:  "Reed",
		CustomerPhone:     "555-0147",
		CustomerAddress:   "12 Pine St",
		CustomerCity:      "Las Vegas",
		CustomerState:     "NV",
		CustomerZip:       "89101",
		EquipmentType:     "heat_pump",
		Tonnage:           "3",
		Division:          "NV",
		LeadSource:        entity.LeadSourceCompany,
		SaleAmount:        decimal.NewFromInt(8200),
	}
}

func submitter() *memSubmissionRepo { return &memSubmissionRepo{} }

func TestSubmissionCreate_PersistsPendingAndTriggersSync(t *testing.T) {
	repo := submitter()
	syncer := &recordingSyncer{}
	uc := NewSubmissionUseCase(repo, syncer, nil)

	resp, verrs, err := uc.Create(context.Background(),
		identity("u-1", "pat@example.com", "Pat", "Lane"), validCreateRequest())
	require.NoError(t, err)
	require.Nil(t, verrs)
	require.NotNil(t, resp)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, entity.StatusPending, resp.Status)
	assert.Nil(t, resp.SyncedAt)
	assert.Equal(t, "u-1", resp.SubmittedBy)
	assert.Equal(t, "Pat Lane", resp.SubmittedByName)
	assert.WithinDuration(t, time.Now(), resp.SubmittedAt, 5*time.Second)

	require.Len(t, syncer.ids, 1, "the fan-out must be handed exactly one ID")
	assert.Equal(t, resp.ID, syncer.ids[0])
}

func TestSubmissionCreate_MissingFieldsAreAllListed(t *testing.T) {
	uc := NewSubmissionUseCase(submitter(), nil, nil)

	in := validCreateRequest()
	in.CustomerPhone = ""
	in.CustomerZip = ""

	resp, verrs, err := uc.Create(context.Background(),
		identity("u-1", "", "Pat", "Lane"), in)
	require.NoError(t, err)
	assert.Nil(t, resp)
	require.NotNil(t, verrs)

	fields := make([]string, 0, len(verrs.Fields))
	for _, f := range verrs.Fields {
		fields = append(fields, f.Field)
	}
	assert.Contains(t, fields, "customerPhone")
	assert.Contains(t, fields, "customerZip")
}

func TestSubmissionCreate_BadInstallationDateListed(t *testing.T) {
	uc := NewSubmissionUseCase(submitter(), nil, nil)

	in := validCreateRequest()
	in.InstallationDate = "next tuesday"

	_, verrs, err := uc.Create(context.Background(),
		identity("u-1", "", "Pat", "Lane"), in)
	require.NoError(t, err)
	require.NotNil(t, verrs)
	require.Len(t, verrs.Fields, 1)
	assert.Equal(t, "installationDate", verrs.Fields[0].Field)
}

func TestSubmissionCreate_DateOnlyInstallationDate(t *testing.T) {
	repo := submitter()
	uc := NewSubmissionUseCase(repo, nil, nil)

	in := validCreateRequest()
	in.InstallationDate = "2026-09-15"

	resp, verrs, err := uc.Create(context.Background(),
		identity("u-1", "", "Pat", "Lane"), in)
	require.NoError(t, err)
	require.Nil(t, verrs)
	require.NotNil(t, resp.InstallationDate)
	assert.Equal(t, 2026, resp.InstallationDate.Year())
	assert.Equal(t, time.September, resp.InstallationDate.Month())
	assert.Equal(t, 15, resp.InstallationDate.Day())
}

func TestSubmissionCreate_UnknownDivisionRejected(t *testing.T) {
	uc := NewSubmissionUseCase(submitter(), nil, nil)

	in := validCreateRequest()
	in.Division = "ZZ"

	_, verrs, err := uc.Create(context.Background(),
		identity("u-1", "", "Pat", "Lane"), in)
	require.NoError(t, err)
	require.NotNil(t, verrs)
	assert.Equal(t, "division", verrs.Fields[0].Field)
}

func TestSubmissionList_DivisionAllIsUnfiltered(t *testing.T) {
	repo := submitter()
	uc := NewSubmissionUseCase(repo, nil, nil)

	for _, div := range []string{"NV", "MD", "GA"} {
		in := validCreateRequest()
		in.Division = div
		_, verrs, err := uc.Create(context.Background(), identity("u-1", "", "Pat", "Lane"), in)
		require.NoError(t, err)
		require.Nil(t, verrs)
	}

	all, err := uc.List(context.Background(), ListFilters{Division: "all"})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	md, err := uc.List(context.Background(), ListFilters{Division: "MD"})
	require.NoError(t, err)
	require.Len(t, md, 1)
	assert.Equal(t, "MD", md[0].Division)
}

func TestSubmissionUpdate_CannotTouchSyncStatus(t *testing.T) {
	repo := submitter()
	uc := NewSubmissionUseCase(repo, nil, nil)

	resp, _, err := uc.Create(context.Background(),
		identity("u-1", "", "Pat", "Lane"), validCreateRequest())
	require.NoError(t, err)

	// Mark it synced out of band, then edit a field.
	syncedAt := time.Now()
	require.NoError(t, repo.UpdateStatus(context.Background(), resp.ID, entity.StatusSynced, &syncedAt))

	notes := "replace the thermostat as well"
	updated, verrs, err := uc.Update(context.Background(), resp.ID, dto.UpdateSubmissionRequest{
		InstallationNotes: &notes,
	})
	require.NoError(t, err)
	require.Nil(t, verrs)
	require.NotNil(t, updated)

	assert.Equal(t, notes, updated.InstallationNotes)
	assert.Equal(t, entity.StatusSynced, updated.Status, "an edit must not reset the sync status")
	assert.NotNil(t, updated.SyncedAt)
}

func TestSubmissionUpdate_MissingReturnsNil(t *testing.T) {
	uc := NewSubmissionUseCase(submitter(), nil, nil)

	notes := "x"
	resp, verrs, err := uc.Update(context.Background(), "no-such-id", dto.UpdateSubmissionRequest{
		InstallationNotes: &notes,
	})
	require.NoError(t, err)
	assert.Nil(t, verrs)
	assert.Nil(t, resp)
}
