package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jarad-ux/eccocontrol-center/internal/application/dto"
)

func strp(s string) *string { return &s }

func TestSettingsGet_EmptyStoreReturnsNil(t *testing.T) {
	uc := NewSettingsUseCase(&memSettingsRepo{})

	settings, err := uc.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, settings, "the handler renders {} for a nil settings row")
}

func TestSettingsUpdate_FirstWriteCreatesRow(t *testing.T) {
	repo := &memSettingsRepo{}
	uc := NewSettingsUseCase(repo)

	settings, err := uc.Update(context.Background(), "u-1", dto.UpdateSettingsRequest{
		WebhookURL: strp("https://hooks.example.com/a"),
	})
	require.NoError(t, err)
	require.NotNil(t, settings)

	assert.NotEmpty(t, settings.ID)
	assert.Equal(t, "https://hooks.example.com/a", settings.WebhookURL)
	assert.Equal(t, "Sales", settings.GoogleSheetTab, "new rows default the sheet tab name")
	assert.Equal(t, "u-1", settings.UpdatedBy)
	assert.False(t, settings.UpdatedAt.IsZero())
}

func TestSettingsUpdate_PartialPatchKeepsOtherFields(t *testing.T) {
	repo := &memSettingsRepo{}
	uc := NewSettingsUseCase(repo)

	_, err := uc.Update(context.Background(), "u-1", dto.UpdateSettingsRequest{
		WebhookURL:   strp("https://hooks.example.com/a"),
		RetellAPIKey: strp("rk-1"),
	})
	require.NoError(t, err)

	settings, err := uc.Update(context.Background(), "u-2", dto.UpdateSettingsRequest{
		GoogleSheetID: strp("sheet-123"),
	})
	require.NoError(t, err)

	assert.Equal(t, "https://hooks.example.com/a", settings.WebhookURL, "absent fields keep their value")
	assert.Equal(t, "rk-1", settings.RetellAPIKey)
	assert.Equal(t, "sheet-123", settings.GoogleSheetID)
	assert.Equal(t, "u-2", settings.UpdatedBy, "the stamp follows the last writer")
}

func TestSettingsUpdate_EmptyStringClearsField(t *testing.T) {
	repo := &memSettingsRepo{}
	uc := NewSettingsUseCase(repo)

	_, err := uc.Update(context.Background(), "u-1", dto.UpdateSettingsRequest{
		WebhookURL: strp("https://hooks.example.com/a"),
	})
	require.NoError(t, err)

	settings, err := uc.Update(context.Background(), "u-1", dto.UpdateSettingsRequest{
		WebhookURL: strp(""),
	})
	require.NoError(t, err)
	assert.Empty(t, settings.WebhookURL)
}

func TestSettingsUpdate_IDIsStableAcrossWrites(t *testing.T) {
	repo := &memSettingsRepo{}
	uc := NewSettingsUseCase(repo)

	first, err := uc.Update(context.Background(), "u-1", dto.UpdateSettingsRequest{
		WebhookURL: strp("https://hooks.example.com/a"),
	})
	require.NoError(t, err)

	second, err := uc.Update(context.Background(), "u-1", dto.UpdateSettingsRequest{
		LindyAPIKey: strp("lk-1"),
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "there is only ever one settings row")
}
