package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jarad-ux/eccocontrol-center/internal/application/dto"
	"github.com/jarad-ux/eccocontrol-center/internal/domain/entity"
	"github.com/jarad-ux/eccocontrol-center/internal/domain/repository"
)

// SettingsUseCase read/upsert of the single integration-settings row.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase builds the use case.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get returns the settings row, or (nil, nil) when none has been saved yet
// (the handler renders that as an empty object).
func (uc *SettingsUseCase) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	s, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return toSettingsResponse(s), nil
}

// Update upserts the row: update-if-exists, insert otherwise. Only fields
// present in the request change; updated_at/updated_by are always stamped.
// Per-field the operation is idempotent.
func (uc *SettingsUseCase) Update(ctx context.Context, updatedBy string, in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	s, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	created := false
	if s == nil {
		created = true
		s = &entity.AppSettings{
			ID:             uuid.New().String(),
			GoogleSheetTab: "Sales",
		}
	}

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&s.WebhookURL, in.WebhookURL)
	apply(&s.GoogleSheetID, in.GoogleSheetID)
	apply(&s.GoogleSheetTab, in.GoogleSheetTab)
	apply(&s.LindyWebhookURL, in.LindyWebhookURL)
	apply(&s.LindyAPIKey, in.LindyAPIKey)
	apply(&s.RetellAPIKey, in.RetellAPIKey)
	apply(&s.RetellAgentID, in.RetellAgentID)
	apply(&s.ResendAPIKey, in.ResendAPIKey)
	apply(&s.ResendFromEmail, in.ResendFromEmail)
	apply(&s.ResendToEmail, in.ResendToEmail)
	apply(&s.ClaudeAPIKey, in.ClaudeAPIKey)
	apply(&s.MCPServerURL, in.MCPServerURL)
	apply(&s.MCPAPIKey, in.MCPAPIKey)

	s.UpdatedAt = time.Now()
	s.UpdatedBy = updatedBy

	if created {
		err = uc.repo.Create(ctx, s)
	} else {
		err = uc.repo.Update(ctx, s)
	}
	if err != nil {
		return nil, err
	}
	return toSettingsResponse(s), nil
}

func toSettingsResponse(s *entity.AppSettings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		ID:              s.ID,
		WebhookURL:      s.WebhookURL,
		GoogleSheetID:   s.GoogleSheetID,
		GoogleSheetTab:  s.GoogleSheetTab,
		LindyWebhookURL: s.LindyWebhookURL,
		LindyAPIKey:     s.LindyAPIKey,
		RetellAPIKey:    s.RetellAPIKey,
		RetellAgentID:   s.RetellAgentID,
		ResendAPIKey:    s.ResendAPIKey,
		ResendFromEmail: s.ResendFromEmail,
		ResendToEmail:   s.ResendToEmail,
		ClaudeAPIKey:    s.ClaudeAPIKey,
		MCPServerURL:    s.MCPServerURL,
		MCPAPIKey:       s.MCPAPIKey,
		UpdatedAt:       s.UpdatedAt,
		UpdatedBy:       s.UpdatedBy,
	}
}
