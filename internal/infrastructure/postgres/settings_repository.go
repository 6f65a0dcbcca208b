package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jarad-ux/eccocontrol-center/internal/domain/entity"
	"github.com/jarad-ux/eccocontrol-center/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implements the SettingsRepository port over PostgreSQL.
// There is one logical row; Get takes the first by convention.
type SettingsRepo struct {
	pool *pgxpool.Pool
}

// NewSettingsRepository builds the persistence adapter for app settings.
func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepo {
	return &SettingsRepo{pool: pool}
}

const settingsColumns = `
	id,
	COALESCE(webhook_url, ''),
	COALESCE(google_sheet_id, ''), COALESCE(google_sheet_tab, 'Sales'),
	COALESCE(lindy_webhook_url, ''), COALESCE(lindy_api_key, ''),
	COALESCE(retell_api_key, ''), COALESCE(retell_agent_id, ''),
	COALESCE(resend_api_key, ''), COALESCE(resend_from_email, ''), COALESCE(resend_to_email, ''),
	COALESCE(claude_api_key, ''),
	COALESCE(mcp_server_url, ''), COALESCE(mcp_api_key, ''),
	updated_at, COALESCE(updated_by, '')`

// Get returns the settings row, or (nil, nil) when none exists yet.
func (r *SettingsRepo) Get(ctx context.Context) (*entity.AppSettings, error) {
	query := `SELECT ` + settingsColumns + ` FROM app_settings LIMIT 1`
	var s entity.AppSettings
	err := r.pool.QueryRow(ctx, query).Scan(
		&s.ID,
		&s.WebhookURL,
		&s.GoogleSheetID, &s.GoogleSheetTab,
		&s.LindyWebhookURL, &s.LindyAPIKey,
		&s.RetellAPIKey, &s.RetellAgentID,
		&s.ResendAPIKey, &s.ResendFromEmail, &s.ResendToEmail,
		&s.ClaudeAPIKey,
		&s.MCPServerURL, &s.MCPAPIKey,
		&s.UpdatedAt, &s.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Create inserts the first settings row.
func (r *SettingsRepo) Create(ctx context.Context, s *entity.AppSettings) error {
	query := `
		INSERT INTO app_settings (
			id, webhook_url, google_sheet_id, google_sheet_tab,
			lindy_webhook_url, lindy_api_key,
			retell_api_key, retell_agent_id,
			resend_api_key, resend_from_email, resend_to_email,
			claude_api_key, mcp_server_url, mcp_api_key,
			updated_at, updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.pool.Exec(ctx, query,
		s.ID, s.WebhookURL, s.GoogleSheetID, s.GoogleSheetTab,
		s.LindyWebhookURL, s.LindyAPIKey,
		s.RetellAPIKey, s.RetellAgentID,
		s.ResendAPIKey, s.ResendFromEmail, s.ResendToEmail,
		s.ClaudeAPIKey, s.MCPServerURL, s.MCPAPIKey,
		s.UpdatedAt, s.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert settings: %w", err)
	}
	return nil
}

// Update rewrites the existing settings row. Last writer wins; there is no
// optimistic-concurrency check.
func (r *SettingsRepo) Update(ctx context.Context, s *entity.AppSettings) error {
	query := `
		UPDATE app_settings SET
			webhook_url = $2, google_sheet_id = $3, google_sheet_tab = $4,
			lindy_webhook_url = $5, lindy_api_key = $6,
			retell_api_key = $7, retell_agent_id = $8,
			resend_api_key = $9, resend_from_email = $10, resend_to_email = $11,
			claude_api_key = $12, mcp_server_url = $13, mcp_api_key = $14,
			updated_at = $15, updated_by = $16
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		s.ID, s.WebhookURL, s.GoogleSheetID, s.GoogleSheetTab,
		s.LindyWebhookURL, s.LindyAPIKey,
		s.RetellAPIKey, s.RetellAgentID,
		s.ResendAPIKey, s.ResendFromEmail, s.ResendToEmail,
		s.ClaudeAPIKey, s.MCPServerURL, s.MCPAPIKey,
		s.UpdatedAt, s.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}
