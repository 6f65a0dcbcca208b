package dto

import "time"

// UpdateSettingsRequest body for PATCH /api/settings. Every field is
// optional; nil means "leave as is". Empty string clears a field.
type UpdateSettingsRequest struct {
	WebhookURL *string `json:"webhookUrl" validate:"omitempty,url"`

	GoogleSheetID  *string `json:"googleSheetId"`
	GoogleSheetTab *string `json:"googleSheetTab"`

	LindyWebhookURL *string `json:"lindyWebhookUrl" validate:"omitempty,url"`
	LindyAPIKey     *string `json:"lindyApiKey"`

	RetellAPIKey  *string `json:"retellApiKey"`
	RetellAgentID *string `json:"retellAgentId"`

	ResendAPIKey    *string `json:"resendApiKey"`
	ResendFromEmail *string `json:"resendFromEmail" validate:"omitempty,email"`
	ResendToEmail   *string `json:"resendToEmail" validate:"omitempty,email"`

	ClaudeAPIKey *string `json:"claudeApiKey"`

	MCPServerURL *string `json:"mcpServerUrl" validate:"omitempty,url"`
	MCPAPIKey    *string `json:"mcpApiKey"`
}

// SettingsResponse wire shape of the settings row.
type SettingsResponse struct {
	ID string `json:"id"`

	WebhookURL string `json:"webhookUrl,omitempty"`

	GoogleSheetID  string `json:"googleSheetId,omitempty"`
	GoogleSheetTab string `json:"googleSheetTab,omitempty"`

	LindyWebhookURL string `json:"lindyWebhookUrl,omitempty"`
	LindyAPIKey     string `json:"lindyApiKey,omitempty"`

	RetellAPIKey  string `json:"retellApiKey,omitempty"`
	RetellAgentID string `json:"retellAgentId,omitempty"`

	ResendAPIKey    string `json:"resendApiKey,omitempty"`
	ResendFromEmail string `json:"resendFromEmail,omitempty"`
	ResendToEmail   string `json:"resendToEmail,omitempty"`

	ClaudeAPIKey string `json:"claudeApiKey,omitempty"`

	MCPServerURL string `json:"mcpServerUrl,omitempty"`
	MCPAPIKey    string `json:"mcpApiKey,omitempty"`

	UpdatedAt time.Time `json:"updatedAt"`
	UpdatedBy string    `json:"updatedBy,omitempty"`
}
