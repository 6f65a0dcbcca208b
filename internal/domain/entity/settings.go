package entity

import "time"

// AppSettings is the single configuration row holding every integration
// endpoint and key. Fields are plain text; an empty value means the
// integration is not configured. Upsert-by-existence, last writer wins.
type AppSettings struct {
	ID string

	// Primary webhook (Zapier/Make style automation)
	WebhookURL string

	// Google Sheets
	GoogleSheetID  string
	GoogleSheetTab string

	// Lindy AI automation webhook
	LindyWebhookURL string
	LindyAPIKey     string

	// Retell voice platform
	RetellAPIKey  string
	RetellAgentID string

	// Resend transactional email
	ResendAPIKey    string
	ResendFromEmail string
	ResendToEmail   string

	// Anthropic
	ClaudeAPIKey string

	// MCP relay used for dispatch-job creation
	MCPServerURL string
	MCPAPIKey    string

	UpdatedAt time.Time
	UpdatedBy string
}
