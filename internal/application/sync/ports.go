package sync

import (
	"context"

	"github.com/jarad-ux/eccocontrol-center/internal/domain/entity"
)

// Delivery ports implemented by the infrastructure adapters. Every call is a
// single attempt; the orchestrator never retries.

// WebhookSender POSTs the full submission as JSON to an automation endpoint.
// bearerToken is optional; empty means no Authorization header.
type WebhookSender interface {
	Send(ctx context.Context, url, bearerToken string, s *entity.Submission) error
}

// DispatchCreator creates a dispatch job for a self-generated sale through
// the MCP relay.
type DispatchCreator interface {
	CreateJob(ctx context.Context, serverURL, apiKey string, s *entity.Submission) error
}

// SheetAppender appends the sale as one spreadsheet row, creating the header
// row when the tab is still empty.
type SheetAppender interface {
	AppendSale(ctx context.Context, sheetID, tab string, s *entity.Submission) error
}

// EmailNotifier sends the "new sale logged" notification email.
type EmailNotifier interface {
	NotifySale(ctx context.Context, apiKey, from, to string, s *entity.Submission) error
}
