package callcenter

import "context"

// Call is a voice call row fetched from the calling platform.
type Call struct {
	CallID              string
	AgentID             string
	FromNumber          string
	ToNumber            string
	Direction           string
	CallStatus          string
	DisconnectionReason string
	StartTimestamp      int64 // Unix ms, 0 when not reported
	EndTimestamp        int64 // Unix ms, 0 when not reported
}

// CallFetcher lists recent calls from the platform, newest first.
// agentID is an optional filter, empty means all agents.
type CallFetcher interface {
	ListCalls(ctx context.Context, apiKey, agentID string, limit int) ([]Call, error)
}
