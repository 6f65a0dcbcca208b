package retell

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jarad-ux/eccocontrol-center/internal/application/callcenter"
)

var _ callcenter.CallFetcher = (*Client)(nil)

const listCallsURL = "https://api.retellai.com/v2/list-calls"

// maxPageSize is the largest page the list-calls endpoint accepts.
const maxPageSize = 1000

// Client fetches call history from the Retell voice platform.
type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 25 * time.Second},
	}
}

type listCallsRequest struct {
	Limit          int             `json:"limit,omitempty"`
	SortOrder      string          `json:"sort_order,omitempty"`
	FilterCriteria *filterCriteria `json:"filter_criteria,omitempty"`
}

type filterCriteria struct {
	AgentID []string `json:"agent_id,omitempty"`
}

type callRecord struct {
	CallID              string `json:"call_id"`
	AgentID             string `json:"agent_id"`
	FromNumber          string `json:"from_number"`
	ToNumber            string `json:"to_number"`
	Direction           string `json:"direction"`
	CallStatus          string `json:"call_status"`
	DisconnectionReason string `json:"disconnection_reason"`
	StartTimestamp      int64  `json:"start_timestamp"`
	EndTimestamp        int64  `json:"end_timestamp"`
}

type apiError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// ListCalls fetches up to limit recent calls, newest first.
func (c *Client) ListCalls(ctx context.Context, apiKey, agentID string, limit int) ([]callcenter.Call, error) {
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}

	payload := listCallsRequest{Limit: limit, SortOrder: "descending"}
	if agentID != "" {
		payload.FilterCriteria = &filterCriteria{AgentID: []string{agentID}}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("retell: serialize request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, listCallsURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("retell: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("retell: list calls: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 4*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("retell: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var errResp apiError
		if json.Unmarshal(rawBody, &errResp) == nil && errResp.Message != "" {
			return nil, fmt.Errorf("retell: HTTP %d: %s", resp.StatusCode, errResp.Message)
		}
		return nil, fmt.Errorf("retell: HTTP %d", resp.StatusCode)
	}

	var records []callRecord
	if err := json.Unmarshal(rawBody, &records); err != nil {
		return nil, fmt.Errorf("retell: parse response: %w", err)
	}

	calls := make([]callcenter.Call, 0, len(records))
	for _, r := range records {
		calls = append(calls, callcenter.Call{
			CallID:              r.CallID,
			AgentID:             r.AgentID,
			FromNumber:          r.FromNumber,
			ToNumber:            r.ToNumber,
			Direction:           r.Direction,
			CallStatus:          r.CallStatus,
			DisconnectionReason: r.DisconnectionReason,
			StartTimestamp:      r.StartTimestamp,
			EndTimestamp:        r.EndTimestamp,
		})
	}
	return calls, nil
}
