package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	appsync "github.com/jarad-ux/eccocontrol-center/internal/application/sync"
	"github.com/jarad-ux/eccocontrol-center/internal/domain/entity"
)

var _ appsync.DispatchCreator = (*Client)(nil)

// Client creates dispatch jobs on the MCP relay for self-generated sales so
// the install crew gets scheduled without manual entry.
type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 25 * time.Second},
	}
}

type dispatchJob struct {
	Source        string `json:"source"`
	SaleID        string `json:"saleId"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	Address       string `json:"address"`
	Division      string `json:"division"`
	EquipmentType string `json:"equipmentType"`
	Tonnage       string `json:"tonnage,omitempty"`
	InstallDate   string `json:"installDate,omitempty"`
	Notes         string `json:"notes,omitempty"`
	SalesRep      string `json:"salesRep"`
}

type dispatchError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// CreateJob POSTs one dispatch job to {serverURL}/api/dispatch/jobs.
func (c *Client) CreateJob(ctx context.Context, serverURL, apiKey string, s *entity.Submission) error {
	job := dispatchJob{
		Source:        "sales-portal",
		SaleID:        s.ID,
		CustomerName:  s.CustomerName(),
		CustomerPhone: s.CustomerPhone,
		Address:       s.FullAddress(),
		Division:      s.Division,
		EquipmentType: s.EquipmentType,
		Tonnage:       s.Tonnage,
		Notes:         s.InstallationNotes,
		SalesRep:      s.SubmittedByName,
	}
	if s.InstallationDate != nil {
		job.InstallDate = s.InstallationDate.Format("2006-01-02")
	}

	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("relay: serialize job: %w", err)
	}

	url := strings.TrimRight(serverURL, "/") + "/api/dispatch/jobs"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("relay: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("X-API-Key", apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("relay: POST %s: %w", url, err)
	}
	defer resp.Body.Close()

	rawBody, _ := io.ReadAll(io.LimitReader(resp.Body, 16*1024))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp dispatchError
		if json.Unmarshal(rawBody, &errResp) == nil && errResp.Message != "" {
			return fmt.Errorf("relay: HTTP %d: %s", resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("relay: HTTP %d: %s", resp.StatusCode, string(rawBody))
	}
	return nil
}
