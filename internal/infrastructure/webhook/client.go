package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	appsync "github.com/jarad-ux/eccocontrol-center/internal/application/sync"
	"github.com/jarad-ux/eccocontrol-center/internal/domain/entity"
)

var _ appsync.WebhookSender = (*Client)(nil)

// Client delivers a submission to an automation webhook as a JSON POST.
// One attempt per call; the caller decides what a failure means.
type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			// Network timeout of 25s; the orchestrator additionally bounds the
			// whole fan-out with its own context deadline.
			Timeout: 25 * time.Second,
		},
	}
}

// payload mirrors the public JSON shape of a submission so webhook consumers
// see the same field names the API serves.
type payload struct {
	ID                string  `json:"id"`
	CustomerFirstName string  `json:"customerFirstName"`
	CustomerLastName  string  `json:"customerLastName"`
	CustomerEmail     string  `json:"customerEmail,omitempty"`
	CustomerPhone     string  `json:"customerPhone"`
	CustomerAddress   string  `json:"customerAddress"`
	CustomerCity      string  `json:"customerCity"`
	CustomerState     string  `json:"customerState"`
	CustomerZip       string  `json:"customerZip"`
	EquipmentType     string  `json:"equipmentType"`
	Tonnage           string  `json:"tonnage,omitempty"`
	EquipmentNotes    string  `json:"equipmentNotes,omitempty"`
	Division          string  `json:"division"`
	LeadSource        string  `json:"leadSource"`
	SaleAmount        string  `json:"saleAmount"`
	FinancingBank     string  `json:"financingBank,omitempty"`
	DownPayment       *string `json:"downPayment,omitempty"`
	MonthlyPayment    *string `json:"monthlyPayment,omitempty"`
	InstallationDate  *string `json:"installationDate,omitempty"`
	InstallationNotes string  `json:"installationNotes,omitempty"`
	SubmittedBy       string  `json:"submittedBy"`
	SubmittedByName   string  `json:"submittedByName"`
	SubmittedAt       string  `json:"submittedAt"`
	Status            string  `json:"status"`
}

func buildPayload(s *entity.Submission) payload {
	p := payload{
		ID:                s.ID,
		CustomerFirstName: s.CustomerFirstName,
		CustomerLastName:  s.CustomerLastName,
		CustomerEmail:     s.CustomerEmail,
		CustomerPhone:     s.CustomerPhone,
		CustomerAddress:   s.CustomerAddress,
		CustomerCity:      s.CustomerCity,
		CustomerState:     s.CustomerState,
		CustomerZip:       s.CustomerZip,
		EquipmentType:     s.EquipmentType,
		Tonnage:           s.Tonnage,
		EquipmentNotes:    s.EquipmentNotes,
		Division:          s.Division,
		LeadSource:        s.LeadSource,
		SaleAmount:        s.SaleAmount.String(),
		FinancingBank:     s.FinancingBank,
		InstallationNotes: s.InstallationNotes,
		SubmittedBy:       s.SubmittedBy,
		SubmittedByName:   s.SubmittedByName,
		SubmittedAt:       s.SubmittedAt.Format(time.RFC3339),
		Status:            s.Status,
	}
	if s.DownPayment.Valid {
		v := s.DownPayment.Decimal.String()
		p.DownPayment = &v
	}
	if s.MonthlyPayment.Valid {
		v := s.MonthlyPayment.Decimal.String()
		p.MonthlyPayment = &v
	}
	if s.InstallationDate != nil {
		v := s.InstallationDate.Format("2006-01-02")
		p.InstallationDate = &v
	}
	return p
}

// Send POSTs the submission. A non-2xx response counts as a delivery failure.
func (c *Client) Send(ctx context.Context, url, bearerToken string, s *entity.Submission) error {
	body, err := json.Marshal(buildPayload(s))
	if err != nil {
		return fmt.Errorf("webhook: serialize payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+bearerToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: POST %s: %w", url, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4*1024))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook: %s responded HTTP %d", url, resp.StatusCode)
	}
	return nil
}
