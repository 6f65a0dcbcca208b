package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"time"

	appsync "github.com/jarad-ux/eccocontrol-center/internal/application/sync"
	"github.com/jarad-ux/eccocontrol-center/internal/domain/entity"
)

var _ appsync.EmailNotifier = (*ResendClient)(nil)

const resendEmailsURL = "https://api.resend.com/emails"

// ResendClient sends the sale notification email through the Resend REST API.
type ResendClient struct {
	httpClient *http.Client
}

func NewResendClient() *ResendClient {
	return &ResendClient{
		httpClient: &http.Client{Timeout: 25 * time.Second},
	}
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type resendError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// NotifySale emails a short summary of the logged sale.
func (c *ResendClient) NotifySale(ctx context.Context, apiKey, from, to string, s *entity.Submission) error {
	payload := resendRequest{
		From:    from,
		To:      []string{to},
		Subject: fmt.Sprintf("New sale logged: %s (%s)", s.CustomerName(), s.Division),
		HTML:    buildSaleHTML(s),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("email: serialize request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEmailsURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("email: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("email: POST resend: %w", err)
	}
	defer resp.Body.Close()

	rawBody, _ := io.ReadAll(io.LimitReader(resp.Body, 16*1024))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp resendError
		if json.Unmarshal(rawBody, &errResp) == nil && errResp.Message != "" {
			return fmt.Errorf("email: resend %s: %s", errResp.Name, errResp.Message)
		}
		return fmt.Errorf("email: resend HTTP %d", resp.StatusCode)
	}
	return nil
}

func buildSaleHTML(s *entity.Submission) string {
	var b bytes.Buffer
	b.WriteString("<h2>New sale logged</h2><table>")
	writeRow := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&b, "<tr><td><b>%s</b></td><td>%s</td></tr>",
			html.EscapeString(label), html.EscapeString(value))
	}
	writeRow("Customer", s.CustomerName())
	writeRow("Phone", s.CustomerPhone)
	writeRow("Address", s.FullAddress())
	writeRow("Division", s.Division)
	writeRow("Lead source", entity.LeadSourceName(s.LeadSource))
	writeRow("Equipment", s.EquipmentType)
	writeRow("Tonnage", s.Tonnage)
	writeRow("Sale amount", "$"+s.SaleAmount.StringFixed(2))
	writeRow("Financing", s.FinancingBank)
	writeRow("Sales rep", s.SubmittedByName)
	if s.InstallationDate != nil {
		writeRow("Installation", s.InstallationDate.Format("January 2, 2006"))
	}
	b.WriteString("</table>")
	return b.String()
}
