package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	appsync "github.com/jarad-ux/eccocontrol-center/internal/application/sync"
	"github.com/jarad-ux/eccocontrol-center/internal/domain/entity"
)

var _ appsync.SheetAppender = (*Client)(nil)

const sheetsBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"

// headerRow is the fixed column layout of the sales tab. Appends always write
// these 19 columns in this order.
var headerRow = []string{
	"Date Submitted",
	"Sales Rep",
	"Division",
	"Lead Source",
	"Customer Name",
	"Phone",
	"Email",
	"Address",
	"Equipment Type",
	"Tonnage",
	"Sale Amount",
	"Financing Bank",
	"Down Payment",
	"Monthly Payment",
	"Installation Date",
	"Equipment Notes",
	"Installation Notes",
	"Status",
	"Sale ID",
}

// Client appends sale rows to a Google Sheet through the values REST API.
type Client struct {
	tokens     TokenSource
	httpClient *http.Client
}

func NewClient(tokens TokenSource) *Client {
	return &Client{
		tokens:     tokens,
		httpClient: &http.Client{Timeout: 25 * time.Second},
	}
}

type valueRange struct {
	Values [][]string `json:"values"`
}

// AppendSale writes the submission as one row, writing the header row first
// when the tab is still empty.
func (c *Client) AppendSale(ctx context.Context, sheetID, tab string, s *entity.Submission) error {
	if tab == "" {
		tab = "Sales"
	}

	if err := c.ensureHeader(ctx, sheetID, tab); err != nil {
		return err
	}

	row := buildRow(s)
	body, err := json.Marshal(valueRange{Values: [][]string{row}})
	if err != nil {
		return fmt.Errorf("sheets: serialize row: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/values/%s:append?valueInputOption=USER_ENTERED",
		sheetsBaseURL, url.PathEscape(sheetID), url.PathEscape(rangeRef(tab, "A:S")))
	if err := c.call(ctx, http.MethodPost, endpoint, body, nil); err != nil {
		return fmt.Errorf("sheets: append row: %w", err)
	}
	return nil
}

// ensureHeader writes the column headers when A1:S1 is empty.
func (c *Client) ensureHeader(ctx context.Context, sheetID, tab string) error {
	endpoint := fmt.Sprintf("%s/%s/values/%s",
		sheetsBaseURL, url.PathEscape(sheetID), url.PathEscape(rangeRef(tab, "A1:S1")))

	var existing valueRange
	if err := c.call(ctx, http.MethodGet, endpoint, nil, &existing); err != nil {
		return fmt.Errorf("sheets: read header row: %w", err)
	}
	if len(existing.Values) > 0 {
		return nil
	}

	body, err := json.Marshal(valueRange{Values: [][]string{headerRow}})
	if err != nil {
		return fmt.Errorf("sheets: serialize header: %w", err)
	}
	endpoint += "?valueInputOption=USER_ENTERED"
	if err := c.call(ctx, http.MethodPut, endpoint, body, nil); err != nil {
		return fmt.Errorf("sheets: write header row: %w", err)
	}
	return nil
}

func (c *Client) call(ctx context.Context, method, endpoint string, body []byte, out any) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(rawBody))
	}
	if out != nil {
		if err := json.Unmarshal(rawBody, out); err != nil {
			return fmt.Errorf("parse response: %w", err)
		}
	}
	return nil
}

func rangeRef(tab, cells string) string {
	return "'" + tab + "'!" + cells
}

func buildRow(s *entity.Submission) []string {
	installDate := ""
	if s.InstallationDate != nil {
		installDate = s.InstallationDate.Format("01/02/2006")
	}
	return []string{
		s.SubmittedAt.Format("01/02/2006"),
		s.SubmittedByName,
		s.Division,
		entity.LeadSourceName(s.LeadSource),
		s.CustomerName(),
		s.CustomerPhone,
		s.CustomerEmail,
		s.FullAddress(),
		s.EquipmentType,
		s.Tonnage,
		s.SaleAmount.String(),
		s.FinancingBank,
		nullDecimalString(s.DownPayment),
		nullDecimalString(s.MonthlyPayment),
		installDate,
		s.EquipmentNotes,
		s.InstallationNotes,
		s.Status,
		s.ID,
	}
}

func nullDecimalString(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}
