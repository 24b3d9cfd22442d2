package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/ugmchurch/steeple/internal/content"
)

// SheetsSink appends one row per application to a Google Sheets spreadsheet
// through the values:append API.
type SheetsSink struct {
	client        *http.Client
	baseURL       string
	apiKey        string
	spreadsheetID string
	sheetName     string
}

// NewSheetsSink creates the spreadsheet sink. Leaving apiKey or spreadsheetID
// empty makes the sink unconfigured.
func NewSheetsSink(client *http.Client, baseURL, apiKey, spreadsheetID, sheetName string) *SheetsSink {
	if client == nil {
		client = &http.Client{Timeout: deliverTimeout}
	}
	return &SheetsSink{
		client:        client,
		baseURL:       baseURL,
		apiKey:        apiKey,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}
}

func (s *SheetsSink) Name() string { return "sheets" }

func (s *SheetsSink) Configured() bool { return s.apiKey != "" && s.spreadsheetID != "" }

func (s *SheetsSink) Deliver(ctx context.Context, app *content.Application) error {
	// Row layout matches the CSV export: submission stamp first, then the
	// applicant fields in form order.
	body, err := json.Marshal(map[string][][]string{
		"values": {app.CSVRow()},
	})
	if err != nil {
		return fmt.Errorf("failed to encode sheets request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s:append?valueInputOption=USER_ENTERED&key=%s",
		s.baseURL,
		url.PathEscape(s.spreadsheetID),
		url.PathEscape(s.sheetName),
		url.QueryEscape(s.apiKey),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build sheets request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to append to spreadsheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sheets api returned %d: %s", resp.StatusCode, detail)
	}
	return nil
}
