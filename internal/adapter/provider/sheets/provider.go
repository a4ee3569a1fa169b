// Package sheets loads the projects list from a spreadsheet published as CSV.
package sheets

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tdt-studio/portfolio-tracker/internal/domain"
)

// Column order of the published sheet.
const (
	colSlug = iota
	colName
	colStatus
	colDomain
	colDescription
	colFolderURL
)

// ErrNotConfigured is returned when no sheet URL is set.
var ErrNotConfigured = errors.New("sheets: sheet url not configured")

// Provider fetches project rows from a published CSV URL.
type Provider struct {
	sheetURL   string
	httpClient *http.Client
	retryDelay time.Duration
	log        *slog.Logger
}

// NewProvider creates a Provider for sheetURL with the given request timeout.
func NewProvider(sheetURL string, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		sheetURL:   sheetURL,
		httpClient: &http.Client{Timeout: timeout},
		retryDelay: 500 * time.Millisecond,
		log:        logger.With("adapter", "sheets"),
	}
}

// FetchProjects downloads the sheet and returns its rows, header skipped.
func (p *Provider) FetchProjects(ctx context.Context) ([]domain.Project, error) {
	if p.sheetURL == "" {
		return nil, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.sheetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("sheets: create request: %w", err)
	}

	resp, err := p.doWithRetry(ctx, req)
	if err != nil {
		p.log.ErrorContext(ctx, "sheets request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("sheets: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheets: unexpected status %d", resp.StatusCode)
	}

	projects, err := parseCSV(resp.Body)
	if err != nil {
		return nil, err
	}

	p.log.DebugContext(ctx, "sheets response", slog.Int("projects", len(projects)))
	return projects, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "sheets retry", slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(p.retryDelay):
	}

	return p.httpClient.Do(req)
}

// parseCSV maps sheet rows to projects. Short rows leave the missing columns
// empty and rows without a slug are skipped.
func parseCSV(r io.Reader) ([]domain.Project, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	// header
	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return []domain.Project{}, nil
		}
		return nil, fmt.Errorf("sheets: read header: %w", err)
	}

	projects := []domain.Project{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("sheets: parse csv: %w", err)
		}

		p := domain.Project{
			Slug:        domain.NormalizeSlug(column(record, colSlug)),
			Name:        strings.TrimSpace(column(record, colName)),
			Status:      strings.TrimSpace(column(record, colStatus)),
			Domain:      strings.TrimSpace(column(record, colDomain)),
			Description: strings.TrimSpace(column(record, colDescription)),
			FolderURL:   strings.TrimSpace(column(record, colFolderURL)),
		}
		if p.Slug == "" {
			continue
		}
		projects = append(projects, p)
	}

	return projects, nil
}

func column(record []string, i int) string {
	if i < len(record) {
		return record[i]
	}
	return ""
}
