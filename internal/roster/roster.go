// Package roster loads the list of bots to report on from a remote CSV file.
package roster

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/and161185/line-insight/internal/errs"
	"github.com/and161185/line-insight/model"
	"go.uber.org/zap"
)

// Column names read from the roster header row.
const (
	ColumnName        = "name"
	ColumnAccessToken = "access_token"
	ColumnTrackingID  = "tracking_id"
)

// Loader fetches and parses the roster CSV.
type Loader struct {
	httpClient *http.Client
	logger     *zap.SugaredLogger
}

// NewLoader creates a Loader using hc for the download.
func NewLoader(hc *http.Client, logger *zap.SugaredLogger) *Loader {
	return &Loader{httpClient: hc, logger: logger}
}

// Load returns the bots listed at url. Any fetch or parse failure is logged
// and yields an empty roster.
func (l *Loader) Load(ctx context.Context, url string) []model.Bot {
	if url == "" {
		l.logger.Warnw("roster url is not configured", "err", errs.ErrEmptyRoster)
		return []model.Bot{}
	}

	body, err := l.fetch(ctx, url)
	if err != nil {
		l.logger.Errorw("failed to fetch roster", "url", url, "err", err)
		return []model.Bot{}
	}

	records, err := ParseRecords(body)
	if err != nil {
		l.logger.Errorw("failed to parse roster", "url", url, "err", err)
		return []model.Bot{}
	}

	bots := make([]model.Bot, 0, len(records))
	for _, r := range records {
		bots = append(bots, model.Bot{
			Name:        r[ColumnName],
			AccessToken: r[ColumnAccessToken],
			TrackingID:  r[ColumnTrackingID],
		})
	}
	return bots
}

func (l *Loader) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("%w: %d", errs.ErrUnexpectedStatus, resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(b), nil
}

// ParseRecords parses CSV text with a header row into one map per data row,
// keyed by header name. Surrounding whitespace is trimmed first.
func ParseRecords(text string) ([]map[string]string, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "\ufeff")
	if text == "" {
		return []map[string]string{}, nil
	}

	r := csv.NewReader(strings.NewReader(text))
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	records := []map[string]string{}
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		rec := make(map[string]string, len(header))
		for i, col := range header {
			rec[col] = row[i]
		}
		records = append(records, rec)
	}
	return records, nil
}
