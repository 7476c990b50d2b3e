package reverso

import (
	"bytes"
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/heartmarshall/reverso-notes/internal/config"
	"github.com/heartmarshall/reverso-notes/internal/domain"
)

const (
	queryPath = "/bst-query-service"

	// maxPages bounds pagination when the caller asks for more examples than
	// Reverso has.
	maxPages = 10

	// errBodyLimit caps how much of a failed response ends up in the error.
	errBodyLimit = 512
)

// Client fetches translations and usage examples from Reverso Context.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client from the remote settings.
func NewClient(cfg config.RemoteConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "reverso"),
	}
}

// Lookup fetches translations for req.Query and up to req.MaxExamples usage
// examples, following pages as needed.
//
// Network failures and throttling responses wrap domain.ErrTransient; the
// caller decides whether to retry. A query Reverso knows nothing about is not
// an error: the result is simply empty.
func (c *Client) Lookup(ctx context.Context, req domain.LookupRequest) (*domain.LookupResult, error) {
	c.log.DebugContext(ctx, "reverso request",
		slog.String("query", req.Query),
		slog.String("source_lang", req.SourceLang),
		slog.String("target_lang", req.TargetLang),
	)

	result := &domain.LookupResult{}
	for page := 1; page <= maxPages; page++ {
		resp, err := c.fetchPage(ctx, req, page)
		if err != nil {
			return nil, err
		}
		if page == 1 {
			result.Translations = mapTranslations(resp.Dictionary)
		}
		for _, ex := range resp.List {
			if len(result.Examples) >= req.MaxExamples {
				break
			}
			result.Examples = append(result.Examples, domain.Example{
				Source: parseHighlighted(ex.SText),
				Target: parseHighlighted(ex.TText),
			})
		}

		if len(result.Examples) >= req.MaxExamples || len(resp.List) == 0 || page >= resp.NPages {
			break
		}
	}

	c.log.DebugContext(ctx, "reverso response",
		slog.String("query", req.Query),
		slog.Int("translations", len(result.Translations)),
		slog.Int("examples", len(result.Examples)),
	)
	return result, nil
}

func (c *Client) fetchPage(ctx context.Context, req domain.LookupRequest, page int) (*apiResponse, error) {
	body, err := json.Marshal(apiRequest{
		SourceText: req.Query,
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
		NPage:      page,
	})
	if err != nil {
		return nil, fmt.Errorf("reverso: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+queryPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("reverso: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json; charset=UTF-8")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("reverso: request failed: %w: %w", domain.ErrTransient, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, errBodyLimit))
		return nil, fmt.Errorf("reverso: %w", &domain.UpstreamError{
			Status:  resp.StatusCode,
			Message: strings.TrimSpace(string(msg)),
		})
	}

	var out apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		// A body cut short is a dropped connection, not a bad payload.
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("reverso: read body: %w: %w", domain.ErrTransient, err)
		}
		return nil, fmt.Errorf("reverso: decode json: %w", err)
	}
	return &out, nil
}

// mapTranslations keeps entries with a term and orders them by descending
// frequency. Equal frequencies keep Reverso's order.
func mapTranslations(entries []apiDictionaryEntry) []domain.TranslationCandidate {
	out := make([]domain.TranslationCandidate, 0, len(entries))
	for _, e := range entries {
		term := strings.TrimSpace(e.Term)
		if term == "" {
			continue
		}
		out = append(out, domain.TranslationCandidate{Text: term, Frequency: e.AlignFreq})
	}
	slices.SortStableFunc(out, func(a, b domain.TranslationCandidate) int {
		return cmp.Compare(b.Frequency, a.Frequency)
	})
	return out
}
