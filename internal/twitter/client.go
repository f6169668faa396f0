package twitter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pribylovaa/go-tweet-dashboard/internal/models"
	"github.com/pribylovaa/go-tweet-dashboard/pkg/log"
)

// Наборы полей recent search v2. Фиксированы: ровно то, что умеет
// разбирать нормализатор.
const (
	tweetFields = "created_at,public_metrics,author_id,entities"
	expansions  = "author_id,entities.mentions.username,attachments.media_keys"
	userFields  = "name,username,profile_image_url,verified"
	mediaFields = "url,preview_image_url,type"
)

// Client — клиент recent search API. Сетевых side-эффектов помимо самого
// запроса нет: персистентность — ответственность оркестратора.
//
// HTTP-клиент настраивается извне (таймауты, прокси и т.д.).
type Client struct {
	client      *http.Client
	baseURL     string
	bearerToken string
	maxResults  int
}

// New создаёт клиент поискового API.
func New(httpClient *http.Client, baseURL, bearerToken string, maxResults int) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	if maxResults <= 0 {
		maxResults = 10
	}

	return &Client{
		client:      httpClient,
		baseURL:     baseURL,
		bearerToken: bearerToken,
		maxResults:  maxResults,
	}
}

// Search выполняет один постраничный запрос по тегу.
//
// Контракт:
//   - query.PageToken прокидывается в апстрим как есть (next_token);
//   - meta.next_token ответа возвращается в SearchPage.NextPageToken;
//   - заголовки x-rate-limit-* читаются с любого ответа, независимо от статуса;
//   - 429 -> *RateLimitError; иной не-2xx или битый JSON -> *UpstreamError;
//   - пустой токен -> ErrNoCredentials до любого сетевого вызова.
func (c *Client) Search(ctx context.Context, query models.SearchQuery) (*models.SearchPage, error) {
	const op = "twitter.Search"

	if c.bearerToken == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrNoCredentials)
	}

	params := url.Values{}
	params.Set("query", "#"+query.Tag)
	params.Set("max_results", strconv.Itoa(c.maxResults))
	params.Set("tweet.fields", tweetFields)
	params.Set("expansions", expansions)
	params.Set("user.fields", userFields)
	params.Set("media.fields", mediaFields)
	if query.PageToken != "" {
		params.Set("next_token", query.PageToken)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: new_request: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		// Сетевые ошибки и таймауты трактуем как недоступность апстрима.
		return nil, fmt.Errorf("%s: %w", op, &UpstreamError{StatusCode: 0, Body: err.Error()})
	}
	defer resp.Body.Close()

	limits := parseRateLimits(resp.Header)
	if limits != nil {
		log.From(ctx).Debug("twitter_rate_limits",
			slog.String("op", op),
			slog.Int("remaining", limits.Remaining),
			slog.Time("resets_at", limits.ResetsAt),
		)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		io.Copy(io.Discard, resp.Body)

		rl := &RateLimitError{}
		if limits != nil {
			rl.ResetAt = limits.ResetsAt
		}
		return nil, fmt.Errorf("%s: %w", op, rl)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read_body: %w", op, &UpstreamError{StatusCode: resp.StatusCode, Body: err.Error()})
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s: %w", op, &UpstreamError{StatusCode: resp.StatusCode, Body: truncate(string(body), 512)})
	}

	var raw searchResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, &UpstreamError{StatusCode: resp.StatusCode, Body: "malformed payload"})
	}

	page := &models.SearchPage{
		Tweets:        make([]models.Tweet, 0, len(raw.Data)),
		NextPageToken: raw.Meta.NextToken,
		RateLimits:    limits,
	}
	for _, item := range raw.Data {
		page.Tweets = append(page.Tweets, normalizeTweet(item, raw.Includes))
	}

	return page, nil
}

// parseRateLimits читает заголовки квоты. Возвращает nil, если их нет
// или они не парсятся.
func parseRateLimits(h http.Header) *models.RateLimits {
	remaining := h.Get("x-rate-limit-remaining")
	reset := h.Get("x-rate-limit-reset")
	if remaining == "" && reset == "" {
		return nil
	}

	limits := &models.RateLimits{Remaining: -1}
	if remaining != "" {
		if n, err := strconv.Atoi(remaining); err == nil {
			limits.Remaining = n
		}
	}
	if reset != "" {
		if sec, err := strconv.ParseInt(reset, 10, 64); err == nil {
			limits.ResetsAt = time.Unix(sec, 0).UTC()
		}
	}

	return limits
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n]
}
