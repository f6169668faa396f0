// analysis — клиент внешнего сервиса sentiment/bot-анализа.
//
// Ответ коллаборатора для нас непрозрачен: мы проверяем только признак
// успеха и наличие данных, структуру payload не валидируем.
package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client — HTTP-клиент сервиса анализа.
type Client struct {
	client  *http.Client
	baseURL string
}

// New создаёт клиент сервиса анализа.
func New(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{client: httpClient, baseURL: baseURL}
}

// analyzeResponse — конверт ответа коллаборатора.
type analyzeResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// Analyze запускает анализ сохранённых твитов тега:
// POST {base_url}/analyze/{tag}. Возвращает payload как есть.
func (c *Client) Analyze(ctx context.Context, tag string) (json.RawMessage, error) {
	const op = "analysis.Analyze"

	endpoint := c.baseURL + "/analyze/" + url.PathEscape(tag)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: new_request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: do: %w", op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read_body: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s: status=%d body=%q", op, resp.StatusCode, truncate(string(body), 512))
	}

	var envelope analyzeResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	if !envelope.Success || len(envelope.Data) == 0 {
		return nil, fmt.Errorf("%s: collaborator failure: %s", op, envelope.Error)
	}

	return envelope.Data, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n]
}
