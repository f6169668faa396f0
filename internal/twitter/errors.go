package twitter

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoCredentials — bearer-токен не задан.
// Конфигурационная ошибка: фатальна, не ретраится, fallback не применяется.
var ErrNoCredentials = errors.New("missing twitter bearer token")

// RateLimitError — апстрим исчерпал квоту (HTTP 429).
// Вызов можно повторить после ResetAt.
type RateLimitError struct {
	ResetAt time.Time
}

func (e *RateLimitError) Error() string {
	if e.ResetAt.IsZero() {
		return "twitter rate limit exceeded"
	}

	return fmt.Sprintf("twitter rate limit exceeded, resets at %s", e.ResetAt.UTC().Format(time.RFC3339))
}

// UpstreamError — любой другой неуспех апстрима:
// не-2xx ответ или некорректный payload.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("twitter api error: status=%d body=%q", e.StatusCode, e.Body)
}
