// errors стандартизирует ответы об ошибках HTTP-слоя tweet-dashboard.
// На вход он принимает ошибку бизнес-слоя или клиента апстрима,
// а на выход даёт:
//   - корректный HTTP-статус (429 — ретрай после квоты, 502 — отказ апстрима);
//   - краткое безопасное message без утечки деталей.
//
// Retryability кодируется статусом: 429 означает «повторите после
// Retry-After», 502 — отказ апстрима без кэша, 4xx — ошибка клиента.
package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/pribylovaa/go-tweet-dashboard/internal/service"
	"github.com/pribylovaa/go-tweet-dashboard/internal/twitter"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки на FE.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует ошибку в HTTP-статус и унифицированный ответ.
//
// Маппинг:
//   - ErrInvalidArgument / ErrInvalidCursor -> 400
//   - ErrNotFound -> 404
//   - *twitter.RateLimitError -> 429 (кэша нет, ретрай после resetAt)
//   - *twitter.UpstreamError -> 502
//   - twitter.ErrNoCredentials -> 500 (конфигурация, не ретраится)
//   - context.DeadlineExceeded -> 504, context.Canceled -> 499
//   - прочее -> 500/internal
func ToHTTP(err error) (int, ErrorResponse) {
	code, msg := "internal", "internal error"
	status := http.StatusInternalServerError

	var rateLimited *twitter.RateLimitError
	var upstream *twitter.UpstreamError

	switch {
	case err == nil:
		// Программная ошибка вызова: не маскируем баг успешным статусом.
	case errors.Is(err, service.ErrInvalidArgument), errors.Is(err, service.ErrInvalidCursor):
		status, code, msg = http.StatusBadRequest, "invalid_argument", "invalid argument"
	case errors.Is(err, service.ErrNotFound):
		status, code, msg = http.StatusNotFound, "not_found", "not found"
	case errors.As(err, &rateLimited):
		status, code, msg = http.StatusTooManyRequests, "rate_limited", "search quota exhausted, retry later"
	case errors.As(err, &upstream):
		status, code, msg = http.StatusBadGateway, "upstream_error", "search upstream unavailable"
	case errors.Is(err, twitter.ErrNoCredentials):
		status, code, msg = http.StatusInternalServerError, "configuration", "service is not configured"
	case errors.Is(err, context.DeadlineExceeded):
		status, code, msg = http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded"
	case errors.Is(err, context.Canceled):
		status, code, msg = StatusClientClosedRequest, "canceled", "canceled"
	}

	return status, ErrorResponse{Error: APIError{Code: code, Message: msg}}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
// Для 429 выставляет Retry-After по resetAt квоты.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	// Прокидываем request_id для фронта, чтобы он мог репортить баги с привязкой.
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	var rateLimited *twitter.RateLimitError
	if errors.As(err, &rateLimited) && !rateLimited.ResetAt.IsZero() {
		if after := time.Until(rateLimited.ResetAt); after > 0 {
			w.Header().Set("Retry-After", strconv.Itoa(int(after.Seconds())+1))
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
