package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pribylovaa/go-tweet-dashboard/internal/models"
	"github.com/pribylovaa/go-tweet-dashboard/internal/service"
)

// Service — операции бизнес-слоя, нужные HTTP-транспорту.
// Интерфейс сужен до используемого, чтобы хендлеры тестировались подменой.
type Service interface {
	Ingest(ctx context.Context, query service.IngestQuery) (*service.IngestResult, error)
	SnapshotByTag(ctx context.Context, tag string) (*models.Snapshot, error)
	ListTweets(ctx context.Context, tag string, opts models.ListOptions) (*models.Page, error)
	Analyze(ctx context.Context, tag string) (*models.AnalysisResult, error)
	AnalysisByTag(ctx context.Context, tag string) (*models.AnalysisResult, error)
}

// Handlers агрегирует зависимости HTTP-хендлеров.
type Handlers struct {
	Service Service
}

func New(svc Service) *Handlers {
	return &Handlers{Service: svc}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// errInvalidArgument — локальная ошибка парсинга входа -> 400.
func errInvalidArgument() error {
	return fmt.Errorf("bad request: %w", service.ErrInvalidArgument)
}
