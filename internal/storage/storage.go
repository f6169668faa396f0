// storage определяет контракты доступа к БД для tweet-dashboard.
package storage

import (
	"context"
	"errors"

	"github.com/pribylovaa/go-tweet-dashboard/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCursor — битый/чужой page_token (курсор пагинации).
	ErrInvalidCursor = errors.New("invalid cursor")
	// ErrConflict — конфликт уникальности вне политики ignore-duplicates.
	ErrConflict = errors.New("conflict")
)

// ConflictPolicy — политика разрешения конфликтов при вставке твитов.
//
// Политика — явный параметр контракта, а не неявный дефолт слоя БД:
// даунстрим-потребители рассчитывают на first-write-wins, и это
// должно быть видимой, тестируемой настройкой.
type ConflictPolicy string

const (
	// ConflictIgnore — повторная вставка по существующему tweet_id — no-op,
	// содержимое первой записи сохраняется.
	ConflictIgnore ConflictPolicy = "ignore"
)

// TweetStorage описывает операции над сущностью models.Tweet.
type TweetStorage interface {
	// SaveTweets сохраняет пачку твитов с ключом дедупликации tweet_id.
	// Возвращает число фактически вставленных строк (дубликаты не считаются).
	// Ошибка любой части батча — ошибка всего вызова; откат на вызывающем.
	SaveTweets(ctx context.Context, searchTag string, items []models.Tweet, onConflict ConflictPolicy) (int64, error)
	// ListTweets возвращает страницу сохранённых твитов тега,
	// отсортированных по (created_at DESC, tweet_id DESC).
	// При некорректном page_token — ErrInvalidCursor.
	ListTweets(ctx context.Context, opts models.ListOptions) (*models.Page, error)
}

// AnalysisStorage описывает операции над результатами анализа.
type AnalysisStorage interface {
	// SaveAnalysis сохраняет результат анализа с upsert по тегу:
	// одна строка на тег, повторный анализ заменяет предыдущий.
	SaveAnalysis(ctx context.Context, result models.AnalysisResult) error
	// AnalysisByTag возвращает последний сохранённый результат по тегу.
	// Если записи нет — ErrNotFound.
	AnalysisByTag(ctx context.Context, tag string) (*models.AnalysisResult, error)
}

// Storage задаёт контракт доступа к хранилищу для tweet-dashboard.
type Storage interface {
	TweetStorage
	AnalysisStorage
	Close()
}
