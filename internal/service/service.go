// service содержит бизнес-логику tweet-dashboard.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"github.com/pribylovaa/go-tweet-dashboard/internal/config"
	"github.com/pribylovaa/go-tweet-dashboard/internal/models"
	"github.com/pribylovaa/go-tweet-dashboard/internal/storage"
)

var (
	// ErrNotFound — сущность отсутствует.
	// Транспорт: 404.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCursor — битый/чужой page_token.
	// Транспорт: 400.
	ErrInvalidCursor = errors.New("invalid cursor")
	// ErrInvalidArgument — некорректные входные аргументы (пустой/битый тег).
	// Транспорт: 400.
	ErrInvalidArgument = errors.New("invalid argument")
)

// SearchClient — внешний поисковый API (см. internal/twitter).
type SearchClient interface {
	Search(ctx context.Context, query models.SearchQuery) (*models.SearchPage, error)
}

// SnapshotStore — кэш последней успешной выборки по тегу (см. internal/snapshot).
type SnapshotStore interface {
	Write(ctx context.Context, tag string, tweets []models.Tweet) error
	Read(ctx context.Context, tag string) (*models.Snapshot, error)
}

// AnalysisClient — внешний сервис sentiment/bot-анализа (см. internal/analysis).
type AnalysisClient interface {
	Analyze(ctx context.Context, tag string) (json.RawMessage, error)
}

// Service — описывает бизнес-логику tweet-dashboard.
//
// Все зависимости передаются явно через конструктор: каждую можно
// подменить в тестах без глобального состояния.
type Service struct {
	search    SearchClient
	snapshots SnapshotStore
	analyzer  AnalysisClient
	storage   storage.Storage
	cfg       config.Config
}

// New создает новый экземпляр Service.
func New(search SearchClient, snapshots SnapshotStore, analyzer AnalysisClient, st storage.Storage, cfg config.Config) *Service {
	return &Service{
		search:    search,
		snapshots: snapshots,
		analyzer:  analyzer,
		storage:   st,
		cfg:       cfg,
	}
}

// Тег — «словесные» символы, как в хэштегах апстрима.
var reTag = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// normalizeTag приводит тег к каноническому виду: обрезка пробелов,
// срез ведущей решётки. Пустой или содержащий посторонние символы тег —
// ErrInvalidArgument.
func normalizeTag(raw string) (string, error) {
	tag := strings.TrimSpace(raw)
	tag = strings.TrimPrefix(tag, "#")
	tag = strings.TrimSpace(tag)

	if tag == "" || !reTag.MatchString(tag) {
		return "", ErrInvalidArgument
	}

	return tag, nil
}
