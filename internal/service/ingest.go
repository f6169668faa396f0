package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pribylovaa/go-tweet-dashboard/internal/models"
	"github.com/pribylovaa/go-tweet-dashboard/internal/snapshot"
	"github.com/pribylovaa/go-tweet-dashboard/internal/storage"
	"github.com/pribylovaa/go-tweet-dashboard/internal/twitter"
	"github.com/pribylovaa/go-tweet-dashboard/pkg/log"
)

// Источники данных в ответе Ingest.
const (
	SourceLive  = "live"
	SourceCache = "cache"
)

// IngestQuery — входные параметры одного прогона ингеста.
type IngestQuery struct {
	// Tag — хэштег, возможно с ведущей решёткой.
	Tag string
	// PageToken — маркер продолжения из предыдущего IngestResult.
	// Прокидывается в апстрим дословно; потеря токена означает перезапуск
	// пагинации с самых свежих результатов (допустимая деградация).
	PageToken string
}

// IngestResult — единый конверт результата ингеста.
type IngestResult struct {
	// Source — откуда данные: SourceLive или SourceCache.
	Source string
	// Tag — нормализованный тег.
	Tag string
	// Tweets — нормализованные твиты.
	Tweets []models.Tweet
	// NextPageToken — маркер продолжения апстрима (только live).
	NextPageToken string
	// RateLimits — состояние квоты апстрима, если он её сообщил (только live).
	RateLimits *models.RateLimits
	// StaleSince — момент снятия снапшота (только cache).
	StaleSince time.Time
	// FetchError — исходная ошибка апстрима (только cache).
	FetchError string
	// Stored — число новых строк, записанных в БД (только live).
	Stored int64
	// StorageDegraded — персистентность не удалась; данные в ответе
	// при этом полны (запись best-effort).
	StorageDegraded bool
}

// Ingest — один прогон конвейера: поиск -> нормализация -> снапшот + БД.
//
// Три терминальных исхода:
//  1. fresh success: апстрим ответил; снапшот и БД пишутся best-effort
//     (их ошибки логируются и не фатальны) -> Source = "live";
//  2. fallback success: апстрим отказал (rate limit / upstream error),
//     но для тега есть снапшот -> Source = "cache", StaleSince и FetchError
//     заполнены;
//  3. total failure: апстрим отказал и снапшота нет (или он не читается) —
//     исходная ошибка апстрима возвращается как есть.
//
// Ошибка конфигурации (twitter.ErrNoCredentials) фатальна: fallback
// к снапшоту не применяется.
func (s *Service) Ingest(ctx context.Context, query IngestQuery) (*IngestResult, error) {
	const op = "service.ingest.Ingest"

	tag, err := normalizeTag(query.Tag)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg := log.From(ctx)

	page, err := s.search.Search(ctx, models.SearchQuery{
		Tag:       tag,
		PageToken: query.PageToken,
	})
	if err != nil {
		return s.ingestFallback(ctx, op, tag, err)
	}

	result := &IngestResult{
		Source:        SourceLive,
		Tag:           tag,
		Tweets:        page.Tweets,
		NextPageToken: page.NextPageToken,
		RateLimits:    page.RateLimits,
	}

	if err := s.snapshots.Write(ctx, tag, page.Tweets); err != nil {
		lg.Warn("snapshot_write_failed",
			slog.String("op", op),
			slog.String("tag", tag),
			slog.String("err", err.Error()),
		)
	}

	stored, err := s.storage.SaveTweets(ctx, tag, page.Tweets, storage.ConflictIgnore)
	if err != nil {
		lg.Warn("save_tweets_failed",
			slog.String("op", op),
			slog.String("tag", tag),
			slog.String("err", err.Error()),
		)
		result.StorageDegraded = true
	}
	result.Stored = stored

	lg.Info("ingest_done",
		slog.String("op", op),
		slog.String("tag", tag),
		slog.Int("fetched", len(page.Tweets)),
		slog.Int64("stored", stored),
	)

	return result, nil
}

// ingestFallback пытается отдать последний снапшот тега вместо отказа апстрима.
func (s *Service) ingestFallback(ctx context.Context, op, tag string, fetchErr error) (*IngestResult, error) {
	if !isRecoverable(fetchErr) {
		return nil, fmt.Errorf("%s: %w", op, fetchErr)
	}

	snap, err := s.snapshots.Read(ctx, tag)
	if err != nil {
		if !errors.Is(err, snapshot.ErrNotFound) {
			log.From(ctx).Warn("snapshot_read_failed",
				slog.String("op", op),
				slog.String("tag", tag),
				slog.String("err", err.Error()),
			)
		}
		// Снапшота нет — эскалируем исходную ошибку апстрима.
		return nil, fmt.Errorf("%s: %w", op, fetchErr)
	}

	log.From(ctx).Info("ingest_served_from_cache",
		slog.String("op", op),
		slog.String("tag", tag),
		slog.Time("captured_at", snap.CapturedAt),
		slog.String("fetch_err", fetchErr.Error()),
	)

	return &IngestResult{
		Source:     SourceCache,
		Tag:        tag,
		Tweets:     snap.Tweets,
		StaleSince: snap.CapturedAt,
		FetchError: fetchErr.Error(),
	}, nil
}

// isRecoverable — только отказы самого апстрима компенсируются снапшотом.
// Ошибка конфигурации и отмена контекста — нет.
func isRecoverable(err error) bool {
	var rateLimited *twitter.RateLimitError
	var upstream *twitter.UpstreamError

	return errors.As(err, &rateLimited) || errors.As(err, &upstream)
}
