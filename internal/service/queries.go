package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pribylovaa/go-tweet-dashboard/internal/models"
	"github.com/pribylovaa/go-tweet-dashboard/internal/snapshot"
	"github.com/pribylovaa/go-tweet-dashboard/internal/storage"
)

// SnapshotByTag возвращает последний снапшот тега.
// Если снапшота нет — ErrNotFound.
func (s *Service) SnapshotByTag(ctx context.Context, rawTag string) (*models.Snapshot, error) {
	const op = "service.queries.SnapshotByTag"

	tag, err := normalizeTag(rawTag)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	snap, err := s.snapshots.Read(ctx, tag)
	if err != nil {
		if errors.Is(err, snapshot.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return snap, nil
}

// ListTweets возвращает страницу сохранённых твитов тега.
//
// Особенности:
//   - limit нормализуется: <=0 -> cfg.Limits.Default, > max -> cfg.Limits.Max;
//   - page_token прокидывается в хранилище как есть;
//   - storage.ErrInvalidCursor -> ErrInvalidCursor.
func (s *Service) ListTweets(ctx context.Context, rawTag string, opts models.ListOptions) (*models.Page, error) {
	const op = "service.queries.ListTweets"

	tag, err := normalizeTag(rawTag)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	opts.Tag = tag

	if opts.Limit <= 0 {
		opts.Limit = s.cfg.Limits.Default
	}
	if opts.Limit > s.cfg.Limits.Max {
		opts.Limit = s.cfg.Limits.Max
	}

	page, err := s.storage.ListTweets(ctx, opts)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidCursor) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCursor)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return page, nil
}

// AnalysisByTag возвращает последний сохранённый результат анализа по тегу.
// Если анализа ещё не было — ErrNotFound.
func (s *Service) AnalysisByTag(ctx context.Context, rawTag string) (*models.AnalysisResult, error) {
	const op = "service.queries.AnalysisByTag"

	tag, err := normalizeTag(rawTag)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result, err := s.storage.AnalysisByTag(ctx, tag)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}
