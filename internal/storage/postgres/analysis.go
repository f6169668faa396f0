package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pribylovaa/go-tweet-dashboard/internal/models"
	"github.com/pribylovaa/go-tweet-dashboard/internal/storage"
)

// SaveAnalysis сохраняет результат анализа с upsert по тегу:
// одна строка на тег, повторный анализ полностью заменяет предыдущий.
func (s *Storage) SaveAnalysis(ctx context.Context, result models.AnalysisResult) error {
	const op = "storage.postgres.SaveAnalysis"

	_, err := s.db.Exec(ctx, `
	INSERT INTO tweet_analysis (hashtag, results, analyzed_at)
	VALUES ($1, $2, $3)
	ON CONFLICT (hashtag) DO UPDATE
	SET results = EXCLUDED.results,
	    analyzed_at = EXCLUDED.analyzed_at
	`, result.Hashtag, []byte(result.Results), result.AnalyzedAt.UTC())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			// Сюда можно попасть только при гонке с конкурентной вставкой
			// до разрешения конфликта; ретрай на вызывающем.
			return fmt.Errorf("%s: %w", op, storage.ErrConflict)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// AnalysisByTag возвращает последний сохранённый результат анализа по тегу.
// Если записи нет — storage.ErrNotFound.
func (s *Storage) AnalysisByTag(ctx context.Context, tag string) (*models.AnalysisResult, error) {
	const op = "storage.postgres.AnalysisByTag"

	var result models.AnalysisResult
	var results []byte

	err := s.db.QueryRow(ctx, `
	SELECT hashtag, results, analyzed_at
	FROM tweet_analysis
	WHERE hashtag = $1
	`, tag).Scan(&result.Hashtag, &results, &result.AnalyzedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result.Results = results
	result.AnalyzedAt = result.AnalyzedAt.UTC()

	return &result, nil
}
