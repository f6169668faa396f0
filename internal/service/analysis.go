package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pribylovaa/go-tweet-dashboard/internal/models"
	"github.com/pribylovaa/go-tweet-dashboard/pkg/log"
)

// Analyze запускает внешний анализ сохранённых твитов тега и сохраняет
// результат (upsert по тегу).
//
// Политика персистентности та же, что у ингеста: ошибка записи в БД
// логируется и не фатальна — полученный payload всё равно возвращается.
func (s *Service) Analyze(ctx context.Context, rawTag string) (*models.AnalysisResult, error) {
	const op = "service.analysis.Analyze"

	tag, err := normalizeTag(rawTag)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	payload, err := s.analyzer.Analyze(ctx, tag)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := models.AnalysisResult{
		Hashtag:    tag,
		Results:    payload,
		AnalyzedAt: time.Now().UTC(),
	}

	if err := s.storage.SaveAnalysis(ctx, result); err != nil {
		log.From(ctx).Warn("save_analysis_failed",
			slog.String("op", op),
			slog.String("tag", tag),
			slog.String("err", err.Error()),
		)
	}

	return &result, nil
}
