package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-tweet-dashboard/internal/models"
)

// Unit-тесты триггера анализа (analysis.go):
//  - happy-path: payload коллаборатора сохраняется по тегу и возвращается
//    байт-в-байт;
//  - ошибка записи в БД не фатальна (та же best-effort политика, что у ингеста);
//  - отказ коллаборатора прокидывается вызывающему.

func TestAnalyze_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newSvcForTest(t, ctrl)

	payload := json.RawMessage(`{"total_tweets":2,"average_sentiment":0.35}`)
	deps.analyzer.EXPECT().Analyze(gomock.Any(), "btc").Return(payload, nil)

	var saved models.AnalysisResult
	deps.storage.EXPECT().
		SaveAnalysis(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, result models.AnalysisResult) error {
			saved = result
			return nil
		})

	result, err := svc.Analyze(context.Background(), "#btc")
	require.NoError(t, err)
	require.Equal(t, "btc", result.Hashtag)
	require.JSONEq(t, string(payload), string(result.Results))
	require.False(t, result.AnalyzedAt.IsZero())

	require.Equal(t, "btc", saved.Hashtag)
	require.Equal(t, string(payload), string(saved.Results))
}

func TestAnalyze_StorageFailure_BestEffort(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newSvcForTest(t, ctrl)

	payload := json.RawMessage(`{"total_tweets":0}`)
	deps.analyzer.EXPECT().Analyze(gomock.Any(), "btc").Return(payload, nil)
	deps.storage.EXPECT().
		SaveAnalysis(gomock.Any(), gomock.Any()).
		Return(errors.New("connection refused"))

	result, err := svc.Analyze(context.Background(), "btc")
	require.NoError(t, err)
	require.Equal(t, string(payload), string(result.Results))
}

func TestAnalyze_CollaboratorError_Propagated(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newSvcForTest(t, ctrl)

	boom := errors.New("analysis service down")
	deps.analyzer.EXPECT().Analyze(gomock.Any(), "btc").Return(nil, boom)

	_, err := svc.Analyze(context.Background(), "btc")
	require.Error(t, err)
	require.ErrorIs(t, err, boom)
}

func TestAnalyze_InvalidTag(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newSvcForTest(t, ctrl)

	_, err := svc.Analyze(context.Background(), "###")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidArgument)
}
