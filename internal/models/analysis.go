package models

import (
	"encoding/json"
	"time"
)

// AnalysisResult — результат внешнего сервиса анализа по тегу.
//
// Results хранится как непрозрачный JSON: структуру ответа определяет
// коллаборатор, мы её не валидируем глубже проверки наличия.
type AnalysisResult struct {
	Hashtag    string          `json:"hashtag"`
	Results    json.RawMessage `json:"results"`
	AnalyzedAt time.Time       `json:"analyzed_at"`
}
