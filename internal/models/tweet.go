// models содержит доменные сущности tweet-dashboard.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import "time"

// Tweet — доменная сущность твита после нормализации ответа поискового API.
//
// Особенности:
//   - ID — внешний идентификатор твита (единственный ключ дедупликации);
//   - CreatedAt — строка ISO-8601 в том виде, в каком её отдал апстрим;
//   - опциональные блоки (Metrics, Author) — nil, если апстрим их не прислал;
//   - последовательности (Media, Hashtags, Mentions) — всегда не-nil,
//     при отсутствии данных — пустые.
type Tweet struct {
	// ID — внешний уникальный идентификатор твита.
	ID string `json:"id"`
	// Text — текст твита.
	Text string `json:"text"`
	// CreatedAt — время публикации у источника (ISO-8601).
	CreatedAt string `json:"created_at"`
	// Metrics — публичные счётчики. nil, если апстрим их не вернул.
	Metrics *Metrics `json:"metrics,omitempty"`
	// Author — автор твита из includes-таблицы ответа. nil, если не найден.
	Author *Author `json:"author,omitempty"`
	// Media — вложения в исходном порядке. Неразрешённые media_key отбрасываются.
	Media []Media `json:"media"`
	// Hashtags — имена хэштегов без решётки.
	Hashtags []string `json:"hashtags"`
	// Mentions — упомянутые username.
	Mentions []string `json:"mentions"`
}

// Metrics — публичные счётчики твита.
type Metrics struct {
	RetweetCount int64 `json:"retweet_count"`
	ReplyCount   int64 `json:"reply_count"`
	LikeCount    int64 `json:"like_count"`
	QuoteCount   int64 `json:"quote_count"`
}

// Author — автор твита.
type Author struct {
	ID              string `json:"id"`
	Username        string `json:"username"`
	Name            string `json:"name"`
	ProfileImageURL string `json:"profile_image_url,omitempty"`
	Verified        bool   `json:"verified,omitempty"`
}

// Media — вложение твита.
type Media struct {
	MediaKey        string `json:"media_key"`
	Type            string `json:"type"`
	URL             string `json:"url,omitempty"`
	PreviewImageURL string `json:"preview_image_url,omitempty"`
}

// SearchQuery — параметры запроса к поисковому API.
//
// Tag передаётся уже нормализованным (без решётки, обрезанный).
// PageToken — непрозрачный маркер продолжения из предыдущего SearchPage;
// прокидывается в апстрим как есть.
type SearchQuery struct {
	Tag       string
	PageToken string
}

// SearchPage — одна страница результатов поиска.
//
// Пустой NextPageToken означает конец выдачи на момент запроса,
// а не глобальный конец: свежий запрос может вернуть новые твиты.
type SearchPage struct {
	Tweets        []Tweet
	NextPageToken string
	// RateLimits — состояние квоты апстрима, если он прислал заголовки.
	RateLimits *RateLimits
}

// RateLimits — состояние квоты поискового API.
type RateLimits struct {
	Remaining int       `json:"remaining"`
	ResetsAt  time.Time `json:"resets_at"`
}

// Snapshot — последний успешный результат выборки по тегу.
// Перезаписывается целиком при каждом успешном запросе (кэш, а не история).
type Snapshot struct {
	Tag        string    `json:"tag"`
	Tweets     []Tweet   `json:"tweets"`
	CapturedAt time.Time `json:"captured_at"`
}

// ListOptions — параметры выборки сохранённых твитов.
//
// Особенности:
//   - при Limit == 0 применяется серверный default (из config.LimitsConfig.Default);
//   - PageToken == "" -> первая страница.
type ListOptions struct {
	Tag       string
	Limit     int32
	PageToken string
}

// Page — страница сохранённых твитов со ссылкой на продолжение.
type Page struct {
	Items         []Tweet
	NextPageToken string
}
