// twitter — клиент поискового API твитов (recent search v2)
// и нормализация его ответов в доменные модели.
package twitter

// searchResponse — корневая структура ответа recent search.
type searchResponse struct {
	Data     []rawTweet  `json:"data"`
	Includes rawIncludes `json:"includes"`
	Meta     rawMeta     `json:"meta"`
}

// rawTweet — один твит в исходном виде.
//
// Форма payload меняется между версиями API и наборами expansions,
// поэтому все вложенные блоки опциональны: отсутствие любого из них
// не должно ломать нормализацию.
type rawTweet struct {
	ID          string         `json:"id"`
	Text        string         `json:"text"`
	CreatedAt   string         `json:"created_at"`
	AuthorID    string         `json:"author_id"`
	Metrics     *rawMetrics    `json:"public_metrics"`
	Entities    *rawEntities   `json:"entities"`
	Attachments *rawAttachment `json:"attachments"`
}

// rawMetrics — public_metrics твита.
type rawMetrics struct {
	RetweetCount int64 `json:"retweet_count"`
	ReplyCount   int64 `json:"reply_count"`
	LikeCount    int64 `json:"like_count"`
	QuoteCount   int64 `json:"quote_count"`
}

// rawEntities — размеченные сущности текста.
type rawEntities struct {
	Hashtags []rawHashtag `json:"hashtags"`
	Mentions []rawMention `json:"mentions"`
}

type rawHashtag struct {
	Tag string `json:"tag"`
}

type rawMention struct {
	Username string `json:"username"`
}

// rawAttachment — ссылки на вложения через media_keys.
type rawAttachment struct {
	MediaKeys []string `json:"media_keys"`
}

// rawIncludes — side-таблицы ответа: авторы и медиа,
// на которые ссылаются твиты по идентификаторам.
type rawIncludes struct {
	Users []rawUser  `json:"users"`
	Media []rawMedia `json:"media"`
}

type rawUser struct {
	ID              string `json:"id"`
	Username        string `json:"username"`
	Name            string `json:"name"`
	ProfileImageURL string `json:"profile_image_url"`
	Verified        bool   `json:"verified"`
}

type rawMedia struct {
	MediaKey        string `json:"media_key"`
	Type            string `json:"type"`
	URL             string `json:"url"`
	PreviewImageURL string `json:"preview_image_url"`
}

// rawMeta — метаданные страницы, включая маркер продолжения.
type rawMeta struct {
	NextToken string `json:"next_token"`
}
