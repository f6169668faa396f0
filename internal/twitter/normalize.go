package twitter

import "github.com/pribylovaa/go-tweet-dashboard/internal/models"

// normalizeTweet отображает сырой твит в доменную модель.
//
// Чистая функция без пути ошибки: у каждого поля есть дефолт на случай
// отсутствия в payload. Частично заполненный твит нормализуется, а не
// отбрасывается — формы ответа апстрима различаются между версиями API.
//
// Правила:
//   - author ищется в includes.users по author_id; не найден -> nil;
//   - каждый media_key ищется в includes.media; неразрешённые ключи
//     молча отбрасываются, порядок оставшихся сохраняется;
//   - metrics отсутствуют -> nil;
//   - hashtags/mentions/media отсутствуют -> пустые слайсы.
func normalizeTweet(raw rawTweet, includes rawIncludes) models.Tweet {
	tweet := models.Tweet{
		ID:        raw.ID,
		Text:      raw.Text,
		CreatedAt: raw.CreatedAt,
		Media:     []models.Media{},
		Hashtags:  []string{},
		Mentions:  []string{},
	}

	if raw.Metrics != nil {
		tweet.Metrics = &models.Metrics{
			RetweetCount: raw.Metrics.RetweetCount,
			ReplyCount:   raw.Metrics.ReplyCount,
			LikeCount:    raw.Metrics.LikeCount,
			QuoteCount:   raw.Metrics.QuoteCount,
		}
	}

	if raw.AuthorID != "" {
		for _, user := range includes.Users {
			if user.ID == raw.AuthorID {
				tweet.Author = &models.Author{
					ID:              user.ID,
					Username:        user.Username,
					Name:            user.Name,
					ProfileImageURL: user.ProfileImageURL,
					Verified:        user.Verified,
				}
				break
			}
		}
	}

	if raw.Attachments != nil {
		for _, key := range raw.Attachments.MediaKeys {
			if media, ok := lookupMedia(includes.Media, key); ok {
				tweet.Media = append(tweet.Media, media)
			}
		}
	}

	if raw.Entities != nil {
		for _, h := range raw.Entities.Hashtags {
			if h.Tag != "" {
				tweet.Hashtags = append(tweet.Hashtags, h.Tag)
			}
		}
		for _, m := range raw.Entities.Mentions {
			if m.Username != "" {
				tweet.Mentions = append(tweet.Mentions, m.Username)
			}
		}
	}

	return tweet
}

func lookupMedia(media []rawMedia, key string) (models.Media, bool) {
	for _, m := range media {
		if m.MediaKey == key {
			return models.Media{
				MediaKey:        m.MediaKey,
				Type:            m.Type,
				URL:             m.URL,
				PreviewImageURL: m.PreviewImageURL,
			}, true
		}
	}

	return models.Media{}, false
}
