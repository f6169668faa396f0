package postgres

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"context"

	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/go-tweet-dashboard/internal/models"
	"github.com/pribylovaa/go-tweet-dashboard/internal/storage"
)

// SaveTweets сохраняет пачку твитов с дедупликацией по tweet_id.
//
// Политика ConflictIgnore (единственная поддерживаемая): повторная вставка
// существующего tweet_id — no-op, содержимое первой записи сохраняется
// (ON CONFLICT DO NOTHING, без merge). Возвращает число фактически
// вставленных строк — дубликаты в счёт не входят.
func (s *Storage) SaveTweets(ctx context.Context, searchTag string, items []models.Tweet, onConflict storage.ConflictPolicy) (int64, error) {
	const op = "storage.postgres.SaveTweets"

	if onConflict != storage.ConflictIgnore {
		return 0, fmt.Errorf("%s: unsupported conflict policy %q", op, onConflict)
	}

	if len(items) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()

	batch := &pgx.Batch{}
	for _, item := range items {
		metrics, err := marshalOrNil(item.Metrics)
		if err != nil {
			return 0, fmt.Errorf("%s: marshal metrics: %w", op, err)
		}

		author, err := marshalOrNil(item.Author)
		if err != nil {
			return 0, fmt.Errorf("%s: marshal author: %w", op, err)
		}

		media, err := json.Marshal(item.Media)
		if err != nil {
			return 0, fmt.Errorf("%s: marshal media: %w", op, err)
		}

		batch.Queue(`
		INSERT INTO tweets (tweet_id, content, created_at, metrics, author, media, hashtags, mentions, search_hashtag, fetched_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (tweet_id) DO NOTHING
		`, item.ID, item.Text, item.CreatedAt, metrics, author, media,
			item.Hashtags, item.Mentions, searchTag, now)
	}

	br := s.db.SendBatch(ctx, batch)
	defer br.Close()

	var stored int64
	for i := 0; i < batch.Len(); i++ {
		tag, err := br.Exec()
		if err != nil {
			return stored, fmt.Errorf("%s: batch item %d: %w", op, i, err)
		}
		stored += tag.RowsAffected()
	}

	return stored, nil
}

// ListTweets возвращает страницу сохранённых твитов тега с курсорной пагинацией.
// Сортировка фиксирована: created_at DESC, tweet_id DESC
// (ISO-8601 сортируется лексикографически).
// page_token — непрозрачная строка (base64url).
// При некорректном токене возвращает storage.ErrInvalidCursor.
func (s *Storage) ListTweets(ctx context.Context, opts models.ListOptions) (*models.Page, error) {
	const op = "storage.postgres.ListTweets"

	limit := opts.Limit
	if limit <= 0 {
		// Защита от нуля/отрицательного значения.
		limit = 1
	}

	var rows pgx.Rows
	var err error

	if opts.PageToken == "" {
		rows, err = s.db.Query(ctx, `
		SELECT tweet_id, content, created_at, metrics, author, media, hashtags, mentions
		FROM tweets
		WHERE search_hashtag = $1
		ORDER BY created_at DESC, tweet_id DESC
		LIMIT $2
		`, opts.Tag, limit)
	} else {
		createdCur, idCur, decErr := decodePageToken(opts.PageToken)
		if decErr != nil {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidCursor)
		}

		rows, err = s.db.Query(ctx, `
		SELECT tweet_id, content, created_at, metrics, author, media, hashtags, mentions
		FROM tweets
		WHERE search_hashtag = $1 AND (created_at, tweet_id) < ($2, $3)
		ORDER BY created_at DESC, tweet_id DESC
		LIMIT $4
		`, opts.Tag, createdCur, idCur, limit)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var page models.Page
	for rows.Next() {
		var (
			tweet    models.Tweet
			metrics  []byte
			author   []byte
			media    []byte
			hashtags []string
			mentions []string
		)

		if scanErr := rows.Scan(
			&tweet.ID,
			&tweet.Text,
			&tweet.CreatedAt,
			&metrics,
			&author,
			&media,
			&hashtags,
			&mentions,
		); scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		if len(metrics) > 0 {
			if err := json.Unmarshal(metrics, &tweet.Metrics); err != nil {
				return nil, fmt.Errorf("%s: unmarshal metrics: %w", op, err)
			}
		}
		if len(author) > 0 {
			if err := json.Unmarshal(author, &tweet.Author); err != nil {
				return nil, fmt.Errorf("%s: unmarshal author: %w", op, err)
			}
		}

		tweet.Media = []models.Media{}
		if len(media) > 0 {
			if err := json.Unmarshal(media, &tweet.Media); err != nil {
				return nil, fmt.Errorf("%s: unmarshal media: %w", op, err)
			}
		}

		tweet.Hashtags = emptyIfNil(hashtags)
		tweet.Mentions = emptyIfNil(mentions)

		page.Items = append(page.Items, tweet)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	// Курсор следующей страницы — по последнему элементу.
	if l := len(page.Items); l > 0 {
		last := page.Items[l-1]
		page.NextPageToken = encodePageToken(last.CreatedAt, last.ID)
	} else {
		page.NextPageToken = ""
	}

	return &page, nil
}

// marshalOrNil — NULL в БД для отсутствующего опционального блока.
func marshalOrNil(v any) ([]byte, error) {
	switch val := v.(type) {
	case *models.Metrics:
		if val == nil {
			return nil, nil
		}
	case *models.Author:
		if val == nil {
			return nil, nil
		}
	}

	return json.Marshal(v)
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}

// encodePageToken кодирует пару ключей страницы в непрозрачный токен для клиента.
func encodePageToken(createdAt, tweetID string) string {
	raw := createdAt + "|" + tweetID

	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// decodePageToken декодирует токен обратно в пару ключей.
func decodePageToken(token string) (string, string, error) {
	res, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return "", "", err
	}

	parts := strings.SplitN(string(res), "|", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("bad parts")
	}

	return parts[0], parts[1], nil
}
