package postgres

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pribylovaa/go-tweet-dashboard/internal/models"
	"github.com/pribylovaa/go-tweet-dashboard/internal/storage"
)

// Интеграционные тесты для пакета postgres (реализация хранилища в tweets.go):
// — поднимают реальный PostgreSQL через testcontainers-go (образ postgres:16-alpine);
// — применяют миграции из ./migrations;
// — проверяют:
//    SaveTweets: первичная вставка, идемпотентность повторной пачки
//    (ON CONFLICT DO NOTHING: содержимое первой записи не затирается),
//    счётчик фактически вставленных строк;
//    ListTweets: keyset-пагинация (page_token), фильтр по search_hashtag,
//    тай-брейк по (created_at DESC, tweet_id DESC);
//    обработку некорректного page_token;
//    encode/decode page_token (round-trip).

// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/postgres -v -race -count=1

// repoRootFromThisFile — определяет корень репозитория относительно текущего файла тестов.
// Используется для поиска SQL-миграций в каталоге ./migrations независимо от текущего рабочего каталога.
func repoRootFromThisFile() string {
	// internal/storage/postgres/... -> подняться на 3 уровня до корня.
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", ".."))
}

// readMigration — читает содержимое SQL-миграции из подкаталога ./migrations.
func readMigration(t *testing.T, name string) string {
	t.Helper()
	root := repoRootFromThisFile()
	path := filepath.Join(root, "migrations", name)
	b, err := os.ReadFile(path)
	require.NoError(t, err, "read migration %s", path)
	return string(b)
}

// startPostgres — поднимает PostgreSQL через testcontainers-go,
// применяет миграции и возвращает инициализированное хранилище и функцию очистки.
// Если переменная окружения GO_TEST_INTEGRATION не установлена — тест пропускается.
func startPostgres(t *testing.T) (*Storage, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	// применяем миграции.
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, readMigration(t, "1_init_tweets.up.sql"))
	require.NoError(t, err)
	_, err = pool.Exec(ctx, readMigration(t, "2_init_analysis.up.sql"))
	require.NoError(t, err)

	st, err := New(ctx, dsn)
	require.NoError(t, err)

	cleanup := func() {
		st.Close()
		_ = c.Terminate(context.Background())
	}
	return st, cleanup
}

// tweetFixture — твит с заполненными блоками для интеграционных проверок.
func tweetFixture(id, createdAt string) models.Tweet {
	return models.Tweet{
		ID:        id,
		Text:      "text of " + id,
		CreatedAt: createdAt,
		Metrics:   &models.Metrics{RetweetCount: 5, LikeCount: 1},
		Author:    &models.Author{ID: "u1", Username: "author1", Name: "Author One"},
		Media:     []models.Media{},
		Hashtags:  []string{"btc"},
		Mentions:  []string{},
	}
}

func TestIntegration_SaveTweets_Insert_And_Count(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	items := []models.Tweet{
		tweetFixture("100", "2024-12-20T21:12:26.000Z"),
		tweetFixture("101", "2024-12-20T21:12:25.000Z"),
	}

	stored, err := st.SaveTweets(context.Background(), "btc", items, storage.ConflictIgnore)
	require.NoError(t, err)
	require.EqualValues(t, 2, stored)

	page, err := st.ListTweets(context.Background(), models.ListOptions{Tag: "btc", Limit: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	// created_at DESC.
	require.Equal(t, "100", page.Items[0].ID)
	require.Equal(t, "101", page.Items[1].ID)
	require.Equal(t, items[0].Metrics, page.Items[0].Metrics)
	require.Equal(t, items[0].Author, page.Items[0].Author)
	require.Equal(t, []string{"btc"}, page.Items[0].Hashtags)
	require.Equal(t, []string{}, page.Items[0].Mentions)
	require.Equal(t, []models.Media{}, page.Items[0].Media)
}

// TestIntegration_SaveTweets_FirstWriteWins — повторная вставка того же
// tweet_id не меняет запись и не входит в счётчик.
func TestIntegration_SaveTweets_FirstWriteWins(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()

	first := tweetFixture("200", "2024-12-20T21:12:26.000Z")
	stored, err := st.SaveTweets(ctx, "btc", []models.Tweet{first}, storage.ConflictIgnore)
	require.NoError(t, err)
	require.EqualValues(t, 1, stored)

	// Та же запись с другим текстом + одна новая.
	mutated := first
	mutated.Text = "mutated text must not be stored"
	fresh := tweetFixture("201", "2024-12-20T21:12:27.000Z")

	stored, err = st.SaveTweets(ctx, "btc", []models.Tweet{mutated, fresh}, storage.ConflictIgnore)
	require.NoError(t, err)
	require.EqualValues(t, 1, stored, "duplicate must not count as stored")

	page, err := st.ListTweets(ctx, models.ListOptions{Tag: "btc", Limit: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)

	var got models.Tweet
	for _, it := range page.Items {
		if it.ID == first.ID {
			got = it
			break
		}
	}
	require.Equal(t, first.Text, got.Text, "original content must survive duplicate insert")
}

// TestIntegration_SaveTweets_NilOptionalBlocks — nil metrics/author
// сохраняются как NULL и читаются обратно как nil.
func TestIntegration_SaveTweets_NilOptionalBlocks(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()

	item := models.Tweet{
		ID:        "300",
		Text:      "bare",
		CreatedAt: "2024-12-20T21:12:26.000Z",
		Media:     []models.Media{},
		Hashtags:  []string{},
		Mentions:  []string{},
	}
	_, err := st.SaveTweets(ctx, "btc", []models.Tweet{item}, storage.ConflictIgnore)
	require.NoError(t, err)

	page, err := st.ListTweets(ctx, models.ListOptions{Tag: "btc", Limit: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Nil(t, page.Items[0].Metrics)
	require.Nil(t, page.Items[0].Author)
	require.NotNil(t, page.Items[0].Media)
	require.NotNil(t, page.Items[0].Hashtags)
	require.NotNil(t, page.Items[0].Mentions)
}

func TestIntegration_SaveTweets_UnsupportedPolicy(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.SaveTweets(context.Background(), "btc",
		[]models.Tweet{tweetFixture("400", "2024-12-20T21:12:26.000Z")},
		storage.ConflictPolicy("replace"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported conflict policy")
}

func TestIntegration_ListTweets_Pagination_OK(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()

	var batch []models.Tweet
	for i := 0; i < 5; i++ {
		batch = append(batch, tweetFixture(
			fmt.Sprintf("50%d", i),
			fmt.Sprintf("2024-12-20T21:12:2%d.000Z", i),
		))
	}
	_, err := st.SaveTweets(ctx, "btc", batch, storage.ConflictIgnore)
	require.NoError(t, err)

	// Первая страница.
	p1, err := st.ListTweets(ctx, models.ListOptions{Tag: "btc", Limit: 2})
	require.NoError(t, err)
	require.Len(t, p1.Items, 2)
	require.True(t, p1.Items[0].CreatedAt >= p1.Items[1].CreatedAt)
	require.NotEmpty(t, p1.NextPageToken)

	// Вторая страница.
	p2, err := st.ListTweets(ctx, models.ListOptions{Tag: "btc", Limit: 2, PageToken: p1.NextPageToken})
	require.NoError(t, err)
	require.Len(t, p2.Items, 2)
	require.NotEmpty(t, p2.NextPageToken)
	require.NotEqual(t, p1.Items[1].ID, p2.Items[0].ID)

	// Третья страница (последняя).
	p3, err := st.ListTweets(ctx, models.ListOptions{Tag: "btc", Limit: 2, PageToken: p2.NextPageToken})
	require.NoError(t, err)
	require.Len(t, p3.Items, 1)

	// Четвёртая страница — должна быть пустой и без next_token.
	p4, err := st.ListTweets(ctx, models.ListOptions{Tag: "btc", Limit: 2, PageToken: p3.NextPageToken})
	require.NoError(t, err)
	require.Empty(t, p4.Items)
	require.Equal(t, "", p4.NextPageToken)
}

// TestIntegration_ListTweets_TieBreakers — одинаковый created_at,
// порядок и полнота обхода держатся на tweet_id DESC.
func TestIntegration_ListTweets_TieBreakers_PaginateStable(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()

	const createdAt = "2024-12-20T21:12:26.000Z"
	var batch []models.Tweet
	for i := 0; i < 3; i++ {
		batch = append(batch, tweetFixture(fmt.Sprintf("60%d", i), createdAt))
	}
	_, err := st.SaveTweets(ctx, "btc", batch, storage.ConflictIgnore)
	require.NoError(t, err)

	p1, err := st.ListTweets(ctx, models.ListOptions{Tag: "btc", Limit: 2})
	require.NoError(t, err)
	require.Len(t, p1.Items, 2)
	require.NotEmpty(t, p1.NextPageToken)

	p2, err := st.ListTweets(ctx, models.ListOptions{Tag: "btc", Limit: 2, PageToken: p1.NextPageToken})
	require.NoError(t, err)
	require.Len(t, p2.Items, 1)

	seen := map[string]struct{}{}
	for _, it := range append(p1.Items, p2.Items...) {
		seen[it.ID] = struct{}{}
	}
	require.Len(t, seen, 3)
}

// TestIntegration_ListTweets_FilterByTag — выдача строго по search_hashtag.
func TestIntegration_ListTweets_FilterByTag(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()

	_, err := st.SaveTweets(ctx, "btc",
		[]models.Tweet{tweetFixture("700", "2024-12-20T21:12:26.000Z")}, storage.ConflictIgnore)
	require.NoError(t, err)
	_, err = st.SaveTweets(ctx, "eth",
		[]models.Tweet{tweetFixture("701", "2024-12-20T21:12:27.000Z")}, storage.ConflictIgnore)
	require.NoError(t, err)

	page, err := st.ListTweets(ctx, models.ListOptions{Tag: "btc", Limit: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, "700", page.Items[0].ID)
}

func TestIntegration_ListTweets_InvalidToken_ReturnsErrInvalidCursor(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.ListTweets(context.Background(), models.ListOptions{Tag: "btc", Limit: 2, PageToken: "%%%not_base64%%%"})
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrInvalidCursor)
}

func TestIntegration_SaveTweets_ContextDeadlineExceeded(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()

	_, err := st.SaveTweets(ctx, "btc",
		[]models.Tweet{tweetFixture("800", "2024-12-20T21:12:26.000Z")}, storage.ConflictIgnore)
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), context.DeadlineExceeded.Error()))
}

func TestEncodeDecodePageToken_Roundtrip(t *testing.T) {
	token := encodePageToken("2024-12-20T21:12:26.000Z", "1870215710070259940")

	createdAt, id, err := decodePageToken(token)
	require.NoError(t, err)
	require.Equal(t, "2024-12-20T21:12:26.000Z", createdAt)
	require.Equal(t, "1870215710070259940", id)
}

func TestDecodePageToken_Errors(t *testing.T) {
	t.Run("not base64", func(t *testing.T) {
		_, _, err := decodePageToken("%%%")
		require.Error(t, err)
	})
	t.Run("no separator", func(t *testing.T) {
		token := base64.RawURLEncoding.EncodeToString([]byte("noseparator"))
		_, _, err := decodePageToken(token)
		require.Error(t, err)
	})
	t.Run("empty parts", func(t *testing.T) {
		token := base64.RawURLEncoding.EncodeToString([]byte("|"))
		_, _, err := decodePageToken(token)
		require.Error(t, err)
	})
}
