package analysis

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// Тесты клиента сервиса анализа (client.go) на httptest-сервере:
//  - happy-path: POST /analyze/{tag}, payload возвращается байт-в-байт;
//  - success=false и пустой data трактуются как ошибка;
//  - не-2xx и битый JSON -> ошибка;
//  - тег экранируется в пути запроса.

func TestAnalyze_OK(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{"success": true, "data": {"total_tweets": 150, "average_sentiment": 0.35}}`))
	}))
	defer srv.Close()

	client := New(srv.Client(), srv.URL)

	data, err := client.Analyze(context.Background(), "btc")
	require.NoError(t, err)
	require.Equal(t, http.MethodPost, gotMethod)
	require.Equal(t, "/analyze/btc", gotPath)
	require.JSONEq(t, `{"total_tweets": 150, "average_sentiment": 0.35}`, string(data))
}

func TestAnalyze_CollaboratorFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "error": "no tweets found for hashtag"}`))
	}))
	defer srv.Close()

	client := New(srv.Client(), srv.URL)

	_, err := client.Analyze(context.Background(), "btc")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no tweets found for hashtag")
}

// TestAnalyze_EmptyData — success=true без data тоже ошибка: нечего сохранять.
func TestAnalyze_EmptyData(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	client := New(srv.Client(), srv.URL)

	_, err := client.Analyze(context.Background(), "btc")
	require.Error(t, err)
}

func TestAnalyze_Non2xx(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("analysis crashed"))
	}))
	defer srv.Close()

	client := New(srv.Client(), srv.URL)

	_, err := client.Analyze(context.Background(), "btc")
	require.Error(t, err)
	require.Contains(t, err.Error(), "status=500")
}

func TestAnalyze_MalformedJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":`))
	}))
	defer srv.Close()

	client := New(srv.Client(), srv.URL)

	_, err := client.Analyze(context.Background(), "btc")
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode")
}

// TestAnalyze_TagEscaped — экзотический тег не ломает путь запроса.
func TestAnalyze_TagEscaped(t *testing.T) {
	t.Parallel()

	var gotRaw string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRaw = r.URL.EscapedPath()
		w.Write([]byte(`{"success": true, "data": {"ok": true}}`))
	}))
	defer srv.Close()

	client := New(srv.Client(), srv.URL)

	_, err := client.Analyze(context.Background(), "a/b")
	require.NoError(t, err)
	require.Equal(t, "/analyze/a%2Fb", gotRaw)
}
