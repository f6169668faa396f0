package handlers

import (
	"net/http"
	"strconv"
	"time"

	apierrors "github.com/pribylovaa/go-tweet-dashboard/internal/errors"
	"github.com/pribylovaa/go-tweet-dashboard/internal/models"
	"github.com/pribylovaa/go-tweet-dashboard/internal/service"
)

// IngestRequest — тело POST /ingest.
type IngestRequest struct {
	Tag       string `json:"tag"`
	PageToken string `json:"page_token,omitempty"`
}

// IngestResponse — конверт ответа POST /ingest.
type IngestResponse struct {
	Source          string             `json:"source"`
	Tag             string             `json:"tag"`
	Tweets          []models.Tweet     `json:"tweets"`
	NextPageToken   string             `json:"next_page_token,omitempty"`
	RateLimits      *models.RateLimits `json:"rate_limits,omitempty"`
	StaleSince      string             `json:"stale_since,omitempty"`
	FetchError      string             `json:"fetch_error,omitempty"`
	Stored          int64              `json:"stored"`
	StorageDegraded bool               `json:"storage_degraded,omitempty"`
}

func (h *Handlers) Ingest(w http.ResponseWriter, r *http.Request) {
	var req IngestRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	result, err := h.Service.Ingest(r.Context(), service.IngestQuery{
		Tag:       req.Tag,
		PageToken: req.PageToken,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resp := IngestResponse{
		Source:          result.Source,
		Tag:             result.Tag,
		Tweets:          result.Tweets,
		NextPageToken:   result.NextPageToken,
		RateLimits:      result.RateLimits,
		FetchError:      result.FetchError,
		Stored:          result.Stored,
		StorageDegraded: result.StorageDegraded,
	}
	if !result.StaleSince.IsZero() {
		resp.StaleSince = result.StaleSince.UTC().Format(time.RFC3339)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get("tag")
	if tag == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	snap, err := h.Service.SnapshotByTag(r.Context(), tag)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

// TweetsListResponse — конверт ответа GET /tweets.
type TweetsListResponse struct {
	Tweets        []models.Tweet `json:"tweets"`
	NextPageToken string         `json:"next_page_token,omitempty"`
}

func (h *Handlers) ListTweets(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get("tag")
	if tag == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	var opts models.ListOptions
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			apierrors.WriteError(w, r, errInvalidArgument())
			return
		}

		opts.Limit = int32(n)
	}
	opts.PageToken = r.URL.Query().Get("page_token")

	page, err := h.Service.ListTweets(r.Context(), tag, opts)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resp := TweetsListResponse{
		Tweets:        page.Items,
		NextPageToken: page.NextPageToken,
	}
	if resp.Tweets == nil {
		resp.Tweets = []models.Tweet{}
	}

	writeJSON(w, http.StatusOK, resp)
}
