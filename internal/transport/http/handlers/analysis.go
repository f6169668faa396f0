package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/go-tweet-dashboard/internal/errors"
)

// AnalyzeRequest — тело POST /analyze.
type AnalyzeRequest struct {
	Tag string `json:"tag"`
}

func (h *Handlers) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	result, err := h.Service.Analyze(r.Context(), req.Tag)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get("tag")
	if tag == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	result, err := h.Service.AnalysisByTag(r.Context(), tag)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
