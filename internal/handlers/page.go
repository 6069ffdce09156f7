package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"page-cache/internal/logger"
	"page-cache/internal/models"
	"page-cache/internal/services"
	"page-cache/internal/store"
)

type PageServiceInterface interface {
	Fetch(ctx context.Context, url string) (*models.Result, error)
	Stats(ctx context.Context, url string) (*models.PageStats, error)
}

type PageHandler struct {
	service PageServiceInterface
}

func NewPageHandler(service PageServiceInterface) *PageHandler {
	return &PageHandler{service: service}
}

func (h *PageHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	url, ok := urlParam(w, r)
	if !ok {
		return
	}

	res, err := h.service.Fetch(r.Context(), url)
	if err != nil {
		logger.Errorf("GetPage %s: %v", url, err)
		writeError(w, statusFor(err), "failed to fetch page")
		return
	}

	cache := "MISS"
	if res.Cached() {
		cache = "HIT"
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Cache", cache)
	w.Write([]byte(res.Body))
}

func (h *PageHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	url, ok := urlParam(w, r)
	if !ok {
		return
	}

	stats, err := h.service.Stats(r.Context(), url)
	if err != nil {
		logger.Errorf("GetStats %s: %v", url, err)
		writeError(w, statusFor(err), "failed to read stats")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

// urlParam returns the url query value exactly as sent; it becomes part of the
// store keys, so it is never trimmed or normalized.
func urlParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	url := r.URL.Query().Get("url")
	if strings.TrimSpace(url) == "" {
		writeError(w, http.StatusBadRequest, "query parameter 'url' is required")
		return "", false
	}
	return url, true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrFetchFailed):
		return http.StatusBadGateway
	case errors.Is(err, store.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
