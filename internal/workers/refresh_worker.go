package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"page-cache/internal/logger"
	"page-cache/internal/models"
)

type RefreshWorker struct {
	messages  chan []byte
	refresher Refresher
}

func NewRefreshWorker(messages chan []byte, refresher Refresher) *RefreshWorker {
	return &RefreshWorker{
		messages:  messages,
		refresher: refresher,
	}
}

// Start blocks until ctx is done or messages is closed.
func (w *RefreshWorker) Start(ctx context.Context) {
	logger.Infof("RefreshWorker started")

	for {
		select {
		case value, ok := <-w.messages:
			if !ok {
				logger.Infof("RefreshWorker stopped: channel closed")
				return
			}
			url, err := w.handle(ctx, value)
			if err != nil {
				logger.Warnf("RefreshWorker error: %v", err)
				continue
			}
			logger.Infof("Refreshed in Redis: %s", url)

		case <-ctx.Done():
			logger.Infof("RefreshWorker stopped")
			return
		}
	}
}

func (w *RefreshWorker) handle(ctx context.Context, value []byte) (string, error) {
	cmd, err := ParseRefreshCommand(value)
	if err != nil {
		return "", err
	}
	if _, err := w.refresher.Refresh(ctx, cmd.URL); err != nil {
		return "", fmt.Errorf("refresh %s: %w", cmd.URL, err)
	}
	return cmd.URL, nil
}

// ParseRefreshCommand accepts {"url": "..."} or a bare URL string.
func ParseRefreshCommand(value []byte) (models.RefreshCommand, error) {
	var cmd models.RefreshCommand
	trimmed := strings.TrimSpace(string(value))
	if strings.HasPrefix(trimmed, "{") {
		if err := json.Unmarshal([]byte(trimmed), &cmd); err != nil {
			return cmd, fmt.Errorf("invalid refresh JSON: %w", err)
		}
	} else {
		cmd.URL = trimmed
	}
	if cmd.URL == "" {
		return cmd, fmt.Errorf("refresh command without url")
	}
	return cmd, nil
}
