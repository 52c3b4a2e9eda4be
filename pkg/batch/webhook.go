// Package batch runs subscription tasks: concurrent workflow invocations
// bounded by a semaphore, result shaping, and webhook delivery with bounded
// retries.
package batch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/scout-research/scout/pkg/models"
	"github.com/scout-research/scout/pkg/workflow"
)

// Webhook delivery retry policy: 1s, 4s, 16s between the three attempts.
const (
	webhookBaseInterval = 1 * time.Second
	webhookMultiplier   = 4
	webhookMaxAttempts  = 3
	webhookTimeout      = 30 * time.Second
)

// WebhookSender POSTs task results to callback URLs. 5xx responses and
// network failures are retried; any 4xx is final.
type WebhookSender struct {
	client       *http.Client
	baseInterval time.Duration
	logger       *slog.Logger
}

// NewWebhookSender builds a sender with the default retry policy.
func NewWebhookSender(logger *slog.Logger) *WebhookSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &WebhookSender{
		client:       &http.Client{Timeout: webhookTimeout},
		baseInterval: webhookBaseInterval,
		logger:       logger,
	}
}

// Deliver POSTs the payload as JSON. Exhausted retries return
// WEBHOOK_DELIVERY_FAILED.
func (s *WebhookSender) Deliver(ctx context.Context, callbackURL string, payload *models.WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return workflow.WrapError(workflow.KindWebhookDeliveryFailed,
			fmt.Errorf("failed to encode webhook payload: %w", err))
	}

	attempt := 0
	operation := func() error {
		attempt++
		err := s.post(ctx, callbackURL, body)
		if err != nil {
			s.logger.Warn("webhook delivery attempt failed",
				"task_id", payload.TaskID, "attempt", attempt, "error", err)
		}
		return err
	}

	if err := backoff.Retry(operation, backoff.WithContext(s.newBackoff(), ctx)); err != nil {
		return workflow.WrapError(workflow.KindWebhookDeliveryFailed,
			fmt.Errorf("webhook delivery to %s failed after %d attempts: %w", callbackURL, attempt, err))
	}
	return nil
}

func (s *WebhookSender) post(ctx context.Context, callbackURL string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, callbackURL, bytes.NewReader(body))
	if err != nil {
		return backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		// Network failure: retryable.
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 500:
		return fmt.Errorf("callback returned %d", resp.StatusCode)
	default:
		return backoff.Permanent(fmt.Errorf("callback returned %d", resp.StatusCode))
	}
}

func (s *WebhookSender) newBackoff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.baseInterval
	b.Multiplier = webhookMultiplier
	b.RandomizationFactor = 0
	b.MaxInterval = s.baseInterval * webhookMultiplier * webhookMultiplier
	return backoff.WithMaxRetries(b, webhookMaxAttempts-1)
}
