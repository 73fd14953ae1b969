package document

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"
)

// StatusError is returned when a remote source answers with a non-2xx status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("response error %d", e.StatusCode)
}

func fetch(ctx context.Context, url string, retryAttempts uint) ([]byte, error) {
	client := resty.New()
	defer func() {
		_ = client.Close()
	}()
	return fetchWith(ctx, client, url, retryAttempts)
}

func fetchWith(ctx context.Context, client *resty.Client, url string, retryAttempts uint) ([]byte, error) {
	var content []byte
	if err := retry.Do(
		func() error {
			body, err := get(ctx, client, url)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				slog.Debug("retrying source download", "url", url, "error", err)
				return err
			}
			content = body
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(retryAttempts+1),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return nil, err
	}
	return content, nil
}

func get(ctx context.Context, client *resty.Client, url string) ([]byte, error) {
	response, err := client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.IsError() {
		return nil, &StatusError{StatusCode: response.StatusCode()}
	}
	return response.Bytes(), nil
}

// isRetryableError retries transport failures, rate limiting and server errors.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == http.StatusTooManyRequests || statusErr.StatusCode >= http.StatusInternalServerError
	}
	return !errors.Is(err, context.Canceled)
}
