// Package capture drives the rendered receipt page through each winner
// control and extracts one image per receipt. The automation backend is
// opaque: anything that can wait, click, evaluate and screenshot will do.
package capture

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Engine is the minimal automation surface the orchestrator needs.
// Evaluate must resolve promises before unmarshaling into out; passing a nil
// out discards the result. All waits are bounded by the supplied timeout.
type Engine interface {
	Navigate(ctx context.Context, url string) error
	WaitVisible(ctx context.Context, selector string, timeout time.Duration) error
	Click(ctx context.Context, selector string) error
	Evaluate(ctx context.Context, script string, out any) error
	Screenshot(ctx context.Context, selector string) ([]byte, error)
}

// TimeoutError reports a bounded wait that expired during capture.
type TimeoutError struct {
	Selector string
	Timeout  time.Duration
	Err      error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %s waiting for %q: %v", e.Timeout, e.Selector, e.Err)
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// AsTimeoutError attempts to unwrap an error into a TimeoutError.
func AsTimeoutError(err error) (*TimeoutError, bool) {
	var tErr *TimeoutError
	if errors.As(err, &tErr) {
		return tErr, true
	}
	return nil, false
}
