package publish

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a structured posting failure carrying an HTTP-like status and
// an optional provider-specific error code.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	if e.Code > 0 {
		return fmt.Sprintf("posting failed (status=%d code=%d): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("posting failed (status=%d): %s", e.StatusCode, e.Message)
}

// Provider codes that indicate a credential or permission problem rather
// than a transient fault: bad/expired token (89), bad auth data (215),
// write-permission missing (261).
var authCodes = map[int]struct{}{
	89:  {},
	215: {},
	261: {},
}

// IsAuthError reports whether the failure is an authorization/permission
// problem. This distinction is load-bearing: the posting loop aborts on it.
func IsAuthError(err error) bool {
	var aErr *APIError
	if !errors.As(err, &aErr) {
		return false
	}
	if aErr.StatusCode == http.StatusUnauthorized || aErr.StatusCode == http.StatusForbidden {
		return true
	}
	_, ok := authCodes[aErr.Code]
	return ok
}

func classify(err error) Result {
	if IsAuthError(err) {
		return FailedAuth
	}
	return FailedTransient
}
