package gdrive

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"google.golang.org/api/googleapi"

	"github.com/iudanet/oneclickcopy/internal/client/remote"
)

// wrapError converts a Google API error to the matching remote sentinel.
// Unknown errors are returned as-is.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return err
	}

	switch gerr.Code {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", remote.ErrObjectNotFound, gerr.Message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", remote.ErrUnauthorized, gerr.Message)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", remote.ErrRateLimited, gerr.Message)
	case http.StatusForbidden:
		// Drive отдает 403 rateLimitExceeded/userRateLimitExceeded вместо 429
		for _, item := range gerr.Errors {
			if item.Reason == "rateLimitExceeded" || item.Reason == "userRateLimitExceeded" {
				return fmt.Errorf("%w: %s", remote.ErrRateLimited, gerr.Message)
			}
		}
		return err
	default:
		return err
	}
}

// retryAfter extracts the Retry-After header of a throttled response, 0 if absent.
func retryAfter(err error) int {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) || gerr.Header == nil {
		return 0
	}
	seconds, convErr := strconv.Atoi(gerr.Header.Get("Retry-After"))
	if convErr != nil {
		return 0
	}
	return seconds
}
