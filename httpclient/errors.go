package httpclient

import (
	"net/http"

	"github.com/kbukum/xapi/errors"
)

// Classify converts a terminal response into a typed error.
// It returns nil for 2xx status codes.
func Classify(resp *Response) error {
	switch {
	case resp.IsSuccess():
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return errors.Authentication(resp.Status, resp.Body)
	case resp.StatusCode >= 500 && resp.StatusCode < 600:
		return errors.Server(resp.StatusCode, resp.Status, resp.Body)
	default:
		return errors.UnexpectedResponse(resp.StatusCode, resp.Status, resp.Body)
	}
}
