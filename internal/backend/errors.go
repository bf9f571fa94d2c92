package backend

import (
	"errors"
	"fmt"
)

// HTTPError is returned for any non-2xx backend response.
type HTTPError struct {
	Op     string
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: backend returned status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: backend returned status %d: %s", e.Op, e.Status, e.Body)
}

// StatusOf returns the backend status carried by err, or 0 when err did not
// come from a backend response (transport failure, decode error, nil).
func StatusOf(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Status
	}
	return 0
}
