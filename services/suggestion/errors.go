package suggestion

import (
	"errors"
	"fmt"
)

// UpstreamError marks a failed read from an external collaborator. A
// suggestion run aborts on the first one; a partial result would look
// conflict-free and is worse than no result.
type UpstreamError struct {
	Source string
	Err    error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Source, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// IsUpstream reports whether err wraps an UpstreamError.
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
