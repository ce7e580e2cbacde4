package availability

import "fmt"

// UpstreamError marks a failed read from an external collaborator. Checks
// abort on it rather than degrading to a partial, conflict-free answer.
type UpstreamError struct {
	Source string
	Err    error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Source, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
