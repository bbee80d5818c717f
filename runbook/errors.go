package runbook

import "errors"

var (
	// ErrDecode indicates a runbook that is not valid HCL or breaks the schema.
	ErrDecode = errors.New("runbook: decode failed")

	// ErrUnexpectedAnswer indicates a check whose answer differs from expect.
	ErrUnexpectedAnswer = errors.New("runbook: unexpected answer")
)
