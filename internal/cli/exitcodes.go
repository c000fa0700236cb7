package cli

// Exit codes for CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates any failure: a rejected request, an unreachable
	// API, or bad usage.
	ExitError = 1
)
