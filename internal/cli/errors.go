package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/thenoetrevino/pizzeria/internal/client"
)

// ErrReported marks an error the formatter has already shown to the user.
// main exits non-zero without printing it again.
var ErrReported = errors.New("error already reported")

// Error codes used in JSON error output
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeAPI        = "API_ERROR"
	CodeConnection = "CONNECTION_ERROR"
	CodeRejected   = "REJECTED"
)

// Report shows an error through f and returns ErrReported
func Report(f *OutputFormatter, code, message, suggestion string) error {
	if err := f.ErrorWithSuggestion(code, message, suggestion); err != nil {
		slog.Error("Error formatting error message", "error", err)
	}
	return ErrReported
}

// ReportAPIError shows an error from the API client and returns ErrReported
func (c *CLI) ReportAPIError(f *OutputFormatter, err error) error {
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		return Report(f, CodeConnection, err.Error(),
			fmt.Sprintf("Is pizzeriad running at %s?", c.BaseURL))
	}

	code := CodeAPI
	switch apiErr.Status {
	case http.StatusBadRequest:
		code = CodeValidation
	case http.StatusNotFound:
		code = CodeNotFound
	}

	message := apiErr.Message
	if message == "" {
		message = apiErr.Error()
	}
	return Report(f, code, message, "")
}
