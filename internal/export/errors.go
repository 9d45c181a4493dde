// Package export produces the rasterized download: it captures the styled
// preview in a headless browser, slices the bitmap across A4 pages, and
// re-projects the captured anchor rectangles into PDF link annotations.
package export

import (
	"errors"
	"fmt"
	"strings"
)

// Category buckets an export failure into one of the user-facing classes.
type Category string

const (
	CategoryMissingTarget Category = "missing_target"
	CategoryNetwork       Category = "network"
	CategoryTimeout       Category = "timeout"
	CategoryColorFormat   Category = "color_format"
	CategoryGeneric       Category = "generic"
)

// ErrMissingTarget is returned when the preview node is absent from the
// rendered document.
var ErrMissingTarget = errors.New("capture target not found in rendered document")

// ExportError wraps a pipeline failure with its category and the message shown
// to the user. The underlying error is preserved for logs.
type ExportError struct {
	Category Category
	Message  string
	Err      error
}

func (e *ExportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// Classify maps an underlying failure onto a user-facing export error by
// inspecting the error text. Unrecognized failures fall through to the generic
// message with the cause appended.
func Classify(err error) *ExportError {
	if err == nil {
		return nil
	}
	var exportErr *ExportError
	if errors.As(err, &exportErr) {
		return exportErr
	}

	msg := strings.ToLower(err.Error())
	switch {
	case errors.Is(err, ErrMissingTarget):
		return &ExportError{
			Category: CategoryMissingTarget,
			Message:  "Could not find the resume preview to capture. Please reload and try again.",
			Err:      err,
		}
	case strings.Contains(msg, "context deadline exceeded") || strings.Contains(msg, "timeout"):
		return &ExportError{
			Category: CategoryTimeout,
			Message:  "The export timed out. Please try again.",
			Err:      err,
		}
	case strings.Contains(msg, "net::") || strings.Contains(msg, "cors") ||
		strings.Contains(msg, "connection refused") || strings.Contains(msg, "no such host"):
		return &ExportError{
			Category: CategoryNetwork,
			Message:  "A network error occurred while loading resume content. Check image URLs and try again.",
			Err:      err,
		}
	case strings.Contains(msg, "oklab") || strings.Contains(msg, "oklch") ||
		strings.Contains(msg, "lab(") || strings.Contains(msg, "lch(") ||
		strings.Contains(msg, "unsupported color"):
		return &ExportError{
			Category: CategoryColorFormat,
			Message:  "The selected style uses a color format the export cannot process.",
			Err:      err,
		}
	default:
		return &ExportError{
			Category: CategoryGeneric,
			Message:  fmt.Sprintf("Failed to export PDF: %v", err),
			Err:      err,
		}
	}
}
