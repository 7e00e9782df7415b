package calc

import (
	"net/http"

	"Threads/internal/thread"
)

// StatusFor maps a calculation error onto an HTTP status.
func StatusFor(err error) int {
	switch {
	case thread.IsKind(err, thread.KindNotFound):
		return http.StatusNotFound
	case thread.IsKind(err, thread.KindInvalidInput),
		thread.IsKind(err, thread.KindUnsupportedClass),
		thread.IsKind(err, thread.KindInvalidThread):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
