// Package clipboard copies generated text to the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"github.com/dublyo/dockergen/internal/errors"
)

// Writer writes text to a clipboard
type Writer interface {
	WriteAll(text string) error
}

// System is the clipboard of the host, backed by pbcopy, xclip, xsel,
// wl-copy or the Windows API depending on the platform.
type System struct{}

// WriteAll implements Writer
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrClipboardUnavailable, err)
	}
	return nil
}

// Disabled is a Writer that always fails, used when copying is turned off
type Disabled struct{}

// WriteAll implements Writer
func (Disabled) WriteAll(string) error {
	return fmt.Errorf("%w: disabled by configuration", errors.ErrClipboardUnavailable)
}

// Copy writes text to w once. A failure is logged and reported as false;
// it is never retried.
func Copy(w Writer, text string, logger *zap.Logger) bool {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := w.WriteAll(text); err != nil {
		logger.Warn("failed to copy text",
			zap.Int("bytes", len(text)),
			zap.Error(err),
		)
		return false
	}
	logger.Debug("copied text to clipboard", zap.Int("bytes", len(text)))
	return true
}
