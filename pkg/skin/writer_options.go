package skin

import (
	"io"

	"go.uber.org/zap"
)

type WriterOption func(w *Writer)

func WithWriterLogger(log *zap.Logger) WriterOption {
	return func(w *Writer) {
		w.log = log
	}
}

// WithProgress renders a progress bar to out while saving.
func WithProgress(out io.Writer) WriterOption {
	return func(w *Writer) {
		w.progress = out
	}
}
