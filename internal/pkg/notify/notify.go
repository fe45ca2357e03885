package notify

import (
	"log/slog"

	"github.com/bag-arunava-7/staffhub-payroll-go/internal/domain/payroll"
)

// SlogNotifier writes transient notifications to the structured log. The UI
// reads them off the response envelope; this keeps an operator-visible trail.
type SlogNotifier struct {
	logger *slog.Logger
}

func NewSlogNotifier(logger *slog.Logger) payroll.Notifier {
	return &SlogNotifier{logger: logger}
}

func (n *SlogNotifier) Success(title, message string) {
	n.logger.Info("notification", slog.String("title", title), slog.String("message", message), slog.String("level", "success"))
}

func (n *SlogNotifier) Warning(title, message string) {
	n.logger.Warn("notification", slog.String("title", title), slog.String("message", message), slog.String("level", "warning"))
}

func (n *SlogNotifier) Error(title, message string) {
	n.logger.Error("notification", slog.String("title", title), slog.String("message", message), slog.String("level", "error"))
}
