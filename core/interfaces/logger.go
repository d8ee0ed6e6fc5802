package interfaces

// Logger is the structured logger used by every service and middleware.
// The production implementation is backed by logrus.
//
// Example usage:
//
//	logger.Info("Metadata submitted", map[string]interface{}{
//		"id":  record.ID,
//		"url": record.URL,
//	})
//
//	logger.Warn("Records without timestamp", map[string]interface{}{
//		"skipped": skipped,
//	})
type Logger interface {
	// Debug logs detailed troubleshooting information.
	Debug(msg string, fields map[string]interface{})

	// Info logs general operational messages.
	Info(msg string, fields map[string]interface{})

	// Warn logs conditions that degrade a result without failing it.
	Warn(msg string, fields map[string]interface{})

	// Error logs failures that need attention.
	Error(msg string, fields map[string]interface{})
}

// NopLogger discards every message. Services fall back to it when no logger is injected.
type NopLogger struct{}

func (NopLogger) Debug(string, map[string]interface{}) {}
func (NopLogger) Info(string, map[string]interface{})  {}
func (NopLogger) Warn(string, map[string]interface{})  {}
func (NopLogger) Error(string, map[string]interface{}) {}
