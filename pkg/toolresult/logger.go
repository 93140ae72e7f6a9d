package toolresult

// Logger defines the logging surface the formatter relies on.
type Logger interface {
	Log(msg string)
	Error(v any)
}

type noopLogger struct{}

func (noopLogger) Log(string) {}
func (noopLogger) Error(any)  {}

func ensureLogger(log Logger) Logger {
	if log == nil {
		return noopLogger{}
	}
	return log
}
