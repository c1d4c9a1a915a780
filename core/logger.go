package core

// Logger is any service that can log messages.
// args may contain errors, map[string]interface{} extras or an *http.Request.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
