package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// SilentLogger discards all log output
type SilentLogger struct{}

// Printf implements Logger by doing nothing
func (SilentLogger) Printf(format string, args ...interface{}) {}
