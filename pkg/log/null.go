package log

// nullLogger discards everything. Used by tests and benchmarks that don't
// want log noise.
type nullLogger struct{}

// Null returns a Logger that discards all output.
func Null() Logger { return nullLogger{} }

func (nullLogger) Infof(string, ...interface{})  {}
func (nullLogger) Warnf(string, ...interface{})  {}
func (nullLogger) Errorf(string, ...interface{}) {}
func (nullLogger) Debugf(string, ...interface{}) {}
func (nullLogger) With(string) Logger            { return nullLogger{} }
