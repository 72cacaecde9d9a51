package options

// DebugSinkFunc is the signature of a caller-supplied diagnostic callback.
// function names the function that produced the message; every caller in
// this module passes 0 for line. format and args behave like fmt.Printf. A nil sink is a no-op: callers that don't
// care about internal tracing pay nothing for it.
type DebugSinkFunc func(function string, line int, format string, args ...any)

// WithDebugSink returns a [GeometryOptionsFunc] that installs a diagnostic
// sink on operations that support one (the event queue, status tree, and
// sweep driver). When set, these components report each new queue event,
// each status-tree insertion and each emitted intersection record through
// the sink instead of writing to a log. Removals, neighbor lookups and
// consistency-check results are not reported through it.
func WithDebugSink(sink DebugSinkFunc) GeometryOptionsFunc {
	return func(opts *GeometryOptions) {
		opts.DebugSink = sink
	}
}

// Debugf invokes the sink if one is set; otherwise it does nothing.
func (o GeometryOptions) Debugf(function string, line int, format string, args ...any) {
	if o.DebugSink == nil {
		return
	}
	o.DebugSink(function, line, format, args...)
}
