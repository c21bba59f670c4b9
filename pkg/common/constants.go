package common

const (
	TraceIDHeader = "X-Trace-Id"
)
