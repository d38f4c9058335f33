package logging

import (
	"regexp"
	"strconv"

	"go.uber.org/zap"
)

const traceparentHeader = "traceparent"

// W3C Trace Context: {version}-{trace-id}-{parent-id}-{trace-flags}
var traceparentRe = regexp.MustCompile(`^([0-9a-f]{2})-([0-9a-f]{32})-([0-9a-f]{16})-([0-9a-f]{2})$`)

const (
	invalidTraceID = "00000000000000000000000000000000"
	invalidSpanID  = "0000000000000000"
)

// traceContext is the parsed form of a traceparent header.
type traceContext struct {
	TraceID string
	SpanID  string
	Sampled bool
}

// parseTraceparent returns ok=false for malformed headers, the reserved ff
// version, and all-zero trace or span IDs.
func parseTraceparent(header string) (traceContext, bool) {
	m := traceparentRe.FindStringSubmatch(header)
	if len(m) != 5 || m[1] == "ff" || m[2] == invalidTraceID || m[3] == invalidSpanID {
		return traceContext{}, false
	}
	flags, _ := strconv.ParseUint(m[4], 16, 8)
	return traceContext{
		TraceID: m[2],
		SpanID:  m[3],
		Sampled: flags&0x1 == 1,
	}, true
}

func requestFields(tc traceContext, hasTrace bool, requestID string) []zap.Field {
	var fields []zap.Field
	if hasTrace {
		fields = append(fields,
			zap.String("traceId", tc.TraceID),
			zap.String("spanId", tc.SpanID),
			zap.Bool("traceSampled", tc.Sampled),
		)
	}
	if requestID != "" {
		fields = append(fields, zap.String("requestId", requestID))
	}
	return fields
}
