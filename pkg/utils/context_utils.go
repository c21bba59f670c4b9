package utils

import (
	"context"

	"github.com/NeuralTrust/TrustTag/pkg/common"
)

// TraceID returns the request trace id carried by ctx, or "" outside a request.
func TraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(common.TraceIdKey).(string); ok {
		return v
	}
	return ""
}
