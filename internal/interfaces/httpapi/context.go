package httpapi

import "context"

type contextKey string

const (
	requestIDContextKey contextKey = "request_id"
	routeContextKey     contextKey = "route"
)

// routeInfo is filled by the matched route so outer middleware can label by pattern.
type routeInfo struct {
	pattern string
}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDContextKey, id)
}

func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey).(string)
	return id
}

func withRouteInfo(ctx context.Context, info *routeInfo) context.Context {
	return context.WithValue(ctx, routeContextKey, info)
}

func routeInfoFromContext(ctx context.Context) (*routeInfo, bool) {
	info, ok := ctx.Value(routeContextKey).(*routeInfo)
	return info, ok && info != nil
}
