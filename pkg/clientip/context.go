package clientip

import "context"

type ctxKey struct{}

// WithContext returns ctx carrying the resolved client address.
func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ctxKey{}, ip)
}

// FromContext returns the address stored by Middleware, or "".
func FromContext(ctx context.Context) string {
	if ip, ok := ctx.Value(ctxKey{}).(string); ok {
		return ip
	}
	return ""
}
