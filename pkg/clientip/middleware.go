package clientip

import "net/http"

// Middleware stores the address resolved by r in the request context.
func (r *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := WithContext(req.Context(), r.GetIP(req))
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

// Middleware is Resolver.Middleware with DefaultHeaders.
func Middleware(next http.Handler) http.Handler {
	return defaultResolver.Middleware(next)
}
