// Package clientip resolves the originating client address of an HTTP
// request and carries it in the request context.
//
// A Resolver checks a configured list of proxy headers in order and falls
// back to RemoteAddr. Only headers set by infrastructure you control should
// be trusted; an empty list uses RemoteAddr alone.
//
//	r := clientip.NewResolver(cfg.TrustedHeaders...)
//	router.Use(r.Middleware)
//	ip := clientip.FromContext(req.Context())
package clientip
