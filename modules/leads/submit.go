package leads

import (
	"github.com/dmitrymomot/intake/handler"
	"github.com/dmitrymomot/intake/pkg/clientip"
	"github.com/dmitrymomot/intake/pkg/requestid"
	"github.com/dmitrymomot/intake/svc/submission"
)

// Response is the JSON body of every submission endpoint.
type Response struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    *submission.ResultData `json:"data,omitempty"`
	Errors  []string               `json:"errors,omitempty"`
	Debug   string                 `json:"debug,omitempty"`
}

func submitHandler(p Processor, kind submission.Kind) handler.HandlerFunc[submission.Raw] {
	return func(ctx *handler.Context, raw submission.Raw) handler.Response {
		res := p.Process(ctx, kind, raw, metadata(ctx))
		return handler.JSON(res.Status, Response{
			Success: res.Success,
			Message: res.Message,
			Data:    res.Data,
			Errors:  res.Errors,
			Debug:   res.Debug,
		})
	}
}

func metadata(ctx *handler.Context) submission.Metadata {
	r := ctx.Request()
	ip := clientip.FromContext(ctx)
	if ip == "" {
		ip = clientip.GetIP(r)
	}
	return submission.Metadata{
		ClientIP:  ip,
		UserAgent: r.UserAgent(),
		RequestID: requestid.FromContext(ctx),
	}
}
