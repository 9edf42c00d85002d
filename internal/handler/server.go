package handler

import (
	"time"

	"github.com/valyala/fasthttp"
)

// Server wraps the handler in a fasthttp server with conservative limits.
func (h *Handler) Server() *fasthttp.Server {
	return &fasthttp.Server{
		Handler:            h.Handle,
		Name:               "household-engine",
		ReadTimeout:        5 * time.Second,
		WriteTimeout:       h.sweepTimeout + 5*time.Second,
		MaxRequestBodySize: 1 << 20,
	}
}
