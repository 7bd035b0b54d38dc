// Package http contains the liveness endpoint
package http

import (
	"github.com/fasthttp/router"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

// LivenessPath is polled by uptime monitors to keep the process awake
const LivenessPath = "/"

// LivenessBody is the fixed response body
const LivenessBody = "Bot is alive!"

// LivenessHandler answers liveness probes. It shares no state with message handling.
type LivenessHandler struct {
	logger zerolog.Logger
}

// NewLivenessHandler creates a new liveness handler
func NewLivenessHandler(logger zerolog.Logger) *LivenessHandler {
	return &LivenessHandler{logger: logger}
}

// RegisterRoutes registers the liveness route for GET and HEAD
func (h *LivenessHandler) RegisterRoutes(r *router.Router) {
	r.GET(LivenessPath, h.Handle)
	r.HEAD(LivenessPath, h.Handle)
}

// Handle writes the fixed liveness body
func (h *LivenessHandler) Handle(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetContentType("text/plain; charset=utf-8")
	ctx.SetBodyString(LivenessBody)

	h.logger.Debug().Str("remote_addr", ctx.RemoteAddr().String()).Msg("Liveness probe")
}
