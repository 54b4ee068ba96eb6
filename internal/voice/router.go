package voice

import (
	"context"

	"github.com/rs/zerolog"
)

// HandlerFunc produces a response for one routed request.
type HandlerFunc func(ctx context.Context, req *RequestEnvelope) (*ResponseEnvelope, error)

// Router maps request types and intent names to handlers. Intent requests
// route on the intent name; every other request routes on its type.
type Router struct {
	routes          map[string]HandlerFunc
	fallback        HandlerFunc
	exceptionSpeech string
	logger          zerolog.Logger
}

type RouterConfig struct {
	// ExceptionSpeech is spoken when a handler returns an error.
	ExceptionSpeech string
	Logger          zerolog.Logger
}

func NewRouter(cfg RouterConfig) *Router {
	return &Router{
		routes:          make(map[string]HandlerFunc),
		exceptionSpeech: cfg.ExceptionSpeech,
		logger:          cfg.Logger,
	}
}

// Handle registers a handler for a request type or intent name.
func (r *Router) Handle(key string, h HandlerFunc) {
	r.routes[key] = h
}

// HandleFallback registers the handler for unrouted requests.
func (r *Router) HandleFallback(h HandlerFunc) {
	r.fallback = h
}

// Dispatch routes the request. Handler errors are absorbed: the caller
// always gets a speakable response.
func (r *Router) Dispatch(ctx context.Context, req *RequestEnvelope) *ResponseEnvelope {
	key := req.Request.Type
	if key == RequestTypeIntent && req.Request.Intent != nil {
		key = req.Request.Intent.Name
	}

	h, ok := r.routes[key]
	if !ok {
		h = r.fallback
	}
	if h == nil {
		r.logger.Warn().Str("route", key).Msg("no handler registered")
		return Speak(r.exceptionSpeech)
	}

	resp, err := h(ctx, req)
	if err != nil {
		r.logger.Error().Err(err).Str("route", key).Msg("handler failed")
		return Speak(r.exceptionSpeech)
	}
	return resp
}
