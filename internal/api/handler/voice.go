package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/whereabouts/whereabouts/internal/api/response"
	"github.com/whereabouts/whereabouts/internal/speech"
	"github.com/whereabouts/whereabouts/internal/voice"
)

// VoiceConfig holds the spoken fallback texts for requests the skill
// cannot route.
type VoiceConfig struct {
	FallbackMessage  string
	FallbackReprompt string
	ExceptionMessage string
}

// VoiceHandler handles assistant webhook requests.
type VoiceHandler struct {
	router *voice.Router
	logger zerolog.Logger
}

// NewVoiceHandler builds the intent routing table around the synthesizer.
func NewVoiceHandler(synth *speech.Synthesizer, cfg VoiceConfig, logger zerolog.Logger) *VoiceHandler {
	router := voice.NewRouter(voice.RouterConfig{
		ExceptionSpeech: cfg.ExceptionMessage,
		Logger:          logger,
	})

	locate := func(ctx context.Context, _ *voice.RequestEnvelope) (*voice.ResponseEnvelope, error) {
		text, err := synth.Respond(ctx)
		if err != nil {
			return nil, err
		}
		return voice.Speak(text), nil
	}

	// Launching the skill without an utterance behaves like asking directly.
	router.Handle(voice.RequestTypeLaunch, locate)
	router.Handle(voice.IntentGetLocation, locate)

	router.Handle(voice.RequestTypeSessionEnded, func(_ context.Context, _ *voice.RequestEnvelope) (*voice.ResponseEnvelope, error) {
		return voice.Empty(), nil
	})

	router.Handle(voice.IntentFallback, func(_ context.Context, _ *voice.RequestEnvelope) (*voice.ResponseEnvelope, error) {
		return voice.SpeakWithReprompt(cfg.FallbackMessage, cfg.FallbackReprompt), nil
	})

	router.HandleFallback(func(_ context.Context, _ *voice.RequestEnvelope) (*voice.ResponseEnvelope, error) {
		return voice.SpeakWithReprompt(cfg.FallbackMessage, cfg.FallbackReprompt), nil
	})

	return &VoiceHandler{
		router: router,
		logger: logger,
	}
}

// HandleRequest handles POST /v1/voice - the assistant webhook. Dispatch
// absorbs handler errors, so this always answers 200 with a speakable
// envelope unless the request body itself is unreadable.
func (h *VoiceHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	var envelope voice.RequestEnvelope
	if err := json.NewDecoder(r.Body).Decode(&envelope); err != nil {
		response.BadRequest(w, r, "invalid request envelope", nil)
		return
	}

	h.logger.Debug().
		Str("request_type", envelope.Request.Type).
		Msg("dispatching voice request")

	resp := h.router.Dispatch(r.Context(), &envelope)
	response.JSON(w, r, http.StatusOK, resp)
}
