package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/whereabouts/whereabouts/internal/api/models"
	"github.com/whereabouts/whereabouts/internal/api/response"
	"github.com/whereabouts/whereabouts/internal/event"
)

// EventHandler handles location event endpoints.
type EventHandler struct {
	repo   event.Repository
	window event.Window
	logger zerolog.Logger
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(repo event.Repository, window event.Window, logger zerolog.Logger) *EventHandler {
	return &EventHandler{
		repo:   repo,
		window: window,
		logger: logger,
	}
}

// IngestEvent handles POST /v1/events - store a location ping.
func (h *EventHandler) IngestEvent(w http.ResponseWriter, r *http.Request) {
	var input models.EventCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	if fieldErrors := validateEventCreate(input); len(fieldErrors) > 0 {
		response.BadRequest(w, r, "invalid event", fieldErrors)
		return
	}

	e := &event.Event{
		ID:                     "evt_" + uuid.New().String()[:22],
		Address:                input.Address,
		RecordedAt:             input.RecordedAt,
		AccuracyMetres:         input.AccuracyMetres,
		DistanceFromHomeMetres: input.DistanceFromHomeMetres,
		DistanceFromWorkMetres: input.DistanceFromWorkMetres,
		HomeETASeconds:         input.HomeETASeconds,
	}

	if err := h.repo.Insert(r.Context(), e); err != nil {
		h.logger.Error().Err(err).Msg("storing event")
		response.ServiceUnavailable(w, r, "event store unavailable")
		return
	}

	response.Created(w, r, "/v1/events/"+e.ID, toEventResponse(e))
}

// LatestEvent handles GET /v1/events/latest - the newest event that
// passes the accuracy and freshness window.
func (h *EventHandler) LatestEvent(w http.ResponseWriter, r *http.Request) {
	events, err := h.repo.ListAll(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("reading event store")
		response.ServiceUnavailable(w, r, "event store unavailable")
		return
	}

	winner := event.SelectNewestValid(events, h.window, time.Now(), h.logger)
	if winner == nil {
		response.NotFound(w, r, "no recent location events")
		return
	}

	response.JSON(w, r, http.StatusOK, toEventResponse(winner))
}

func validateEventCreate(input models.EventCreateRequest) []models.FieldError {
	var fieldErrors []models.FieldError

	if input.Address == "" {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field: "address", Message: "required", Code: "REQUIRED",
		})
	}
	if input.RecordedAt == "" {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field: "recordedAt", Message: "required", Code: "REQUIRED",
		})
	} else if _, err := event.ParseEventTime(input.RecordedAt); err != nil {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field: "recordedAt", Message: "invalid timestamp format", Code: "INVALID_FORMAT",
		})
	}
	if input.AccuracyMetres < 0 {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field: "accuracyMetres", Message: "must not be negative", Code: "OUT_OF_RANGE",
		})
	}
	if input.HomeETASeconds < 0 {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field: "homeEtaSeconds", Message: "must not be negative", Code: "OUT_OF_RANGE",
		})
	}

	return fieldErrors
}

func toEventResponse(e *event.Event) models.EventResponse {
	return models.EventResponse{
		ID:                     e.ID,
		Address:                e.Address,
		RecordedAt:             e.RecordedAt,
		AccuracyMetres:         e.AccuracyMetres,
		DistanceFromHomeMetres: e.DistanceFromHomeMetres,
		DistanceFromWorkMetres: e.DistanceFromWorkMetres,
		HomeETASeconds:         e.HomeETASeconds,
	}
}
