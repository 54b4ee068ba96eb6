package models

// EventCreateRequest is the body of POST /v1/events. Distances and the
// ETA are precomputed by the reporting device; the service stores them
// as given.
type EventCreateRequest struct {
	Address                string  `json:"address"`
	RecordedAt             string  `json:"recordedAt"`
	AccuracyMetres         float64 `json:"accuracyMetres"`
	DistanceFromHomeMetres float64 `json:"distanceFromHomeMetres"`
	DistanceFromWorkMetres float64 `json:"distanceFromWorkMetres"`
	HomeETASeconds         int     `json:"homeEtaSeconds"`
}

// EventResponse is one stored location event.
type EventResponse struct {
	ID                     string  `json:"id"`
	Address                string  `json:"address"`
	RecordedAt             string  `json:"recordedAt"`
	AccuracyMetres         float64 `json:"accuracyMetres"`
	DistanceFromHomeMetres float64 `json:"distanceFromHomeMetres"`
	DistanceFromWorkMetres float64 `json:"distanceFromWorkMetres"`
	HomeETASeconds         int     `json:"homeEtaSeconds"`
}
