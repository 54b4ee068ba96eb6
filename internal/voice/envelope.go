// Package voice implements the assistant request/response envelope and
// intent dispatch.
package voice

// Request types carried in the envelope.
const (
	RequestTypeLaunch       = "LaunchRequest"
	RequestTypeIntent       = "IntentRequest"
	RequestTypeSessionEnded = "SessionEndedRequest"
)

// Intent names the skill responds to.
const (
	IntentGetLocation = "GetLocation"
	IntentFallback    = "AMAZON.FallbackIntent"
)

type RequestEnvelope struct {
	Version string  `json:"version"`
	Request Request `json:"request"`
}

type Request struct {
	Type      string  `json:"type"`
	RequestID string  `json:"requestId"`
	Timestamp string  `json:"timestamp"`
	Locale    string  `json:"locale"`
	Intent    *Intent `json:"intent,omitempty"`
}

type Intent struct {
	Name string `json:"name"`
}

type ResponseEnvelope struct {
	Version  string   `json:"version"`
	Response Response `json:"response"`
}

type Response struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	ShouldEndSession bool          `json:"shouldEndSession"`
}

// OutputSpeech is always SSML; plain text is wrapped in <speak> tags.
type OutputSpeech struct {
	Type string `json:"type"`
	SSML string `json:"ssml"`
}

type Reprompt struct {
	OutputSpeech *OutputSpeech `json:"outputSpeech"`
}

func ssml(text string) *OutputSpeech {
	return &OutputSpeech{Type: "SSML", SSML: "<speak>" + text + "</speak>"}
}

// Speak builds a session-ending spoken response.
func Speak(text string) *ResponseEnvelope {
	return &ResponseEnvelope{
		Version: "1.0",
		Response: Response{
			OutputSpeech:     ssml(text),
			ShouldEndSession: true,
		},
	}
}

// SpeakWithReprompt keeps the session open and re-prompts the user.
func SpeakWithReprompt(text, reprompt string) *ResponseEnvelope {
	return &ResponseEnvelope{
		Version: "1.0",
		Response: Response{
			OutputSpeech:     ssml(text),
			Reprompt:         &Reprompt{OutputSpeech: ssml(reprompt)},
			ShouldEndSession: false,
		},
	}
}

// Empty acknowledges a request without speaking, ending the session.
func Empty() *ResponseEnvelope {
	return &ResponseEnvelope{
		Version:  "1.0",
		Response: Response{ShouldEndSession: true},
	}
}
