package tts

import (
	"context"
)

// Encoding is the audio container requested from the service.
type Encoding string

const (
	EncodingMP3 Encoding = "mp3"
)

// Request is a single synthesis call. Gender is deliberately absent: the
// voice name already selects it.
type Request struct {
	Text         string
	VoiceName    string
	LanguageCode string
	Encoding     Encoding
}

// Audio is raw synthesized voice.
type Audio struct {
	Data   []byte
	Format string // e.g. "mp3"
}

// Synthesizer converts text to Audio.
// Concrete implementation wraps Google Cloud Text-to-Speech.
type Synthesizer interface {
	// Synthesize sends req to the service and returns the encoded audio.
	Synthesize(ctx context.Context, req Request) (*Audio, error)
}

// VoiceLister enumerates voices known to the service.
type VoiceLister interface {
	// ListVoices returns voices supporting languageCode, in service order.
	ListVoices(ctx context.Context, languageCode string) ([]Voice, error)
}

// Service is both halves of the remote speech API plus its lifecycle.
type Service interface {
	Synthesizer
	VoiceLister
	Close() error
}
