// Package speech holds the two things the CLI can do: list voices and turn a
// file into speech.
package speech

import (
	"errors"
	"time"

	"gcp-tts-cli/internal/usecase"
)

var (
	_ usecase.UseCase[SynthesizeFileInput, SynthesizeFileOutput] = (*SynthesizeFile)(nil)
	_ usecase.UseCase[ListVoicesInput, ListVoicesOutput]         = (*ListVoices)(nil)
)

var (
	ErrClient      = errors.New("error creating client")
	ErrSynthesis   = errors.New("error during synthesis")
	ErrListVoices  = errors.New("error listing voices")
	ErrWriteOutput = errors.New("error writing output file")
	ErrPublish     = errors.New("error uploading to drive")
)

// Recorder receives per-call measurements. *metrics.Metrics satisfies it.
type Recorder interface {
	RecordSynthesis(chars, audioBytes int, elapsed time.Duration, err error)
	RecordListing(count int, elapsed time.Duration, err error)
}

type nopRecorder struct{}

func (nopRecorder) RecordSynthesis(int, int, time.Duration, error) {}
func (nopRecorder) RecordListing(int, time.Duration, error)        {}
