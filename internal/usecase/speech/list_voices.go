package speech

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"gcp-tts-cli/internal/domain/tts"
)

// ListVoicesInput is input DTO.
type ListVoicesInput struct {
	LanguageCode string
}

// ListVoicesOutput is output DTO.
type ListVoicesOutput struct {
	Voices []tts.Voice
}

// ListVoices implements usecase.UseCase: one listing query, one record per voice.
type ListVoices struct {
	lister   tts.VoiceLister
	out      io.Writer
	recorder Recorder
	logger   *zap.Logger
}

// NewListVoices prints to out. recorder may be nil.
func NewListVoices(lister tts.VoiceLister, out io.Writer, recorder Recorder, logger *zap.Logger) *ListVoices {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &ListVoices{lister: lister, out: out, recorder: recorder, logger: logger.With(zap.String("component", "voices"))}
}

// Execute queries the service once and prints voices in the order received.
func (uc *ListVoices) Execute(ctx context.Context, in *ListVoicesInput) (*ListVoicesOutput, error) {
	start := time.Now()
	voices, err := uc.lister.ListVoices(ctx, in.LanguageCode)
	if errors.Is(err, ErrClient) {
		return nil, err
	}
	uc.recorder.RecordListing(len(voices), time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListVoices, err)
	}
	uc.logger.Debug("voices listed", zap.String("language", in.LanguageCode), zap.Int("count", len(voices)))

	for _, v := range voices {
		if err := writeVoice(uc.out, v); err != nil {
			return nil, err
		}
	}
	return &ListVoicesOutput{Voices: voices}, nil
}

func writeVoice(w io.Writer, v tts.Voice) error {
	_, err := fmt.Fprintf(w, "Name: %s\nLanguages: %s\nGender: %s\nNatural Sample Rate Hertz: %d\n---\n",
		v.Name, strings.Join(v.LanguageCodes, ", "), v.Gender, v.NaturalSampleRateHertz)
	return err
}
