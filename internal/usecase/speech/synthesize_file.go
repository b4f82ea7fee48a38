package speech

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"gcp-tts-cli/internal/domain/audio"
	"gcp-tts-cli/internal/domain/document"
	"gcp-tts-cli/internal/domain/tts"
)

// SynthesizeFileInput is input DTO.
type SynthesizeFileInput struct {
	InputPath    string
	OutputPath   string
	VoiceName    string
	LanguageCode string
}

// SynthesizeFileOutput is output DTO.
type SynthesizeFileOutput struct {
	LocalPath audio.Path
	Bytes     int
	DriveID   string // set when the file was published
	DriveLink string
}

// SynthesizeFile implements usecase.UseCase: input file in, MP3 file out.
type SynthesizeFile struct {
	source      document.Source
	synthesizer tts.Synthesizer
	store       audio.Store
	publisher   audio.Publisher
	recorder    Recorder
	logger      *zap.Logger
}

// NewSynthesizeFile wires the use case. publisher and recorder may be nil.
func NewSynthesizeFile(source document.Source, synth tts.Synthesizer, store audio.Store, publisher audio.Publisher, recorder Recorder, logger *zap.Logger) *SynthesizeFile {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &SynthesizeFile{
		source:      source,
		synthesizer: synth,
		store:       store,
		publisher:   publisher,
		recorder:    recorder,
		logger:      logger.With(zap.String("component", "synthesize")),
	}
}

// Execute extracts the text, synthesizes it once and writes the audio.
// Nothing is sent to the service if extraction fails.
func (uc *SynthesizeFile) Execute(ctx context.Context, in *SynthesizeFileInput) (*SynthesizeFileOutput, error) {
	// 1. Extract
	text, err := uc.source.Extract(in.InputPath)
	if err != nil {
		return nil, err
	}
	uc.logger.Debug("input extracted", zap.String("path", in.InputPath), zap.Int("chars", utf8.RuneCountInString(text)))

	// 2. Synthesize
	req := tts.Request{
		Text:         text,
		VoiceName:    in.VoiceName,
		LanguageCode: in.LanguageCode,
		Encoding:     tts.EncodingMP3,
	}
	start := time.Now()
	audioObj, err := uc.synthesizer.Synthesize(ctx, req)
	size := 0
	if audioObj != nil {
		size = len(audioObj.Data)
	}
	if errors.Is(err, ErrClient) {
		return nil, err
	}
	uc.recorder.RecordSynthesis(utf8.RuneCountInString(text), size, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSynthesis, err)
	}

	// 3. Store
	path, err := uc.store.Save(audioObj.Data, in.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	out := &SynthesizeFileOutput{LocalPath: path, Bytes: len(audioObj.Data)}
	uc.logger.Info("audio saved", zap.String("path", string(path)), zap.Int("bytes", out.Bytes))

	// 4. Publish
	if uc.publisher != nil {
		id, link, err := uc.publisher.Publish(ctx, path)
		if err != nil {
			return out, fmt.Errorf("%w: %w", ErrPublish, err)
		}
		out.DriveID, out.DriveLink = id, link
	}
	return out, nil
}
