package google

import (
	"context"
	"fmt"
	"time"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/googleapis/gax-go/v2"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/grpc/status"

	"gcp-tts-cli/internal/domain/tts"
)

// speechAPI is the part of *texttospeech.Client used here.
type speechAPI interface {
	ListVoices(ctx context.Context, req *texttospeechpb.ListVoicesRequest, opts ...gax.CallOption) (*texttospeechpb.ListVoicesResponse, error)
	SynthesizeSpeech(ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest, opts ...gax.CallOption) (*texttospeechpb.SynthesizeSpeechResponse, error)
	Close() error
}

// Options tweak how the client authenticates and where it connects.
// Zero values mean Application Default Credentials and the public endpoint.
type Options struct {
	CredentialsFile string
	Endpoint        string
}

// Client implements tts.Service using Google Cloud Text-to-Speech.
type Client struct {
	api    speechAPI
	logger *zap.Logger
}

// NewClient dials the Text-to-Speech API.
func NewClient(ctx context.Context, opts Options, logger *zap.Logger) (*Client, error) {
	var clientOpts []option.ClientOption
	if opts.CredentialsFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(opts.CredentialsFile))
	}
	if opts.Endpoint != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(opts.Endpoint))
	}
	c, err := texttospeech.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, err
	}
	return newClient(c, logger), nil
}

func newClient(api speechAPI, logger *zap.Logger) *Client {
	return &Client{api: api, logger: logger.With(zap.String("component", "tts"))}
}

// ListVoices returns voices supporting languageCode in the order the API sends them.
func (c *Client) ListVoices(ctx context.Context, languageCode string) ([]tts.Voice, error) {
	c.logger.Debug("listing voices", zap.String("language", languageCode))
	resp, err := c.api.ListVoices(ctx, &texttospeechpb.ListVoicesRequest{LanguageCode: languageCode})
	if err != nil {
		c.logger.Debug("list voices failed", zap.String("code", status.Code(err).String()), zap.Error(err))
		return nil, err
	}

	voices := make([]tts.Voice, 0, len(resp.GetVoices()))
	for _, v := range resp.GetVoices() {
		voices = append(voices, tts.Voice{
			Name:                   v.GetName(),
			LanguageCodes:          v.GetLanguageCodes(),
			Gender:                 genderFromProto(v.GetSsmlGender()),
			NaturalSampleRateHertz: v.GetNaturalSampleRateHertz(),
		})
	}
	c.logger.Debug("voices received", zap.Int("count", len(voices)))
	return voices, nil
}

// Synthesize converts req.Text to audio. Only the voice name and language are
// sent; the gender follows from the name.
func (c *Client) Synthesize(ctx context.Context, req tts.Request) (*tts.Audio, error) {
	encoding, err := encodingToProto(req.Encoding)
	if err != nil {
		return nil, err
	}

	c.logger.Info("starting synthesis",
		zap.String("voice", req.VoiceName),
		zap.String("language", req.LanguageCode),
		zap.String("encoding", string(req.Encoding)),
		zap.Int("text_length", len([]rune(req.Text))))
	start := time.Now()

	resp, err := c.api.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: req.Text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: req.LanguageCode,
			Name:         req.VoiceName,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: encoding,
		},
	})
	if err != nil {
		c.logger.Debug("synthesis failed", zap.String("code", status.Code(err).String()), zap.Error(err))
		return nil, err
	}

	c.logger.Info("synthesis completed",
		zap.Int("audio_bytes", len(resp.GetAudioContent())),
		zap.Duration("elapsed", time.Since(start)))
	return &tts.Audio{Data: resp.GetAudioContent(), Format: string(req.Encoding)}, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	return c.api.Close()
}

func encodingToProto(e tts.Encoding) (texttospeechpb.AudioEncoding, error) {
	switch e {
	case tts.EncodingMP3, "":
		return texttospeechpb.AudioEncoding_MP3, nil
	default:
		return texttospeechpb.AudioEncoding_AUDIO_ENCODING_UNSPECIFIED, fmt.Errorf("unsupported audio encoding %q", e)
	}
}

func genderFromProto(g texttospeechpb.SsmlVoiceGender) tts.Gender {
	switch g {
	case texttospeechpb.SsmlVoiceGender_MALE:
		return tts.GenderMale
	case texttospeechpb.SsmlVoiceGender_FEMALE:
		return tts.GenderFemale
	case texttospeechpb.SsmlVoiceGender_NEUTRAL:
		return tts.GenderNeutral
	default:
		return tts.GenderUnspecified
	}
}
