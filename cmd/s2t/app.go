package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	gdrive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"gcp-tts-cli/internal/config"
	"gcp-tts-cli/internal/domain/audio"
	"gcp-tts-cli/internal/domain/tts"
	"gcp-tts-cli/internal/infrastructure/document"
	"gcp-tts-cli/internal/infrastructure/drive"
	"gcp-tts-cli/internal/infrastructure/googleauth"
	"gcp-tts-cli/internal/infrastructure/storage"
	"gcp-tts-cli/internal/infrastructure/tts/google"
	"gcp-tts-cli/internal/metrics"
	"gcp-tts-cli/internal/usecase/speech"
)

// errUsage means help was already printed; nothing else goes to stderr.
var errUsage = errors.New("missing arguments")

// app holds the process dependencies. Tests swap dial and newPublisher.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	metrics *metrics.Metrics
	stdout  io.Writer
	stderr  io.Writer

	dial         speech.DialFunc
	newPublisher func(ctx context.Context, folderID string) (audio.Publisher, error)
}

func newApp(cfg *config.Config, logger *zap.Logger, stdout, stderr io.Writer) *app {
	a := &app{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics.New(logger),
		stdout:  stdout,
		stderr:  stderr,
	}
	a.dial = a.dialSpeech
	a.newPublisher = a.driveUploader
	return a
}

// execute runs the command line and returns the process exit code.
func (a *app) execute(ctx context.Context, args []string) int {
	if args == nil {
		args = []string{} // cobra falls back to os.Args on nil
	}
	cmd := newRootCommand(a)
	cmd.SetArgs(args)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	err := cmd.ExecuteContext(ctx)
	if werr := a.metrics.WriteTextfile(a.cfg.MetricsTextfile); werr != nil {
		a.logger.Warn("metrics textfile not written", zap.String("path", a.cfg.MetricsTextfile), zap.Error(werr))
	}
	if err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(a.stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func (a *app) listVoices(ctx context.Context, languageCode string) error {
	svc := speech.NewLazyService(a.dial)
	defer a.closeService(svc)

	uc := speech.NewListVoices(svc, a.stdout, a.metrics, a.logger)
	_, err := uc.Execute(ctx, &speech.ListVoicesInput{LanguageCode: languageCode})
	return err
}

func (a *app) synthesize(ctx context.Context, input, output string, opts *options) error {
	svc := speech.NewLazyService(a.dial)
	defer a.closeService(svc)

	var pub audio.Publisher
	if opts.upload {
		pub = a.lazyPublisher(opts.driveFolder)
	}
	uc := speech.NewSynthesizeFile(
		document.NewExtractor(a.logger),
		svc,
		storage.NewFileStore(""),
		pub,
		a.metrics,
		a.logger,
	)
	out, err := uc.Execute(ctx, &speech.SynthesizeFileInput{
		InputPath:    input,
		OutputPath:   output,
		VoiceName:    opts.voice,
		LanguageCode: opts.language,
	})
	if out != nil {
		fmt.Fprintf(a.stdout, "Audio content written to file '%s'\n", out.LocalPath)
		if out.DriveID != "" {
			fmt.Fprintf(a.stdout, "Uploaded to Google Drive: id=%s link=%s\n", out.DriveID, out.DriveLink)
		}
	}
	return err
}

func (a *app) closeService(svc *speech.LazyService) {
	if err := svc.Close(); err != nil {
		a.logger.Warn("closing speech client", zap.Error(err))
	}
}

// lazyPublisher defers Drive authorization until there is a file to upload.
func (a *app) lazyPublisher(folderID string) audio.Publisher {
	return publisherFunc(func(ctx context.Context, path audio.Path) (string, string, error) {
		p, err := a.newPublisher(ctx, folderID)
		if err != nil {
			return "", "", err
		}
		return p.Publish(ctx, path)
	})
}

type publisherFunc func(ctx context.Context, path audio.Path) (string, string, error)

func (f publisherFunc) Publish(ctx context.Context, path audio.Path) (string, string, error) {
	return f(ctx, path)
}

func (a *app) dialSpeech(ctx context.Context) (tts.Service, error) {
	c, err := google.NewClient(ctx, google.Options{
		CredentialsFile: a.cfg.TTSCredentialsFile,
		Endpoint:        a.cfg.TTSEndpoint,
	}, a.logger)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (a *app) driveUploader(ctx context.Context, folderID string) (audio.Publisher, error) {
	ga, err := googleauth.NewGoogleAuth(a.cfg.CredentialsPath, a.cfg.TokenPath, a.logger, gdrive.DriveFileScope)
	if err != nil {
		return nil, err
	}
	client, err := ga.HTTPClient(ctx, a.cfg.LoopbackAddr, func(authURL string) {
		fmt.Fprintf(a.stderr, "Open the following URL in your browser to authorize Google Drive access:\n%s\n", authURL)
	})
	if err != nil {
		return nil, fmt.Errorf("drive authorization: %w", err)
	}
	srv, err := gdrive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("drive service: %w", err)
	}
	return drive.NewUploader(srv, folderID, a.logger), nil
}
