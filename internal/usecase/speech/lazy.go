package speech

import (
	"context"
	"fmt"

	"gcp-tts-cli/internal/domain/tts"
)

// DialFunc creates the speech service client.
type DialFunc func(ctx context.Context) (tts.Service, error)

// LazyService dials the speech API on first use. Input problems are then
// reported before credentials are ever looked up.
type LazyService struct {
	dial DialFunc
	svc  tts.Service
}

func NewLazyService(dial DialFunc) *LazyService {
	return &LazyService{dial: dial}
}

func (l *LazyService) get(ctx context.Context) (tts.Service, error) {
	if l.svc != nil {
		return l.svc, nil
	}
	svc, err := l.dial(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrClient, err)
	}
	l.svc = svc
	return svc, nil
}

func (l *LazyService) Synthesize(ctx context.Context, req tts.Request) (*tts.Audio, error) {
	svc, err := l.get(ctx)
	if err != nil {
		return nil, err
	}
	return svc.Synthesize(ctx, req)
}

func (l *LazyService) ListVoices(ctx context.Context, languageCode string) ([]tts.Voice, error) {
	svc, err := l.get(ctx)
	if err != nil {
		return nil, err
	}
	return svc.ListVoices(ctx, languageCode)
}

// Dialed reports whether a client was ever created.
func (l *LazyService) Dialed() bool {
	return l.svc != nil
}

// Close closes the client if one was created.
func (l *LazyService) Close() error {
	if l.svc == nil {
		return nil
	}
	return l.svc.Close()
}
