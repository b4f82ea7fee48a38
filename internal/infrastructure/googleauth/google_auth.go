package googleauth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const callbackPath = "/auth/google/callback"

// authTimeout bounds how long the loopback flow waits for the browser.
var authTimeout = 5 * time.Minute

// GoogleAuth wraps oauth2 configuration and the on-disk token cache.
type GoogleAuth struct {
	config    *oauth2.Config
	tokenPath string
	logger    *zap.Logger
}

// NewGoogleAuth reads an OAuth client secret file (credentials.json from the
// Cloud Console) and prepares a config for the given scopes.
func NewGoogleAuth(credPath, tokenPath string, logger *zap.Logger, scopes ...string) (*GoogleAuth, error) {
	b, err := os.ReadFile(credPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read client secret file: %w", err)
	}
	config, err := google.ConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, fmt.Errorf("unable to parse client secret file to config: %w", err)
	}
	logger = logger.With(zap.String("component", "auth"))
	logger.Debug("using credentials", zap.String("path", credPath), zap.String("client_id", config.ClientID))
	return &GoogleAuth{config: config, tokenPath: tokenPath, logger: logger}, nil
}

// AuthURL generates Google OAuth consent URL.
func (ga *GoogleAuth) AuthURL(state string) string {
	return ga.config.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// SetRedirectURL overrides the redirect URL (used by the loopback flow).
func (ga *GoogleAuth) SetRedirectURL(redirect string) {
	ga.config.RedirectURL = redirect
}

// Exchange exchanges code to token and persists it.
func (ga *GoogleAuth) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	tok, err := ga.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve token from web: %w", err)
	}
	if err := ga.SaveToken(tok); err != nil {
		return nil, err
	}
	return tok, nil
}

// SaveToken writes token to the token file.
func (ga *GoogleAuth) SaveToken(token *oauth2.Token) error {
	if dir := filepath.Dir(ga.tokenPath); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("unable to cache oauth token: %w", err)
		}
	}
	f, err := os.OpenFile(ga.tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("unable to cache oauth token: %w", err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(token)
}

// TokenFromFile retrieves token from the token file.
func (ga *GoogleAuth) TokenFromFile() (*oauth2.Token, error) {
	f, err := os.Open(ga.tokenPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var tok oauth2.Token
	err = json.NewDecoder(f).Decode(&tok)
	return &tok, err
}

// ObtainTokenInteractive starts a temporary local HTTP server on loopbackAddr,
// hands the consent URL to prompt, captures the auth code and saves the token.
// A zero port in loopbackAddr picks a free one.
func (ga *GoogleAuth) ObtainTokenInteractive(ctx context.Context, loopbackAddr string, prompt func(authURL string)) (*oauth2.Token, error) {
	host, _, err := net.SplitHostPort(loopbackAddr)
	if err != nil {
		return nil, fmt.Errorf("loopback address %q: %w", loopbackAddr, err)
	}
	ln, err := net.Listen("tcp", loopbackAddr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", loopbackAddr, err)
	}
	defer ln.Close()
	_, port, _ := net.SplitHostPort(ln.Addr().String())
	ga.SetRedirectURL(fmt.Sprintf("http://%s%s", net.JoinHostPort(host, port), callbackPath))

	state, err := randomState()
	if err != nil {
		return nil, err
	}

	codeCh := make(chan string, 1)
	mux := http.NewServeMux()
	mux.HandleFunc(callbackPath, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("state") != state {
			http.Error(w, "state mismatch", http.StatusBadRequest)
			return
		}
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "code missing", http.StatusBadRequest)
			return
		}
		fmt.Fprint(w, "Authorization received. You can close this tab.")
		select {
		case codeCh <- code:
		default:
		}
	})
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		_ = srv.Serve(ln)
	}()
	defer srv.Close()

	ga.logger.Info("authorization required", zap.String("redirect", ga.config.RedirectURL))
	prompt(ga.AuthURL(state))

	var code string
	select {
	case code = <-codeCh:
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(authTimeout):
		return nil, errors.New("authorization timeout")
	}
	return ga.Exchange(ctx, code)
}

// HTTPClient returns an authorized client, using the cached token when
// present and running the interactive flow otherwise. Requests are logged
// at debug level.
func (ga *GoogleAuth) HTTPClient(ctx context.Context, loopbackAddr string, prompt func(authURL string)) (*http.Client, error) {
	tok, err := ga.TokenFromFile()
	if err != nil {
		ga.logger.Debug("no cached token", zap.Error(err))
		tok, err = ga.ObtainTokenInteractive(ctx, loopbackAddr, prompt)
		if err != nil {
			return nil, err
		}
	}
	base := &http.Client{Transport: &loggingTransport{logger: ga.logger}}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, base)
	return ga.config.Client(ctx, tok), nil
}

func randomState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate oauth state: %w", err)
	}
	return "st-" + hex.EncodeToString(b), nil
}
