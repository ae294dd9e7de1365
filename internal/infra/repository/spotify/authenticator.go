package spotify

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"

	"github.com/hashicorp/go-retryablehttp"
	spotifyLib "github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/hnormak/spotify-cli/internal/config"
)

func newSessionFactory(cfg *config.Config) sessionFactory {
	return sessionFactory{
		user: func(ctx context.Context, scope string) (apiSession, error) {
			return newUserSession(ctx, cfg, scope)
		},
		app: func(ctx context.Context) (apiSession, error) {
			return newAppSession(ctx, cfg)
		},
	}
}

// newAppSession runs the client-credentials flow. No user involvement.
func newAppSession(ctx context.Context, cfg *config.Config) (*spotifyLib.Client, error) {
	spotifyConfig := &clientcredentials.Config{
		ClientID:     cfg.SpotifyClientID,
		ClientSecret: cfg.SpotifyClientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, retryingHTTPClient())

	token, err := spotifyConfig.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("client credentials token: %w", err)
	}

	httpClient := spotifyauth.New().Client(ctx, token)
	return spotifyLib.New(httpClient, spotifyLib.WithRetry(true)), nil
}

// newUserSession runs the authorization-code flow for the given scope. It
// serves the configured redirect URI on a one-shot local listener, prints
// the authorization URL, and blocks until the code exchange completes or
// ctx is cancelled.
func newUserSession(ctx context.Context, cfg *config.Config, scope string) (*spotifyLib.Client, error) {
	redirect, err := url.Parse(cfg.SpotifyRedirectURI)
	if err != nil {
		return nil, fmt.Errorf("parse redirect URI: %w", err)
	}

	auth := spotifyauth.New(
		spotifyauth.WithClientID(cfg.SpotifyClientID),
		spotifyauth.WithClientSecret(cfg.SpotifyClientSecret),
		spotifyauth.WithRedirectURL(cfg.SpotifyRedirectURI),
		spotifyauth.WithScopes(scope),
	)

	state, err := randomState()
	if err != nil {
		return nil, err
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, retryingHTTPClient())

	type exchange struct {
		token *oauth2.Token
		err   error
	}
	done := make(chan exchange, 1)

	mux := http.NewServeMux()
	mux.HandleFunc(callbackPath(redirect), func(w http.ResponseWriter, r *http.Request) {
		token, err := auth.Token(r.Context(), state, r)
		if err != nil {
			http.Error(w, "Authorization failed", http.StatusForbidden)
			done <- exchange{err: err}
			return
		}
		fmt.Fprintln(w, "Authorization complete. You can close this tab.")
		done <- exchange{token: token}
	})

	listener, err := net.Listen("tcp", redirect.Host)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", redirect.Host, err)
	}

	server := &http.Server{Handler: mux}
	go func() {
		_ = server.Serve(listener)
	}()
	defer server.Close()

	fmt.Fprintf(os.Stderr, "Open the following URL in your browser to authorize:\n\n  %s\n\n", auth.AuthURL(state))

	select {
	case result := <-done:
		if result.err != nil {
			return nil, fmt.Errorf("authorization callback: %w", result.err)
		}
		httpClient := auth.Client(ctx, result.token)
		return spotifyLib.New(httpClient, spotifyLib.WithRetry(true)), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func callbackPath(redirect *url.URL) string {
	if redirect.Path == "" {
		return "/"
	}
	return redirect.Path
}

func randomState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate state: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func retryingHTTPClient() *http.Client {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.Logger = nil
	return client.StandardClient()
}
