package googlecal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/dayplan-labs/dayplan-cli/internal/logger"
)

const (
	// defaultCredentialsFile is the OAuth client file downloaded from the
	// Google Cloud console, looked up under ~/.dayplan by default.
	defaultCredentialsFile = "credentials.json"

	// tokenFile caches the user's OAuth token between runs.
	tokenFile = "calendar_token.json"

	// authTimeout bounds how long we wait for the user to approve access.
	authTimeout = 5 * time.Minute
)

// NewService creates an authenticated Google Calendar service.
// credentialsPath points at the OAuth client file; if empty, defaults to
// ~/.dayplan/credentials.json. A cached token is used when present,
// otherwise the browser-based authorization flow runs, printing the
// authorization URL to out.
func NewService(ctx context.Context, credentialsPath string, out io.Writer) (*calendar.Service, error) {
	if out == nil {
		out = os.Stdout
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting home directory: %w", err)
	}
	dataDir := filepath.Join(home, ".dayplan")
	if credentialsPath == "" {
		credentialsPath = filepath.Join(dataDir, defaultCredentialsFile)
	}

	b, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("reading OAuth client file %s: %w", credentialsPath, err)
	}

	config, err := google.ConfigFromJSON(b, calendar.CalendarEventsScope)
	if err != nil {
		return nil, fmt.Errorf("parsing OAuth client file: %w", err)
	}

	tokenPath := filepath.Join(dataDir, tokenFile)
	token, err := tokenFromFile(tokenPath)
	if err != nil {
		token, err = authorize(ctx, config, out)
		if err != nil {
			return nil, err
		}
		if err := saveToken(tokenPath, token); err != nil {
			logger.Warn("caching OAuth token: %v", err)
		}
	}

	// config.Client refreshes the access token transparently when expired.
	client := config.Client(ctx, token)

	srv, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("creating calendar service: %w", err)
	}
	return srv, nil
}

// authorize runs the browser-based authorization code flow with PKCE,
// capturing the redirect on a localhost callback server.
func authorize(ctx context.Context, config *oauth2.Config, out io.Writer) (*oauth2.Token, error) {
	state := randomState()
	server := newCallbackServer(0, state)
	if err := server.Start(); err != nil {
		return nil, fmt.Errorf("starting callback server: %w", err)
	}
	defer server.Stop() //nolint:errcheck

	config.RedirectURL = server.RedirectURI()

	verifier := oauth2.GenerateVerifier()
	authURL := config.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.S256ChallengeOption(verifier))

	fmt.Fprintf(out, "Open the following URL in your browser to authorize dayplan:\n\n  %s\n\n", authURL)
	if err := openBrowser(authURL); err != nil {
		logger.Debug("could not open browser: %v", err)
	}

	code, err := server.WaitForCode(authTimeout)
	if err != nil {
		return nil, fmt.Errorf("waiting for authorization: %w", err)
	}

	token, err := config.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, fmt.Errorf("exchanging authorization code: %w", err)
	}
	return token, nil
}

// tokenFromFile reads a cached OAuth token.
func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	token := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(token); err != nil {
		return nil, fmt.Errorf("decoding cached token %s: %w", path, err)
	}
	return token, nil
}

// saveToken caches an OAuth token with owner-only permissions.
func saveToken(path string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating token directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("creating token file: %w", err)
	}
	defer f.Close()

	return json.NewEncoder(f).Encode(token)
}
