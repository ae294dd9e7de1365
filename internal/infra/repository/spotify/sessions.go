package spotify

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	spotifyLib "github.com/zmb3/spotify/v2"
)

// ScopeUserTopRead is the permission scope required to read the current
// user's top items and profile.
const ScopeUserTopRead = "user-top-read"

var ErrAuthentication = errors.New("spotify: authentication failed")

// apiSession is the part of the Spotify client surface the CLI uses.
// *spotifyLib.Client satisfies it.
type apiSession interface {
	CurrentUser(ctx context.Context) (*spotifyLib.PrivateUser, error)
	CurrentUsersTopTracks(ctx context.Context, opts ...spotifyLib.RequestOption) (*spotifyLib.FullTrackPage, error)
	CurrentUsersTopArtists(ctx context.Context, opts ...spotifyLib.RequestOption) (*spotifyLib.FullArtistPage, error)
	Search(ctx context.Context, query string, t spotifyLib.SearchType, opts ...spotifyLib.RequestOption) (*spotifyLib.SearchResult, error)
}

// sessionFactory builds authenticated sessions. The user constructor runs
// the authorization-code flow for the given scope; the app constructor runs
// the client-credentials flow.
type sessionFactory struct {
	user func(ctx context.Context, scope string) (apiSession, error)
	app  func(ctx context.Context) (apiSession, error)
}

// SessionBroker hands out authenticated sessions, reusing them across calls
// so each distinct scope costs at most one authorization handshake per
// process. It holds at most one user session and one app-only session.
type SessionBroker struct {
	log     *logrus.Entry
	factory sessionFactory

	userSession apiSession
	userScope   string
	appSession  apiSession

	displayName    string
	hasDisplayName bool
}

func NewSessionBroker(factory sessionFactory) *SessionBroker {
	return &SessionBroker{
		log:     logrus.WithField("component", "session-broker"),
		factory: factory,
	}
}

// Session returns an authenticated session for the given scope. An empty
// scope yields the app-only session. The user session is rebuilt only when
// the requested scope differs from the one it was created with; the cached
// display name is dropped together with the session it came from.
func (b *SessionBroker) Session(ctx context.Context, scope string) (apiSession, error) {
	if scope == "" {
		if b.appSession == nil {
			sess, err := b.factory.app(ctx)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrAuthentication, err)
			}
			b.log.Debug("Created app session")
			b.appSession = sess
		}
		return b.appSession, nil
	}

	if b.userSession == nil || b.userScope != scope {
		sess, err := b.factory.user(ctx, scope)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrAuthentication, err)
		}
		b.log.WithField("scope", scope).Debug("Created user session")
		b.userSession = sess
		b.userScope = scope
		b.displayName = ""
		b.hasDisplayName = false
	}

	return b.userSession, nil
}

// DisplayName returns the current user's display name. The first call does
// a remote lookup; the result is cached until the user session is replaced.
func (b *SessionBroker) DisplayName(ctx context.Context) (string, error) {
	if b.hasDisplayName {
		return b.displayName, nil
	}

	sess, err := b.Session(ctx, ScopeUserTopRead)
	if err != nil {
		return "", err
	}

	user, err := sess.CurrentUser(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAuthentication, err)
	}
	if user == nil || user.DisplayName == "" {
		return "", fmt.Errorf("%w: current user has no display name", ErrAuthentication)
	}

	b.displayName = user.DisplayName
	b.hasDisplayName = true
	return b.displayName, nil
}
