package spotify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	spotifyLib "github.com/zmb3/spotify/v2"
)

type fakeSession struct {
	displayName      string
	currentUserErr   error
	currentUserCalls int
}

func (f *fakeSession) CurrentUser(ctx context.Context) (*spotifyLib.PrivateUser, error) {
	f.currentUserCalls++
	if f.currentUserErr != nil {
		return nil, f.currentUserErr
	}
	return &spotifyLib.PrivateUser{User: spotifyLib.User{DisplayName: f.displayName}}, nil
}

func (f *fakeSession) CurrentUsersTopTracks(ctx context.Context, opts ...spotifyLib.RequestOption) (*spotifyLib.FullTrackPage, error) {
	return &spotifyLib.FullTrackPage{}, nil
}

func (f *fakeSession) CurrentUsersTopArtists(ctx context.Context, opts ...spotifyLib.RequestOption) (*spotifyLib.FullArtistPage, error) {
	return &spotifyLib.FullArtistPage{}, nil
}

func (f *fakeSession) Search(ctx context.Context, query string, t spotifyLib.SearchType, opts ...spotifyLib.RequestOption) (*spotifyLib.SearchResult, error) {
	return &spotifyLib.SearchResult{}, nil
}

type countingFactory struct {
	userHandshakes int
	appHandshakes  int
	lastUser       *fakeSession
	userErr        error
	appErr         error
}

func (c *countingFactory) factory() sessionFactory {
	return sessionFactory{
		user: func(ctx context.Context, scope string) (apiSession, error) {
			if c.userErr != nil {
				return nil, c.userErr
			}
			c.userHandshakes++
			c.lastUser = &fakeSession{displayName: "testuser"}
			return c.lastUser, nil
		},
		app: func(ctx context.Context) (apiSession, error) {
			if c.appErr != nil {
				return nil, c.appErr
			}
			c.appHandshakes++
			return &fakeSession{}, nil
		},
	}
}

func TestSessionBroker_AppSessionIsCached(t *testing.T) {
	counting := &countingFactory{}
	broker := NewSessionBroker(counting.factory())

	first, err := broker.Session(context.Background(), "")
	require.NoError(t, err)
	second, err := broker.Session(context.Background(), "")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, counting.appHandshakes)
}

func TestSessionBroker_UserSessionPerScope(t *testing.T) {
	counting := &countingFactory{}
	broker := NewSessionBroker(counting.factory())
	ctx := context.Background()

	t.Run("same scope reuses the handle", func(t *testing.T) {
		first, err := broker.Session(ctx, "scopeA")
		require.NoError(t, err)
		second, err := broker.Session(ctx, "scopeA")
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, 1, counting.userHandshakes)
	})

	t.Run("scope change replaces the handle", func(t *testing.T) {
		previous, err := broker.Session(ctx, "scopeA")
		require.NoError(t, err)

		replaced, err := broker.Session(ctx, "scopeB")
		require.NoError(t, err)

		assert.NotSame(t, previous, replaced)
		assert.Equal(t, 2, counting.userHandshakes)
	})

	t.Run("user and app handles are independent", func(t *testing.T) {
		_, err := broker.Session(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, 1, counting.appHandshakes)
		assert.Equal(t, 2, counting.userHandshakes)
	})
}

func TestSessionBroker_AuthenticationFailure(t *testing.T) {
	counting := &countingFactory{
		userErr: errors.New("user declined consent"),
		appErr:  errors.New("bad credentials"),
	}
	broker := NewSessionBroker(counting.factory())

	_, err := broker.Session(context.Background(), "scopeA")
	assert.ErrorIs(t, err, ErrAuthentication)
	assert.ErrorIs(t, err, counting.userErr)

	_, err = broker.Session(context.Background(), "")
	assert.ErrorIs(t, err, ErrAuthentication)
	assert.ErrorIs(t, err, counting.appErr)
}

func TestSessionBroker_DisplayName(t *testing.T) {
	t.Run("fetched once and cached", func(t *testing.T) {
		counting := &countingFactory{}
		broker := NewSessionBroker(counting.factory())

		first, err := broker.DisplayName(context.Background())
		require.NoError(t, err)
		second, err := broker.DisplayName(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "testuser", first)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, counting.userHandshakes)
		assert.Equal(t, 1, counting.lastUser.currentUserCalls)
	})

	t.Run("dropped when a scope change replaces the session", func(t *testing.T) {
		counting := &countingFactory{}
		broker := NewSessionBroker(counting.factory())
		ctx := context.Background()

		_, err := broker.DisplayName(ctx)
		require.NoError(t, err)
		firstSession := counting.lastUser

		_, err = broker.Session(ctx, "some-other-scope")
		require.NoError(t, err)

		_, err = broker.DisplayName(ctx)
		require.NoError(t, err)

		// The name must come from a fresh lookup, not the stale cache.
		assert.Equal(t, 1, firstSession.currentUserCalls)
		assert.Equal(t, 1, counting.lastUser.currentUserCalls)
		assert.Equal(t, 3, counting.userHandshakes)
	})

	t.Run("lookup failure keeps the cause in the chain", func(t *testing.T) {
		cause := errors.New("token expired")
		broker := NewSessionBroker(sessionFactory{
			user: func(ctx context.Context, scope string) (apiSession, error) {
				return &fakeSession{currentUserErr: cause}, nil
			},
		})

		_, err := broker.DisplayName(context.Background())
		assert.ErrorIs(t, err, ErrAuthentication)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("missing display name is an authentication error", func(t *testing.T) {
		broker := NewSessionBroker(sessionFactory{
			user: func(ctx context.Context, scope string) (apiSession, error) {
				return &fakeSession{}, nil
			},
		})

		_, err := broker.DisplayName(context.Background())
		assert.ErrorIs(t, err, ErrAuthentication)
	})
}
