package queries_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sequelhq/events-portal/internal/queries"
	"github.com/sequelhq/events-portal/internal/sequel"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

const (
	testTimeout = 2 * time.Second
	testTick    = time.Millisecond
)

// fakeAPI counts calls per operation and optionally blocks fetches until
// released, to observe in-flight de-duplication.
type fakeAPI struct {
	companyCalls atomic.Int32
	eventsCalls  atomic.Int32
	eventCalls   atomic.Int32
	embedCalls   atomic.Int32
	block        chan struct{}

	lastViewer sequel.EmbedViewer
}

var _ queries.API = (*fakeAPI)(nil)

func (f *fakeAPI) wait() {
	if f.block != nil {
		<-f.block
	}
}

func (f *fakeAPI) GetCompany(ctx context.Context, tok *oauth2.Token, companyID string) (*sequel.Company, error) {
	f.companyCalls.Add(1)
	f.wait()
	return &sequel.Company{UID: companyID, Name: "Acme"}, nil
}

func (f *fakeAPI) ListEvents(ctx context.Context, tok *oauth2.Token, companyID string) ([]sequel.Event, error) {
	f.eventsCalls.Add(1)
	f.wait()
	return []sequel.Event{{UID: "ev-1", Name: "Launch"}}, nil
}

func (f *fakeAPI) GetEvent(ctx context.Context, tok *oauth2.Token, eventID string) (*sequel.Event, error) {
	f.eventCalls.Add(1)
	f.wait()
	return &sequel.Event{UID: eventID, Name: "Launch"}, nil
}

func (f *fakeAPI) CreateEmbedCode(ctx context.Context, tok *oauth2.Token, eventID string, viewer sequel.EmbedViewer) (string, error) {
	f.embedCalls.Add(1)
	f.wait()
	f.lastViewer = viewer
	return "https://embed.sequel.io/event/" + eventID, nil
}

func testToken() *oauth2.Token {
	return &oauth2.Token{AccessToken: "tok1", TokenType: "Bearer"}
}

func TestEmptyIdentifiersAreDisabled(t *testing.T) {
	api := &fakeAPI{}
	q := queries.New(api)
	ctx := context.Background()

	_, err := q.Company(ctx, testToken(), "")
	require.ErrorIs(t, err, queries.ErrDisabled)
	_, err = q.Events(ctx, testToken(), "")
	require.ErrorIs(t, err, queries.ErrDisabled)
	_, err = q.Event(ctx, testToken(), "")
	require.ErrorIs(t, err, queries.ErrDisabled)
	_, err = q.EmbedCode(ctx, testToken(), "", "user-1")
	require.ErrorIs(t, err, queries.ErrDisabled)

	require.Zero(t, api.companyCalls.Load())
	require.Zero(t, api.eventsCalls.Load())
	require.Zero(t, api.eventCalls.Load())
	require.Zero(t, api.embedCalls.Load())
}

func TestConcurrentEventFetchesIssueOneCall(t *testing.T) {
	api := &fakeAPI{block: make(chan struct{})}
	q := queries.New(api)

	const workers = 5
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			event, err := q.Event(context.Background(), testToken(), "ev-1")
			require.NoError(t, err)
			require.Equal(t, "ev-1", event.UID)
		}()
	}

	require.Eventually(t, func() bool {
		return api.eventCalls.Load() == 1
	}, testTimeout, testTick)
	close(api.block)
	wg.Wait()

	require.Equal(t, int32(1), api.eventCalls.Load())
}

func TestResultsAreCachedPerKey(t *testing.T) {
	api := &fakeAPI{}
	q := queries.New(api)
	ctx := context.Background()

	for range 3 {
		_, err := q.Events(ctx, testToken(), "abc")
		require.NoError(t, err)
		_, err = q.EmbedCode(ctx, testToken(), "ev-1", "user-1")
		require.NoError(t, err)
	}

	require.Equal(t, int32(1), api.eventsCalls.Load())
	require.Equal(t, int32(1), api.embedCalls.Load())
}

func TestInvalidateAllHitsNetworkAgain(t *testing.T) {
	api := &fakeAPI{}
	q := queries.New(api)
	ctx := context.Background()

	_, err := q.Company(ctx, testToken(), "abc")
	require.NoError(t, err)
	_, err = q.Events(ctx, testToken(), "abc")
	require.NoError(t, err)
	_, err = q.Event(ctx, testToken(), "ev-1")
	require.NoError(t, err)
	_, err = q.EmbedCode(ctx, testToken(), "ev-1", "user-1")
	require.NoError(t, err)

	q.InvalidateAll()

	_, err = q.Company(ctx, testToken(), "abc")
	require.NoError(t, err)
	_, err = q.Events(ctx, testToken(), "abc")
	require.NoError(t, err)
	_, err = q.Event(ctx, testToken(), "ev-1")
	require.NoError(t, err)
	_, err = q.EmbedCode(ctx, testToken(), "ev-1", "user-1")
	require.NoError(t, err)

	require.Equal(t, int32(2), api.companyCalls.Load())
	require.Equal(t, int32(2), api.eventsCalls.Load())
	require.Equal(t, int32(2), api.eventCalls.Load())
	require.Equal(t, int32(2), api.embedCalls.Load())
}

func TestRefreshEventsBypassesCache(t *testing.T) {
	api := &fakeAPI{}
	q := queries.New(api)
	ctx := context.Background()

	_, err := q.Events(ctx, testToken(), "abc")
	require.NoError(t, err)
	_, err = q.RefreshEvents(ctx, testToken(), "abc")
	require.NoError(t, err)

	require.Equal(t, int32(2), api.eventsCalls.Load())
}

func TestEmbedCodeViewerIdentity(t *testing.T) {
	api := &fakeAPI{}
	q := queries.New(api)

	code, err := q.EmbedCode(context.Background(), testToken(), "ev-1", "user-42")
	require.NoError(t, err)
	require.Equal(t, "https://embed.sequel.io/event/ev-1", code)

	require.Equal(t, "user-42", api.lastViewer.UserID)
	require.Equal(t, queries.ViewerDisplayName, api.lastViewer.UserDisplayName)
	require.Equal(t, queries.ViewerEmail, api.lastViewer.UserEmail)
	require.Equal(t, queries.ViewerAvatar, api.lastViewer.UserAvatar)
}
