// Package queries exposes the portal's four reads — company, event list,
// single event and embed code — as cached, keyed operations over the
// Sequel client. Each read is gated on its identifier: with an empty id it
// reports ErrDisabled without touching the network.
package queries

import (
	"context"
	"errors"

	"golang.org/x/oauth2"

	"github.com/sequelhq/events-portal/internal/querycache"
	"github.com/sequelhq/events-portal/internal/sequel"
)

// ErrDisabled marks a query whose required identifier is absent. It is a
// precondition, not a failure: the caller simply has nothing to show yet.
var ErrDisabled = errors.New("query disabled: missing identifier")

// Embed codes are minted for a viewer identity. The portal presents every
// operator with the same quickstart identity, keyed by their user id.
const (
	ViewerDisplayName = "Quickstart User"
	ViewerEmail       = "sequel-quickstart-user@sequel.io"
	ViewerAvatar      = "https://ui-avatars.com/api/?background=0D8ABC&color=fff&name=Quickstart+User"
)

// API is the slice of the Sequel client the queries need.
type API interface {
	GetCompany(ctx context.Context, tok *oauth2.Token, companyID string) (*sequel.Company, error)
	ListEvents(ctx context.Context, tok *oauth2.Token, companyID string) ([]sequel.Event, error)
	GetEvent(ctx context.Context, tok *oauth2.Token, eventID string) (*sequel.Event, error)
	CreateEmbedCode(ctx context.Context, tok *oauth2.Token, eventID string, viewer sequel.EmbedViewer) (string, error)
}

type Queries struct {
	api   API
	cache *querycache.Cache
}

func New(api API) *Queries {
	return &Queries{api: api, cache: querycache.New()}
}

func companyKey(companyID string) string { return "company|" + companyID }
func eventsKey(companyID string) string  { return "events|" + companyID }
func eventKey(eventID string) string     { return "event|" + eventID }
func embedKey(eventID string) string     { return "embed|" + eventID }

// Company returns the company, cached by company id.
func (q *Queries) Company(ctx context.Context, tok *oauth2.Token, companyID string) (*sequel.Company, error) {
	if companyID == "" {
		return nil, ErrDisabled
	}
	return querycache.Fetch(ctx, q.cache, companyKey(companyID), func(ctx context.Context) (*sequel.Company, error) {
		return q.api.GetCompany(ctx, tok, companyID)
	})
}

// Events returns the company's events, cached by company id.
func (q *Queries) Events(ctx context.Context, tok *oauth2.Token, companyID string) ([]sequel.Event, error) {
	if companyID == "" {
		return nil, ErrDisabled
	}
	return querycache.Fetch(ctx, q.cache, eventsKey(companyID), func(ctx context.Context) ([]sequel.Event, error) {
		return q.api.ListEvents(ctx, tok, companyID)
	})
}

// RefreshEvents re-fetches the event list; used for user-initiated retry.
func (q *Queries) RefreshEvents(ctx context.Context, tok *oauth2.Token, companyID string) ([]sequel.Event, error) {
	if companyID == "" {
		return nil, ErrDisabled
	}
	return querycache.Refresh(ctx, q.cache, eventsKey(companyID), func(ctx context.Context) ([]sequel.Event, error) {
		return q.api.ListEvents(ctx, tok, companyID)
	})
}

// Event returns one event, cached by event id.
func (q *Queries) Event(ctx context.Context, tok *oauth2.Token, eventID string) (*sequel.Event, error) {
	if eventID == "" {
		return nil, ErrDisabled
	}
	return querycache.Fetch(ctx, q.cache, eventKey(eventID), func(ctx context.Context) (*sequel.Event, error) {
		return q.api.GetEvent(ctx, tok, eventID)
	})
}

// RefreshEvent re-fetches one event; used for user-initiated retry.
func (q *Queries) RefreshEvent(ctx context.Context, tok *oauth2.Token, eventID string) (*sequel.Event, error) {
	if eventID == "" {
		return nil, ErrDisabled
	}
	return querycache.Refresh(ctx, q.cache, eventKey(eventID), func(ctx context.Context) (*sequel.Event, error) {
		return q.api.GetEvent(ctx, tok, eventID)
	})
}

// EmbedCode returns the viewer URL for an event, cached by event id. The
// cached code is reused for the cache's lifetime: every upstream call mints
// a new viewer session, so the code is only re-requested on an explicit
// retry or after logout invalidation.
func (q *Queries) EmbedCode(ctx context.Context, tok *oauth2.Token, eventID, userID string) (string, error) {
	if eventID == "" {
		return "", ErrDisabled
	}
	return querycache.Fetch(ctx, q.cache, embedKey(eventID), func(ctx context.Context) (string, error) {
		return q.api.CreateEmbedCode(ctx, tok, eventID, viewer(userID))
	})
}

// RefreshEmbedCode mints a new embed code; used for user-initiated retry.
func (q *Queries) RefreshEmbedCode(ctx context.Context, tok *oauth2.Token, eventID, userID string) (string, error) {
	if eventID == "" {
		return "", ErrDisabled
	}
	return querycache.Refresh(ctx, q.cache, embedKey(eventID), func(ctx context.Context) (string, error) {
		return q.api.CreateEmbedCode(ctx, tok, eventID, viewer(userID))
	})
}

// InvalidateAll drops every cached read. Called on logout so nothing
// fetched under a previous session remains visible.
func (q *Queries) InvalidateAll() {
	q.cache.InvalidateAll()
}

func viewer(userID string) sequel.EmbedViewer {
	return sequel.EmbedViewer{
		UserID:          userID,
		UserDisplayName: ViewerDisplayName,
		UserEmail:       ViewerEmail,
		UserAvatar:      ViewerAvatar,
	}
}
