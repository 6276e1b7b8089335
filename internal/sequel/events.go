package sequel

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
)

// ListEvents fetches the events of a company via
// GET /v1/company/{id}/events. The payload must be a JSON array.
func (c *Client) ListEvents(ctx context.Context, tok *oauth2.Token, companyID string) ([]Event, error) {
	data, err := c.do(ctx, http.MethodGet, "/v1/company/"+url.PathEscape(companyID)+"/events", tok, nil)
	if err != nil {
		return nil, err
	}

	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, shapeError("list events", "body is not a sequence")
	}
	var events []Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, shapeError("list events", "body is not a sequence of events")
	}
	return events, nil
}

// GetEvent fetches one event by id via GET /v1/event/{id}.
func (c *Client) GetEvent(ctx context.Context, tok *oauth2.Token, eventID string) (*Event, error) {
	data, err := c.do(ctx, http.MethodGet, "/v1/event/"+url.PathEscape(eventID), tok, nil)
	if err != nil {
		return nil, err
	}

	var event Event
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, shapeError("get event", "body is not an event object")
	}
	if event.UID == "" {
		return nil, shapeError("get event", "missing uid")
	}
	return &event, nil
}

// CreateEmbedCode requests a viewer URL for an event via
// POST /v1/event/{id}/embedCode. The API may answer with either a raw
// string or a JSON-encoded string; both are accepted. Embed codes are not
// idempotent: every call mints a new viewer session, so callers cache the
// result per event.
func (c *Client) CreateEmbedCode(ctx context.Context, tok *oauth2.Token, eventID string, viewer EmbedViewer) (string, error) {
	data, err := c.do(ctx, http.MethodPost, "/v1/event/"+url.PathEscape(eventID)+"/embedCode", tok, viewer)
	if err != nil {
		return "", err
	}

	code := strings.TrimSpace(string(data))
	if strings.HasPrefix(code, `"`) {
		var decoded string
		if err := json.Unmarshal([]byte(code), &decoded); err == nil {
			code = decoded
		}
	}
	if code == "" {
		return "", shapeError("create embed code", "empty body")
	}
	return code, nil
}
