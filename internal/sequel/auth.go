package sequel

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// ExchangeCredentials trades a client id/secret pair for an access token
// via POST /oauth/token using the client_credentials grant.
//
// Any failure (transport, non-2xx status, or a body without an
// access_token) is reported as *AuthError.
func (c *Client) ExchangeCredentials(ctx context.Context, clientID, clientSecret string) (*oauth2.Token, error) {
	body := tokenRequest{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Audience:     c.audience,
		GrantType:    "client_credentials",
	}

	data, err := c.do(ctx, http.MethodPost, "/oauth/token", nil, body)
	if err != nil {
		return nil, &AuthError{Err: err}
	}

	var resp tokenResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, &AuthError{Err: shapeError("exchange credentials", "body is not a JSON object")}
	}
	if resp.AccessToken == "" {
		return nil, &AuthError{Err: shapeError("exchange credentials", "missing access_token")}
	}

	tok := &oauth2.Token{AccessToken: resp.AccessToken, TokenType: "Bearer"}
	if resp.Expires > 0 {
		tok.Expiry = time.Now().Add(time.Duration(resp.Expires) * time.Second)
	}
	return tok, nil
}
