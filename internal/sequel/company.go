package sequel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"
)

// GetCompany fetches one company by id via GET /v1/company/{id}.
func (c *Client) GetCompany(ctx context.Context, tok *oauth2.Token, companyID string) (*Company, error) {
	data, err := c.do(ctx, http.MethodGet, "/v1/company/"+url.PathEscape(companyID), tok, nil)
	if err != nil {
		return nil, err
	}

	var company Company
	if err := json.Unmarshal(data, &company); err != nil {
		return nil, shapeError("get company", "body is not a company object")
	}
	if company.UID == "" {
		return nil, shapeError("get company", "missing uid")
	}
	return &company, nil
}
