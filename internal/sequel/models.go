package sequel

import "time"

// Company is a Sequel company as returned by GET /v1/company/{id}.
type Company struct {
	// UID uniquely identifies the company. Always present on a valid
	// response; its absence marks the payload as malformed.
	UID string `json:"uid"`

	Name string `json:"name"`

	// Logo is a URL, empty when the company has none.
	Logo string `json:"logo"`

	ParentCompanyID string `json:"parentCompanyId"`

	// EventIDs lists the company's event ids in the API's order.
	EventIDs []string `json:"eventIds"`
}

// Event is a Sequel event as returned by GET /v1/event/{id} and by the
// company events listing.
type Event struct {
	UID        string `json:"uid"`
	CompanyUID string `json:"companyUid"`
	CreatorUID string `json:"creatorUid"`
	Name       string `json:"name"`

	// Picture is a URL, empty when the event has none.
	Picture string `json:"picture"`

	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`

	// Timezone is an IANA zone name such as "America/New_York".
	Timezone string `json:"timezone"`
}

// EmbedViewer describes the viewer a generated embed code is minted for.
// It is posted verbatim to /v1/event/{id}/embedCode.
type EmbedViewer struct {
	UserID          string `json:"userId"`
	UserDisplayName string `json:"userDisplayName"`
	UserEmail       string `json:"userEmail"`
	UserAvatar      string `json:"userAvatar"`
}

// tokenRequest is the body of the credential exchange request.
type tokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Audience     string `json:"audience"`
	GrantType    string `json:"grant_type"`
}

// tokenResponse is the body of a successful credential exchange.
type tokenResponse struct {
	AccessToken string `json:"access_token"`

	// Expires is the token lifetime in seconds.
	Expires int64 `json:"expires"`
}
