package session_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/sequelhq/events-portal/internal/session"
	"github.com/stretchr/testify/require"
)

func requestWithCookie(value string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/events", nil)
	r.AddCookie(&http.Cookie{Name: session.CookieName, Value: value})
	return r
}

func TestLoadMissingCookie(t *testing.T) {
	store := session.NewCookieStore(true)

	s := store.Load(httptest.NewRequest(http.MethodGet, "/", nil))

	require.False(t, s.IsLoggedIn())
	require.NotEmpty(t, s.UserID)
	require.Empty(t, s.AccessToken)
	require.Empty(t, s.CompanyID)
}

func TestLoadMalformedCookie(t *testing.T) {
	store := session.NewCookieStore(true)

	for _, value := range []string{
		"not-json",
		url.QueryEscape("{truncated"),
		url.QueryEscape(`[1,2,3]`),
		"%zz",
	} {
		s := store.Load(requestWithCookie(value))
		require.False(t, s.IsLoggedIn(), "cookie %q", value)
		require.NotEmpty(t, s.UserID, "cookie %q", value)
	}
}

func TestLoadGeneratesDistinctUserIDs(t *testing.T) {
	store := session.NewCookieStore(true)

	first := store.Load(httptest.NewRequest(http.MethodGet, "/", nil))
	second := store.Load(httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEqual(t, first.UserID, second.UserID)
}

func TestSaveRoundTrip(t *testing.T) {
	store := session.NewCookieStore(true)
	saved := session.Session{UserID: "user-1", AccessToken: "tok1", CompanyID: "abc"}

	rec := httptest.NewRecorder()
	require.NoError(t, store.Save(rec, saved))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	require.Equal(t, session.CookieName, cookie.Name)
	require.True(t, cookie.Secure)
	require.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	require.Equal(t, 24*60*60, cookie.MaxAge)

	loaded := store.Load(requestWithCookie(cookie.Value))
	require.Equal(t, saved, loaded)
}

func TestClearExpiresCookie(t *testing.T) {
	store := session.NewCookieStore(true)

	rec := httptest.NewRecorder()
	store.Clear(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, session.CookieName, cookies[0].Name)
	require.Negative(t, cookies[0].MaxAge)
}

func TestIsLoggedIn(t *testing.T) {
	require.False(t, session.New().IsLoggedIn())
	require.True(t, session.Session{UserID: "u", AccessToken: "t"}.IsLoggedIn())

	reset := session.Session{UserID: "u", AccessToken: "t", CompanyID: "c"}.Reset()
	require.False(t, reset.IsLoggedIn())
	require.Equal(t, "u", reset.UserID)
	require.Empty(t, reset.CompanyID)
}

func TestMemoryStore(t *testing.T) {
	store := session.NewMemoryStore()

	s := store.Load(nil)
	require.False(t, s.IsLoggedIn())

	saved := session.Session{UserID: "u", AccessToken: "t", CompanyID: "c"}
	require.NoError(t, store.Save(nil, saved))
	require.Equal(t, saved, store.Load(nil))

	store.Clear(nil)
	require.False(t, store.Load(nil).IsLoggedIn())
}
