package server

import (
	"net/http"
	"net/url"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	"github.com/sequelhq/events-portal/internal/session"
)

// LoginPageData contains data for rendering the login page
type LoginPageData struct {
	AppName  string
	Error    string
	ClientID string // Preserve the client id on error
	From     string // Intended destination after login
}

// loginForm is the submitted credential pair.
type loginForm struct {
	ClientID     string `validate:"required"`
	ClientSecret string `validate:"required"`
}

// LoginPageHandler displays the login page (GET /login)
func (s *Server) LoginPageHandler() http.HandlerFunc {
	loginTmpl, err := ParseTemplate("login.html")
	if err != nil {
		log.Err(err).Msg("Failed to parse login template")
	}

	return func(w http.ResponseWriter, r *http.Request) {
		// Already authenticated visitors go straight to their destination.
		if SessionFromContext(r.Context()).IsLoggedIn() {
			http.Redirect(w, r, safeRedirectTarget(r.URL.Query().Get("from")), http.StatusSeeOther)
			return
		}

		data := LoginPageData{
			AppName:  s.config.GetAppName(),
			Error:    r.URL.Query().Get("error"),
			ClientID: r.URL.Query().Get("client_id"),
			From:     r.URL.Query().Get("from"),
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := loginTmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render login template")
			http.Error(w, "Failed to render login page", http.StatusInternalServerError)
		}
	}
}

// LoginSubmissionHandler processes the login form submission (POST /login).
// On success the session triple is persisted in the cookie and the visitor
// is redirected to their intended destination. On any failure the session
// and cookie are cleared before the error is rendered, so a bad token can
// never linger behind a logged-in looking state.
func (s *Server) LoginSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		form := loginForm{
			ClientID:     r.FormValue("client_id"),
			ClientSecret: r.FormValue("client_secret"),
		}
		from := r.FormValue("from")

		if err := s.validate.Struct(form); err != nil {
			s.renderLoginError(w, r, "Client ID and Client Secret are required", form.ClientID, from)
			return
		}

		sess := SessionFromContext(r.Context())

		tok, err := s.auth.ExchangeCredentials(r.Context(), form.ClientID, form.ClientSecret)
		if err != nil {
			log.Warn().Err(err).Str("client_id", form.ClientID).Msg("Credential exchange failed")
			// Reset local state regardless of what the visitor sees next.
			s.sessions.Clear(w)
			s.renderLoginError(w, r, "Failed to login, please ensure your Client ID and Client Secret are correctly entered and try again.", form.ClientID, from)
			return
		}
		logTokenExpiry(tok)

		next := session.Session{
			UserID:      sess.UserID, // preserved across logins
			AccessToken: tok.AccessToken,
			CompanyID:   form.ClientID,
		}
		if err := s.sessions.Save(w, next); err != nil {
			log.Err(err).Msg("Failed to persist session")
			http.Error(w, "Failed to persist session", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, safeRedirectTarget(from), http.StatusSeeOther)
	}
}

// renderLoginError redirects to the login page with an error message
func (s *Server) renderLoginError(w http.ResponseWriter, r *http.Request, errorMsg, clientID, from string) {
	redirectURL := RouteLogin + "?error=" + url.QueryEscape(errorMsg)
	if clientID != "" {
		redirectURL += "&client_id=" + url.QueryEscape(clientID)
	}
	if from != "" {
		redirectURL += "&from=" + url.QueryEscape(from)
	}
	http.Redirect(w, r, redirectURL, http.StatusSeeOther)
}

// logTokenExpiry surfaces the exchanged token's lifetime in the logs. The
// token is treated as opaque everywhere else; this decode is best-effort
// and unverified.
func logTokenExpiry(tok *oauth2.Token) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok.AccessToken, claims); err != nil {
		return
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return
	}
	log.Debug().Time("expires_at", exp.Time).Msg("Access token issued")
}
