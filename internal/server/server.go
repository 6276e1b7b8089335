// Package server is the web portal: a server-rendered UI over the Sequel
// API with a login page, an upcoming-events listing and an embedded
// live-event viewer.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/oauth2"

	"github.com/sequelhq/events-portal/internal/config"
	"github.com/sequelhq/events-portal/internal/queries"
	"github.com/sequelhq/events-portal/internal/session"
)

// CredentialExchanger trades API credentials for an access token. The
// Sequel client satisfies this; tests substitute a fake.
type CredentialExchanger interface {
	ExchangeCredentials(ctx context.Context, clientID, clientSecret string) (*oauth2.Token, error)
}

type Server struct {
	env        string // Environment (e.g., "DEV", "production")
	mux        *http.ServeMux
	routes     []string
	fileServer http.Handler
	config     config.Config
	sessions   session.Persistence
	auth       CredentialExchanger
	queries    *queries.Queries
	validate   *validator.Validate
}

func New(cfg config.Config, sessions session.Persistence, auth CredentialExchanger, q *queries.Queries) *Server {
	s := &Server{
		mux:      http.NewServeMux(),
		config:   cfg,
		sessions: sessions,
		auth:     auth,
		queries:  q,
		validate: validator.New(),
	}
	s.env = cfg.GetEnv()
	s.fileServer = FileServerHandler()

	s.initRoutes()
	s.logRoutes()

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := MethodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}

// token derives the bearer token for downstream API calls from the
// session. Recomputed on every call site, never cached.
func token(sess session.Session) *oauth2.Token {
	return &oauth2.Token{AccessToken: sess.AccessToken, TokenType: "Bearer"}
}
