package server

import (
	"net/http"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sequelhq/events-portal/internal/dateformat"
	"github.com/sequelhq/events-portal/internal/sequel"
)

// NavData drives the navigation bar shared by the portal's pages.
type NavData struct {
	AppName     string
	CompanyName string
	CompanyLogo string
}

// EventCard is one event tile on the listing page.
type EventCard struct {
	UID       string
	Name      string
	Picture   string
	StartDate string
}

// EventsPageData contains data for rendering the events listing
type EventsPageData struct {
	Nav    NavData
	Events []EventCard
	Error  bool
	Empty  bool
}

// EventsPageHandler displays the upcoming events of the logged-in company
// (GET /events). ?retry=1 re-fetches past an error.
func (s *Server) EventsPageHandler() http.HandlerFunc {
	eventsTmpl, err := ParseTemplate("events.html")
	if err != nil {
		log.Err(err).Msg("Failed to parse events template")
	}

	return func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFromContext(r.Context())
		tok := token(sess)

		var events []sequel.Event
		var fetchErr error
		if r.URL.Query().Get("retry") == "1" {
			events, fetchErr = s.queries.RefreshEvents(r.Context(), tok, sess.CompanyID)
		} else {
			events, fetchErr = s.queries.Events(r.Context(), tok, sess.CompanyID)
		}
		if fetchErr != nil {
			log.Warn().Err(fetchErr).Str("company_id", sess.CompanyID).Msg("Failed to load events")
		}

		upcoming := upcomingEvents(events, time.Now())
		data := EventsPageData{
			Nav:    s.navData(r),
			Events: upcoming,
			Error:  fetchErr != nil,
			Empty:  fetchErr == nil && len(upcoming) == 0,
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := eventsTmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render events template")
			http.Error(w, "Failed to render events page", http.StatusInternalServerError)
		}
	}
}

// upcomingEvents keeps events starting after now, soonest first.
func upcomingEvents(events []sequel.Event, now time.Time) []EventCard {
	filtered := make([]sequel.Event, 0, len(events))
	for _, event := range events {
		if event.StartDate.IsZero() || !event.StartDate.After(now) {
			continue
		}
		filtered = append(filtered, event)
	}
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].StartDate.Before(filtered[j].StartDate)
	})

	cards := make([]EventCard, 0, len(filtered))
	for _, event := range filtered {
		cards = append(cards, EventCard{
			UID:       event.UID,
			Name:      event.Name,
			Picture:   event.Picture,
			StartDate: dateformat.Format(event.StartDate, event.Timezone, dateformat.DisplayLayout),
		})
	}
	return cards
}

// navData resolves the company for the navigation bar. A failure here only
// degrades the chrome, so it is logged and otherwise ignored.
func (s *Server) navData(r *http.Request) NavData {
	sess := SessionFromContext(r.Context())
	nav := NavData{AppName: s.config.GetAppName()}

	company, err := s.queries.Company(r.Context(), token(sess), sess.CompanyID)
	if err != nil {
		log.Debug().Err(err).Str("company_id", sess.CompanyID).Msg("Company unavailable for nav")
		return nav
	}
	nav.CompanyName = company.Name
	nav.CompanyLogo = company.Logo
	return nav
}
