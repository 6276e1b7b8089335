package server

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

// EventPageData contains data for rendering the event viewer page
type EventPageData struct {
	Nav       NavData
	EventID   string
	EventName string
	EmbedURL  string
	Error     bool
}

// EventPageHandler displays one event with its embedded viewer
// (GET /events/{eventID}). ?retry=1 re-fetches both the event and the
// embed code past an error; otherwise the embed code is served from cache
// so a reload does not mint a new viewer session.
func (s *Server) EventPageHandler() http.HandlerFunc {
	eventTmpl, err := ParseTemplate("event.html")
	if err != nil {
		log.Err(err).Msg("Failed to parse event template")
	}

	return func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFromContext(r.Context())
		tok := token(sess)
		eventID := r.PathValue("eventID")
		retry := r.URL.Query().Get("retry") == "1"

		event, eventErr := s.queries.Event(r.Context(), tok, eventID)
		if retry && eventErr != nil {
			event, eventErr = s.queries.RefreshEvent(r.Context(), tok, eventID)
		}
		if eventErr != nil {
			log.Warn().Err(eventErr).Str("event_id", eventID).Msg("Failed to load event")
		}

		var embedURL string
		var embedErr error
		if retry {
			embedURL, embedErr = s.queries.RefreshEmbedCode(r.Context(), tok, eventID, sess.UserID)
		} else {
			embedURL, embedErr = s.queries.EmbedCode(r.Context(), tok, eventID, sess.UserID)
		}
		if embedErr != nil {
			log.Warn().Err(embedErr).Str("event_id", eventID).Msg("Failed to load embed code")
		}

		eventName := "Event Name Unavailable"
		if event != nil && event.Name != "" {
			eventName = event.Name
		}

		data := EventPageData{
			Nav:       s.navData(r),
			EventID:   eventID,
			EventName: eventName,
			EmbedURL:  embedURL,
			Error:     embedErr != nil,
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := eventTmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render event template")
			http.Error(w, "Failed to render event page", http.StatusInternalServerError)
		}
	}
}
