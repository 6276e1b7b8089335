package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	RouteIndex  = "/"
	RouteLogin  = "/login"
	RouteLogout = "/logout"

	RouteEvents = "/events"
	RouteEvent  = "/events/{eventID}"

	// Static Asset Routes (patterns)
	RouteStaticCSS = "/css/{file}"
)
