package constants

// Environment variables
const (
	PORT = "PORT"
)

const DEFAULT_PORT = 3000

// Routes
const (
	ROUTE_HOME   = "/"
	ROUTE_HEALTH = "/health"
)

// Response payloads. The rocket must stay a literal UTF-8 sequence.
const (
	HOME_PAGE_HTML   = "<h1>🚀 My AWS DevOps Web App</h1>"
	HEALTH_STATUS_OK = "healthy"
)

const (
	CONTENT_TYPE_HTML = "text/html; charset=utf-8"
	CONTENT_TYPE_JSON = "application/json; charset=utf-8"
)
