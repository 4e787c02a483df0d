package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RequestParamZone = "zone"
	RequestParamAt   = "at"
)

const (
	DefaultTimezone = "Europe/Rome"
	TimezoneUTC     = "UTC"
	TimezoneLocal   = "Local"
)

const (
	DateFormat = time.RFC3339
)

const (
	LayoutRFC3339  = "rfc3339"
	LayoutRFC1123  = "rfc1123"
	LayoutDate     = "date"
	LayoutDateTime = "datetime"
	LayoutKitchen  = "kitchen"
)

// Layouts maps the layout names accepted over the wire to Go reference layouts.
var Layouts = map[string]string{
	LayoutRFC3339:  time.RFC3339,
	LayoutRFC1123:  time.RFC1123Z,
	LayoutDate:     time.DateOnly,
	LayoutDateTime: time.DateTime,
	LayoutKitchen:  time.Kitchen,
}

const (
	OtelServiceScopeName = "service"
	OtelHandlerScopeName = "handler"

	OtelZoneAttributeKey   = "time.zone"
	OtelLayoutAttributeKey = "time.layout"
)

const (
	RequestHeaderUserAgent   = "User-Agent"
	RequestHeaderContentType = "Content-Type"
	RequestHeaderRequestID   = "X-Request-ID"
	ResponseHeaderTimezone   = "X-Timezone"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy       = "SERVER UNHEALTHY"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
