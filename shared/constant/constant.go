package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyUserEmail contextKey = "user_email"
	ContextKeyUserRole  contextKey = "user_role"
	ContextKeyTokenID   contextKey = "token_id"
)

const (
	RoleAdmin = "admin"
	RoleGuest = "guest"
)

const (
	ReservationTypeRoom       = "room"
	ReservationTypeRestaurant = "restaurant"
	ReservationTypeEvent      = "event"
)

const (
	ReservationStatusActive     = "active"
	ReservationStatusExpired    = "expired"
	ReservationStatusCheckedOut = "checked_out"
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
	RequestParamSearch  = "q"
)

const (
	RequestParamID       = "id"
	RequestParamDigits   = "digits"
	RequestParamRoomID   = "room_id"
	RequestParamCheckIn  = "check_in"
	RequestParamCheckOut = "check_out"
)

const (
	DefaultValuePage  = 1
	DefaultValueLimit = 10
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
	EndOfDay    = "23:59"
)

const (
	OtelServiceScopeName = "service"
	OtelStoreScopeName   = "store"
	OtelHandlerScopeName = "handler"
	OtelS3ScopeName      = "s3"
	OtelKafkaScopeName   = "kafka"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
