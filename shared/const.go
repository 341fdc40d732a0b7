package shared

const (
	RequestID = "request_id"

	HeaderRequestID          = "X-Request-ID"
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRateLimitReset     = "X-RateLimit-Reset"

	EndpointCreatePlayer      = "create_player"
	EndpointCreateGameSession = "create_game_session"
)
