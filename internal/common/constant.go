// Package common contains constants and helpers shared by the client and the
// development backend.
package common

const (
	// AuthorizationHeader carries the session token on authenticated requests.
	AuthorizationHeader = "Authorization"

	// BearerPrefix precedes the raw token inside AuthorizationHeader.
	BearerPrefix = "Bearer "

	// RequestIDHeader correlates client log lines with backend log lines.
	RequestIDHeader = "X-Request-ID"
)

// BearerValue formats token for the Authorization header.
func BearerValue(token string) string {
	return BearerPrefix + token
}
