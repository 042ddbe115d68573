// Package api is the client's view of the remote backend.
//
// The Client interface is the transport-agnostic contract used by the
// services layer; HTTPClient implements it over HTTP+JSON:
//
//	POST /user/register   -> {"token": "..."}
//	POST /user/login      -> {"token": "..."}
//	GET  /user/profile    -> {"user": {...}}          (Authorization: Bearer <token>)
//	PUT  /user/profile    <- full profile object      (Authorization: Bearer <token>)
//
// # Error Handling
//
// Status codes are mapped to sentinel errors that callers match with
// errors.Is: ErrUnauthorized (401, 403), ErrConflict (409), ErrUnavailable
// (transport failures, 502, 503, 504) and ErrInvalidResponse (a 2xx body that
// cannot be decoded). Any other non-2xx status surfaces as *StatusError.
//
// Requests carry no client-side timeout; cancellation comes only from the
// caller's context.
package api
