package httpkit

import (
	"net/http"

	pnet "chargemap/internal/platform/net"
)

// Principal is the authenticated caller type
type Principal = pnet.Principal

// Caller returns the principal the auth middleware stored, or an anonymous one
// management facades decide whether anonymous callers may proceed
func Caller(r *http.Request) Principal {
	p, _ := pnet.PrincipalFrom(r.Context())
	return p
}
