package httpkit

import "chargemap/internal/platform/net/middleware"

// Protected groups routes under bearer auth
// a nil port rejects every request in the group
func Protected(r Router, p middleware.AuthPort, fn func(Router)) {
	r.Group(func(gr Router) {
		gr.Use(Auth(p))
		fn(gr)
	})
}
