package httpkit

import (
	"net/http"
	"strings"
)

// APIVersion is the version every module mounts under
const APIVersion = "v1"

// APIPrefix returns the mount path for version, e.g. /api/v1
func APIPrefix(version string) string {
	return "/api/" + strings.Trim(version, "/")
}

// MountAPI scopes mount to APIPrefix(version) behind mw
//
//	httpkit.MountAPI(r, httpkit.APIVersion, httpkit.CommonStack(opts), func(api httpkit.Router) {
//	  stations.MountRoutes(api)
//	})
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(APIPrefix(version), func(api Router) {
		api.Use(mw...)
		mount(api)
	})
}

// MountAPIV1 mounts under /api/v1
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountAPI(r, APIVersion, mw, mount)
}
