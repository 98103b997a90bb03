package httpkit

import (
	"net/http"

	phttp "chargemap/internal/platform/net/http"
)

// Get mounts a body-less handler under GET
func Get(r Router, path string, h func(*http.Request) (any, error)) { phttp.GetJSON(r, path, h) }

// Post mounts a body-less command handler under POST
func Post(r Router, path string, h func(*http.Request) (any, error)) { phttp.PostAction(r, path, h) }

// Delete mounts a body-less handler under DELETE
func Delete(r Router, path string, h func(*http.Request) (any, error)) { phttp.DeleteJSON(r, path, h) }

// PostJSON mounts a bound and validated JSON handler under POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.PostJSON(r, path, h)
}

// PatchJSON mounts a bound and validated JSON handler under PATCH
func PatchJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.PatchJSON(r, path, h)
}
