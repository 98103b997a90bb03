// Package swaggerkit serves the OpenAPI document and the swagger UI
package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"

	"chargemap/internal/modkit/httpkit"
	"chargemap/internal/platform/config"

	docs "chargemap/internal/services/api/docs"
)

// SpecMutator lets modules tweak the parsed swagger spec before it is served
type SpecMutator func(map[string]any)

// mutators is the in process registry for spec mutators
var mutators []SpecMutator

// docReader is a seam so tests can inject invalid JSON without patching swagger
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

// Register adds a spec mutator for swagger JSON
// call this from module init so it is wired automatically
func Register(m SpecMutator) {
	if m != nil {
		mutators = append(mutators, m)
	}
}

// serveDocJSON serves swagger JSON and lets modules adjust details
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := docReader()

		var spec map[string]any
		if err := json.Unmarshal([]byte(raw), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		// OAS3 base url lives in servers, not BasePath
		ensureServers(spec, httpkit.APIPrefix(httpkit.APIVersion))

		// optional global tweaks go here
		cfg := config.New().Prefix("CORE_API_")
		if v := cfg.MayString("DOCS_TITLE_SUFFIX", ""); v != "" {
			if info, ok := spec["info"].(map[string]any); ok {
				if title, ok := info["title"].(string); ok {
					info["title"] = title + " " + v
				}
			}
		}

		ensureErrorResponseDefinition(spec)
		ensureBearerScheme(spec)
		addDefaultError(spec)
		addDefaultBadRequest(spec)

		for _, m := range mutators {
			m(spec)
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// ensureServers makes sure the document is OAS3 and has a servers array
// swagger http ui can't support 3.1 at the moment, so downconvert if needed
func ensureServers(spec map[string]any, url string) {
	// if it's swagger 2, lift to oas3
	if _, hasSwagger := spec["swagger"]; hasSwagger {
		spec["openapi"] = "3.0.3"
		delete(spec, "swagger")
	}

	// if it's already oas3, downsample 3.1 -> 3.0.3
	if v, ok := spec["openapi"].(string); ok {
		if strings.HasPrefix(v, "3.1") {
			spec["openapi"] = "3.0.3"
		}
	} else {
		// no version set at all: pick a sane default
		spec["openapi"] = "3.0.3"
	}

	// ensure servers
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{
			map[string]any{"url": url},
		}
	}
}

// ensureErrorResponseDefinition creates the error envelope model if missing
// the properties follow ErrorResponse so the doc does not drift from the wire
func ensureErrorResponseDefinition(spec map[string]any) {
	schemas := componentMap(spec, "schemas")
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"reason":      map[string]any{"type": "string"},
			"error":       map[string]any{"type": "string"},
			"field":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

// ensureBearerScheme declares the BearerAuth scheme write routes reference
func ensureBearerScheme(spec map[string]any) {
	schemes := componentMap(spec, "securitySchemes")
	if _, ok := schemes["BearerAuth"]; ok {
		return
	}
	schemes["BearerAuth"] = map[string]any{
		"type":         "http",
		"scheme":       "bearer",
		"bearerFormat": "JWT",
	}
}

func componentMap(spec map[string]any, key string) map[string]any {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	m, ok := comps[key].(map[string]any)
	if !ok {
		m = map[string]any{}
		comps[key] = m
	}
	return m
}

// errorResponse is a response object over ErrorResponse with one example
func errorResponse(description string, example map[string]any) map[string]any {
	example["request_id"] = "579f33bf50b1/abc-000001"
	return map[string]any{
		"description": description,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": example,
			},
		},
	}
}

// eachOperation calls fn with every operation object and its responses map
func eachOperation(spec map[string]any, fn func(op, responses map[string]any)) {
	paths, _ := spec["paths"].(map[string]any)
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				// path level parameters and the like
				continue
			}
			responses, ok := op["responses"].(map[string]any)
			if !ok {
				responses = map[string]any{}
				op["responses"] = responses
			}
			fn(op, responses)
		}
	}
}

// addDefaultError gives every operation a 500 unless it documents one
func addDefaultError(spec map[string]any) {
	resp := errorResponse("Internal Server Error", map[string]any{
		"status_code": 500,
		"status":      "Internal Server Error",
		"code":        0,
		"reason":      "unknown",
		"error":       "internal error",
	})
	eachOperation(spec, func(_, responses map[string]any) {
		if _, ok := responses["500"]; !ok {
			responses["500"] = resp
		}
	})
}

// addDefaultBadRequest gives a 400 to operations that take input, shaped like the binder output
func addDefaultBadRequest(spec map[string]any) {
	resp := errorResponse("Bad Request", map[string]any{
		"status_code": 400,
		"status":      "Bad Request",
		"code":        7,
		"reason":      "validation_error",
		"error":       "\"99999\" is not a valid postal code",
		"field":       "postal_code",
	})
	eachOperation(spec, func(op, responses map[string]any) {
		_, hasParams := op["parameters"]
		_, hasBody := op["requestBody"]
		if !hasParams && !hasBody {
			return
		}
		if _, ok := responses["400"]; !ok {
			responses["400"] = resp
		}
	})
}
