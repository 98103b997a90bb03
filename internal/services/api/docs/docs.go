// Package docs holds the OpenAPI document served under /api/docs
//
// The document is kept by hand next to the handler annotations; every mounted
// route needs a path entry here. swaggerkit adds servers, the error schema and
// default error responses when serving it.
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
  "openapi": "3.0.3",
  "info": {
    "title": "{{.Title}}",
    "description": "{{.Description}}",
    "version": "{{.Version}}"
  },
  "paths": {
    "/stations": {
      "get": {
        "tags": ["Stations"],
        "summary": "Search charging stations by postal code",
        "parameters": [
          {"name": "postal_code", "in": "query", "required": true, "description": "Berlin postal code", "schema": {"type": "string", "example": "10115"}}
        ],
        "responses": {
          "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.SearchResponse"}}}}
        }
      }
    },
    "/stations/{stationID}": {
      "get": {
        "tags": ["Stations"],
        "summary": "Get a charging station",
        "parameters": [{"$ref": "#/components/parameters/stationID"}],
        "responses": {
          "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.Station"}}}},
          "404": {"$ref": "#/components/responses/NotFound"}
        }
      }
    },
    "/stations/{stationID}/availability/toggle": {
      "post": {
        "tags": ["Stations"],
        "summary": "Toggle station availability",
        "security": [{"BearerAuth": []}],
        "parameters": [{"$ref": "#/components/parameters/stationID"}],
        "responses": {
          "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.ToggleResponse"}}}},
          "401": {"$ref": "#/components/responses/Unauthenticated"},
          "404": {"$ref": "#/components/responses/NotFound"}
        }
      }
    },
    "/stations/{stationID}/ratings": {
      "get": {
        "tags": ["Ratings"],
        "summary": "List ratings of a station",
        "parameters": [{"$ref": "#/components/parameters/stationID"}],
        "responses": {
          "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.ListResponse"}}}}
        }
      },
      "post": {
        "tags": ["Ratings"],
        "summary": "Rate a station",
        "security": [{"BearerAuth": []}],
        "parameters": [{"$ref": "#/components/parameters/stationID"}],
        "requestBody": {
          "required": true,
          "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.CreateRequest"}}}
        },
        "responses": {
          "201": {"description": "created", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.RatingCreated"}}}},
          "401": {"$ref": "#/components/responses/Unauthenticated"},
          "404": {"$ref": "#/components/responses/NotFound"},
          "409": {"description": "already rated", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
        }
      }
    },
    "/ratings/{ratingID}": {
      "get": {
        "tags": ["Ratings"],
        "summary": "Get a rating",
        "parameters": [{"$ref": "#/components/parameters/ratingID"}],
        "responses": {
          "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.Record"}}}},
          "404": {"$ref": "#/components/responses/NotFound"}
        }
      },
      "patch": {
        "tags": ["Ratings"],
        "summary": "Update a rating",
        "description": "Only the owner may update a rating; omitted fields keep their value.",
        "security": [{"BearerAuth": []}],
        "parameters": [{"$ref": "#/components/parameters/ratingID"}],
        "requestBody": {
          "required": true,
          "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.Patch"}}}
        },
        "responses": {
          "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.Record"}}}},
          "401": {"$ref": "#/components/responses/Unauthenticated"},
          "403": {"$ref": "#/components/responses/Forbidden"},
          "404": {"$ref": "#/components/responses/NotFound"}
        }
      },
      "delete": {
        "tags": ["Ratings"],
        "summary": "Delete a rating",
        "security": [{"BearerAuth": []}],
        "parameters": [{"$ref": "#/components/parameters/ratingID"}],
        "responses": {
          "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.DeleteResponse"}}}},
          "401": {"$ref": "#/components/responses/Unauthenticated"},
          "403": {"$ref": "#/components/responses/Forbidden"},
          "404": {"$ref": "#/components/responses/NotFound"}
        }
      }
    },
    "/meta/health": {
      "get": {
        "tags": ["Meta"],
        "summary": "Health check",
        "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/http.HealthResponse"}}}}}
      }
    },
    "/meta/ready": {
      "get": {
        "tags": ["Meta"],
        "summary": "Readiness probe with dependency checks",
        "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/http.ReadyResponse"}}}}}
      }
    },
    "/meta/version": {
      "get": {
        "tags": ["Meta"],
        "summary": "Build and version info",
        "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/version.BuildInfo"}}}}}
      }
    },
    "/meta/service": {
      "get": {
        "tags": ["Meta"],
        "summary": "Service info and uptime",
        "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/http.ServiceResponse"}}}}}
      }
    }
  },
  "components": {
    "parameters": {
      "stationID": {"name": "stationID", "in": "path", "required": true, "description": "Station id", "schema": {"type": "string"}},
      "ratingID": {"name": "ratingID", "in": "path", "required": true, "description": "Rating id", "schema": {"type": "string"}}
    },
    "responses": {
      "NotFound": {"description": "not found", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}},
      "Unauthenticated": {"description": "unauthenticated", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}},
      "Forbidden": {"description": "not the owner", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
    },
    "schemas": {
      "domain.Station": {
        "type": "object",
        "properties": {
          "id": {"type": "string", "example": "66f1c0ffee0000000000beef"},
          "postal_code": {"type": "string", "example": "10115"},
          "availability_status": {"type": "boolean", "example": true},
          "location": {"type": "string", "example": "52.5321, 13.3849"},
          "name": {"type": "string", "example": "Stromnetz Berlin - Invalidenstrasse 50"},
          "power_kw": {"type": "number", "example": 22},
          "description": {"type": "string", "example": "Stromnetz Berlin, Invalidenstrasse 50, Berlin"}
        }
      },
      "domain.SearchResponse": {
        "type": "object",
        "properties": {
          "stations": {"type": "array", "items": {"$ref": "#/components/schemas/domain.Station"}},
          "stations_found": {"type": "integer", "example": 3},
          "timestamp": {"type": "string", "format": "date-time"}
        }
      },
      "domain.ToggleResponse": {
        "type": "object",
        "properties": {
          "station_id": {"type": "string"},
          "availability_status": {"type": "boolean", "example": false}
        }
      },
      "domain.CreateRequest": {
        "type": "object",
        "required": ["rating_value"],
        "properties": {
          "rating_value": {"type": "integer", "minimum": 1, "maximum": 5, "example": 4},
          "comment": {"type": "string", "maxLength": 500, "example": "fast and free"}
        }
      },
      "domain.Patch": {
        "type": "object",
        "properties": {
          "rating_value": {"type": "integer", "minimum": 1, "maximum": 5},
          "comment": {"type": "string", "maxLength": 500}
        }
      },
      "domain.Record": {
        "type": "object",
        "properties": {
          "id": {"type": "string"},
          "station_id": {"type": "string"},
          "user_id": {"type": "string"},
          "username": {"type": "string"},
          "rating_value": {"type": "integer", "example": 4},
          "comment": {"type": "string"},
          "timestamp": {"type": "string", "format": "date-time"},
          "updated_at": {"type": "string", "format": "date-time"}
        }
      },
      "domain.RatingCreated": {
        "type": "object",
        "properties": {
          "id": {"type": "string"},
          "station_id": {"type": "string"},
          "user_id": {"type": "string"},
          "username": {"type": "string"},
          "rating_value": {"type": "integer", "example": 4},
          "comment": {"type": "string"},
          "timestamp": {"type": "string", "format": "date-time"}
        }
      },
      "domain.ListResponse": {
        "type": "object",
        "properties": {
          "ratings": {"type": "array", "items": {"$ref": "#/components/schemas/domain.Record"}},
          "count": {"type": "integer"}
        }
      },
      "domain.DeleteResponse": {
        "type": "object",
        "properties": {
          "id": {"type": "string"},
          "deleted": {"type": "boolean", "example": true}
        }
      },
      "http.HealthResponse": {
        "type": "object",
        "properties": {
          "ok": {"type": "boolean"},
          "service": {"type": "string", "example": "chargemap-api"},
          "started": {"type": "string", "format": "date-time"},
          "now": {"type": "string", "format": "date-time"}
        }
      },
      "http.ReadyCheck": {
        "type": "object",
        "properties": {
          "name": {"type": "string", "example": "pg"},
          "status": {"type": "string", "example": "ok"},
          "error": {"type": "string"}
        }
      },
      "http.ReadyResponse": {
        "type": "object",
        "properties": {
          "status": {"type": "string", "example": "ok"},
          "checks": {"type": "array", "items": {"$ref": "#/components/schemas/http.ReadyCheck"}},
          "now": {"type": "string", "format": "date-time"}
        }
      },
      "http.ServiceResponse": {
        "type": "object",
        "properties": {
          "name": {"type": "string", "example": "chargemap-api"},
          "started": {"type": "string", "format": "date-time"},
          "uptime": {"type": "integer", "example": 300}
        }
      },
      "version.BuildInfo": {
        "type": "object",
        "properties": {
          "service": {"type": "string"},
          "version": {"type": "string"},
          "commit": {"type": "string"},
          "date": {"type": "string"}
        }
      }
    }
  }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Title:            "chargemap API",
	Description:      "Charging station search and ratings for Berlin postal codes",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
