package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Conference Deadline Tracker API",
        "description": "Tracks conference submission deadlines with tiered snapshot persistence (remote, local, built-in defaults).",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Bearer token from POST /auth/login"
        }
    },
    "tags": [
        {"name": "conferences", "description": "Tracked conference records"},
        {"name": "filters", "description": "List view configuration"},
        {"name": "data", "description": "Snapshot refresh, import, and export"},
        {"name": "auth", "description": "Owner login"}
    ],
    "paths": {
        "/conferences": {
            "get": {
                "tags": ["conferences"],
                "summary": "List tracked conferences under the active filters",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/APIResponse"}}
                }
            },
            "post": {
                "tags": ["conferences"],
                "summary": "Add a conference",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "conference", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ConferenceRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/APIResponse"}}
                }
            }
        },
        "/conferences/{conferenceID}": {
            "put": {
                "tags": ["conferences"],
                "summary": "Replace a conference in place",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "conferenceID", "in": "path", "required": true, "type": "string"},
                    {"name": "conference", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ConferenceRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIResponse"}}
                }
            },
            "delete": {
                "tags": ["conferences"],
                "summary": "Delete a conference",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "conferenceID", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIResponse"}}
                }
            }
        },
        "/filters": {
            "get": {
                "tags": ["filters"],
                "summary": "Get the active filter configuration",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/APIResponse"}}
                }
            },
            "put": {
                "tags": ["filters"],
                "summary": "Replace the filter configuration",
                "parameters": [
                    {"name": "filters", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FilterConfig"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "400": {"description": "Unknown sort key", "schema": {"$ref": "#/definitions/APIResponse"}}
                }
            }
        },
        "/data/refresh": {
            "post": {
                "tags": ["data"],
                "summary": "Re-run the tiered data load",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/APIResponse"}}
                }
            }
        },
        "/data": {
            "put": {
                "tags": ["data"],
                "summary": "Replace all data from a snapshot document",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "400": {"description": "Invalid document", "schema": {"$ref": "#/definitions/APIResponse"}}
                }
            }
        },
        "/data/export": {
            "get": {
                "tags": ["data"],
                "summary": "Download the data as a snapshot document",
                "responses": {
                    "200": {"description": "conferences.json attachment"}
                }
            }
        },
        "/data/export/pdf": {
            "get": {
                "tags": ["data"],
                "summary": "Download the current view as a PDF",
                "produces": ["application/pdf"],
                "responses": {
                    "200": {"description": "PDF attachment"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Exchange the owner passphrase for a bearer token",
                "parameters": [
                    {"name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "401": {"description": "Invalid passphrase", "schema": {"$ref": "#/definitions/APIResponse"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    },
    "definitions": {
        "ConferenceRequest": {
            "type": "object",
            "required": ["name", "location", "submissionDate", "notificationDate", "conferenceStartDate", "conferenceEndDate"],
            "properties": {
                "name": {"type": "string"},
                "location": {"type": "string"},
                "website": {"type": "string"},
                "category": {"type": "string", "enum": ["computer-science", "engineering", "medicine", "business", "social-sciences", "other"]},
                "submissionDate": {"type": "string", "format": "date"},
                "notificationDate": {"type": "string", "format": "date"},
                "conferenceStartDate": {"type": "string", "format": "date"},
                "conferenceEndDate": {"type": "string", "format": "date"},
                "status": {"type": "string", "enum": ["planned", "submitted", "accepted", "rejected", "attended"]},
                "notes": {"type": "string"}
            }
        },
        "FilterConfig": {
            "type": "object",
            "properties": {
                "search": {"type": "string"},
                "sortBy": {"type": "string", "enum": ["name", "location", "submissionDate", "conferenceStartDate"]},
                "showUpcoming": {"type": "boolean"},
                "showPast": {"type": "boolean"},
                "showActive": {"type": "boolean"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["passphrase"],
            "properties": {
                "passphrase": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "APIResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
