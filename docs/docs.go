// Package docs holds the OpenAPI 2.0 description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "tags": ["health"],
                "summary": "Database readiness",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "healthy"},
                    "503": {"description": "dependency unavailable", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "tags": ["health"],
                "summary": "Liveness",
                "responses": {"200": {"description": "alive"}}
            }
        },
        "/v1/contents": {
            "get": {
                "tags": ["contents"],
                "summary": "List contents in insertion order",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "contents", "schema": {"type": "array", "items": {"$ref": "#/definitions/Content"}}}
                }
            },
            "post": {
                "tags": ["contents"],
                "summary": "Store a JSON document",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "document", "required": true, "schema": {"type": "object"}}],
                "responses": {
                    "200": {"description": "created", "schema": {"$ref": "#/definitions/CreatedResource"}},
                    "400": {"description": "malformed JSON", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/v1/contents/random": {
            "get": {
                "tags": ["contents"],
                "summary": "Generate a random document without storing it",
                "produces": ["application/json"],
                "parameters": [{"in": "query", "name": "size", "type": "string", "default": "1KB", "description": "<n>KB or <n>MB, e.g. 4KB"}],
                "responses": {
                    "200": {"description": "document", "schema": {"$ref": "#/definitions/RandomDocument"}},
                    "400": {"description": "invalid size", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/v1/contents/create/random": {
            "get": {
                "tags": ["contents"],
                "summary": "Generate and store a random document",
                "produces": ["application/json"],
                "parameters": [{"in": "query", "name": "size", "type": "string", "default": "1KB"}],
                "responses": {
                    "200": {"description": "created", "schema": {"$ref": "#/definitions/CreatedResource"}},
                    "400": {"description": "invalid size", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/v1/contents/{id}": {
            "get": {
                "tags": ["contents"],
                "summary": "Fetch a stored document verbatim",
                "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "document, empty when stored without body"},
                    "404": {"description": "not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "put": {
                "tags": ["contents"],
                "summary": "Replace a document",
                "consumes": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "required": true},
                    {"in": "body", "name": "document", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "204": {"description": "updated"},
                    "400": {"description": "malformed JSON", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "delete": {
                "tags": ["contents"],
                "summary": "Delete a document",
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {
                    "204": {"description": "deleted"},
                    "404": {"description": "not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/v1/contents/{id}/export": {
            "get": {
                "tags": ["contents"],
                "summary": "Copy a document to object storage and return a presigned link",
                "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "exported", "schema": {"$ref": "#/definitions/ExportResult"}},
                    "404": {"description": "not found", "schema": {"$ref": "#/definitions/Error"}},
                    "503": {"description": "export not configured", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/v1/transfer": {
            "post": {
                "tags": ["transfers"],
                "summary": "Accept a transfer request and resolve its asset",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/TransferRequest"}}],
                "responses": {
                    "200": {"description": "accepted", "schema": {"type": "object", "properties": {"id": {"type": "string"}}}},
                    "400": {"description": "not created", "schema": {"$ref": "#/definitions/Error"}},
                    "409": {"description": "id already used", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/v1/transfers": {
            "get": {
                "tags": ["transfers"],
                "summary": "List transfers in insertion order",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "transfers", "schema": {"type": "array", "items": {"$ref": "#/definitions/Transfer"}}}
                }
            }
        },
        "/v1/transfers/{id}": {
            "get": {
                "tags": ["transfers"],
                "summary": "Fetch the resolved asset",
                "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "asset", "schema": {"$ref": "#/definitions/Asset"}},
                    "404": {"description": "not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "delete": {
                "tags": ["transfers"],
                "summary": "Delete a transfer",
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {
                    "204": {"description": "deleted"},
                    "404": {"description": "not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/v1/transfers/{id}/refresh": {
            "post": {
                "tags": ["transfers"],
                "summary": "Resolve the asset again from the stored request",
                "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "asset", "schema": {"$ref": "#/definitions/Asset"}},
                    "400": {"description": "asset unresolved", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/v1/transfers/{id}/contents": {
            "get": {
                "tags": ["transfers"],
                "summary": "Fetch the transfer contents",
                "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "contents", "schema": {"$ref": "#/definitions/Asset"}},
                    "404": {"description": "not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "put": {
                "tags": ["transfers"],
                "summary": "Store the transfer contents",
                "consumes": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "required": true},
                    {"in": "body", "name": "contents", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "204": {"description": "updated"},
                    "400": {"description": "malformed JSON", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        }
    },
    "definitions": {
        "Asset": {
            "type": "object",
            "properties": {"asset": {}}
        },
        "Content": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "data": {},
                "createdAt": {"type": "string", "format": "date-time"},
                "updatedAt": {"type": "string", "format": "date-time"}
            }
        },
        "CreatedResource": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "Error": {
            "type": "object",
            "properties": {
                "request_id": {"type": "string"},
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string"},
                        "message": {"type": "string"}
                    }
                }
            }
        },
        "ExportResult": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "url": {"type": "string"},
                "expiresAt": {"type": "string", "format": "date-time"}
            }
        },
        "RandomDocument": {
            "type": "object",
            "properties": {
                "userId": {"type": "integer"},
                "title": {"type": "string"},
                "text": {"type": "string"}
            }
        },
        "Transfer": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "document": {},
                "asset": {},
                "contents": {},
                "createdAt": {"type": "string", "format": "date-time"},
                "updatedAt": {"type": "string", "format": "date-time"}
            }
        },
        "TransferRequest": {
            "type": "object",
            "required": ["endpoint"],
            "properties": {
                "id": {"type": "string"},
                "endpoint": {"type": "string"},
                "authKey": {"type": "string"},
                "authCode": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Backend Service API",
	Description:      "Keyed JSON contents, random documents and asset transfers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
