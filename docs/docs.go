// Package docs registers the swagger document served under /swagger/*.
// Keep it in step with the handler annotations when routes change.
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
        "/rollouts": {
            "get": {
                "description": "Returns a mapping from key to stored value. Values that are not valid JSON are reported as \"Invalid JSON\"; requested keys that do not exist as null.",
                "produces": ["application/json"],
                "tags": ["rollouts"],
                "summary": "List rollout records",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Comma separated keys; all keys when omitted",
                        "name": "keys",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}}
                }
            },
            "post": {
                "description": "Validates that value carries rollout and comment, overwrites the key and returns the value read back from the store.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["rollouts"],
                "summary": "Store a rollout record",
                "parameters": [
                    {
                        "description": "Rollout record",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.RolloutWriteRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.Response"}}
                }
            }
        },
        "/whitelist": {
            "get": {
                "produces": ["application/json"],
                "tags": ["whitelist"],
                "summary": "List whitelist entries",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Comma separated keys; all keys when omitted",
                        "name": "keys",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}}
                }
            },
            "post": {
                "description": "Without a key a new entry is stored under a generated key; with a key that entry is overwritten. Fields may be sent at the top level or nested under value. At least one of ipv4 and ipv6 is required.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["whitelist"],
                "summary": "Create or update a whitelist entry",
                "parameters": [
                    {
                        "description": "Whitelist entry",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.WhitelistWriteRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.Response"}}
                }
            },
            "delete": {
                "description": "Deletes the entry unconditionally; deleting a missing key succeeds.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["whitelist"],
                "summary": "Delete a whitelist entry",
                "parameters": [
                    {
                        "description": "Key to delete",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.WhitelistDeleteRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.Response"}}
                }
            }
        }
    },
    "definitions": {
        "models.Response": {
            "type": "object",
            "properties": {
                "message": {},
                "status": {"type": "integer"}
            }
        },
        "models.RolloutWriteRequest": {
            "type": "object",
            "properties": {
                "key": {"type": "string"},
                "value": {"type": "object"}
            }
        },
        "models.WhitelistFields": {
            "type": "object",
            "properties": {
                "comment": {"type": "string"},
                "ipv4": {"type": "string"},
                "ipv6": {"type": "string"},
                "key": {"type": "string"}
            }
        },
        "models.WhitelistWriteRequest": {
            "type": "object",
            "properties": {
                "comment": {"type": "string"},
                "ipv4": {"type": "string"},
                "ipv6": {"type": "string"},
                "key": {"type": "string"},
                "value": {"$ref": "#/definitions/models.WhitelistFields"}
            }
        },
        "models.WhitelistDeleteRequest": {
            "type": "object",
            "properties": {
                "key": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/dev/player_rollouts",
	Schemes:          []string{},
	Title:            "Rollout Config API",
	Description:      "Feature-rollout and IP whitelist records over a key-value store.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
