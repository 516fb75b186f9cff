package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "Solar Hijri (Jalali) calendar conversion and formatting API",
        "title": "Shamsi API",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "schemes": {{ marshal .Schemes }},
    "paths": {
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "Server is healthy"}}
            }
        },
        "/api/v1/format": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Format a timestamp",
                "description": "Renders a Unix timestamp as a Jalali date using single-character pattern codes. Missing values fall back to the configured defaults.",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "query", "name": "layout", "type": "string", "example": "l j F Y"},
                    {"in": "query", "name": "ts", "type": "string", "description": "Unix seconds, Latin or Persian digits"},
                    {"in": "query", "name": "zone", "type": "string", "example": "Asia/Tehran"},
                    {"in": "query", "name": "digits", "type": "string", "enum": ["fa", "en"]}
                ],
                "responses": {
                    "200": {"description": "Formatted string", "schema": {"$ref": "#/definitions/FormatResponse"}},
                    "400": {"description": "Unknown zone, digits or malformed timestamp"}
                }
            }
        },
        "/api/v1/convert/to-jalali": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Gregorian to Jalali",
                "parameters": [
                    {"in": "query", "name": "year", "type": "integer", "required": true},
                    {"in": "query", "name": "month", "type": "integer", "required": true},
                    {"in": "query", "name": "day", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "Jalali date"},
                    "400": {"description": "Invalid Gregorian date"}
                }
            }
        },
        "/api/v1/convert/to-gregorian": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Jalali to Gregorian",
                "parameters": [
                    {"in": "query", "name": "year", "type": "integer", "required": true},
                    {"in": "query", "name": "month", "type": "integer", "required": true},
                    {"in": "query", "name": "day", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "Gregorian date"},
                    "400": {"description": "Invalid Jalali date"}
                }
            }
        },
        "/api/v1/validate": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Check a Jalali date",
                "parameters": [
                    {"in": "query", "name": "year", "type": "integer"},
                    {"in": "query", "name": "month", "type": "integer"},
                    {"in": "query", "name": "day", "type": "integer"}
                ],
                "responses": {"200": {"description": "Validity and leap flag"}}
            }
        },
        "/api/v1/transliterate": {
            "post": {
                "tags": ["Digits"],
                "summary": "Convert digits between Latin and Persian",
                "consumes": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "text": {"type": "string", "example": "1403/01/01"},
                                "to": {"type": "string", "example": "fa"}
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {"description": "Transliterated text"},
                    "400": {"description": "Unknown target style"}
                }
            }
        },
        "/api/v1/date": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Structured Jalali breakdown of a timestamp",
                "parameters": [
                    {"in": "query", "name": "ts", "type": "string"},
                    {"in": "query", "name": "zone", "type": "string"},
                    {"in": "query", "name": "digits", "type": "string", "enum": ["fa", "en"]}
                ],
                "responses": {"200": {"description": "Date record"}}
            }
        },
        "/api/v1/mktime": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Jalali wall-clock time to Unix timestamp",
                "parameters": [
                    {"in": "query", "name": "year", "type": "integer", "required": true},
                    {"in": "query", "name": "month", "type": "integer", "required": true},
                    {"in": "query", "name": "day", "type": "integer", "required": true},
                    {"in": "query", "name": "hour", "type": "integer"},
                    {"in": "query", "name": "minute", "type": "integer"},
                    {"in": "query", "name": "second", "type": "integer"},
                    {"in": "query", "name": "zone", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Unix timestamp"},
                    "400": {"description": "Invalid Jalali date or zone"}
                }
            }
        }
    },
    "definitions": {
        "FormatResponse": {
            "type": "object",
            "properties": {
                "result": {"type": "string", "example": "۱۴۰۳/۰۱/۰۱"},
                "timestamp": {"type": "integer", "example": 1710892800},
                "zone": {"type": "string", "example": "Asia/Tehran"},
                "digits": {"type": "string", "example": "fa"},
                "cached": {"type": "boolean"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Shamsi API",
	Description:      "Solar Hijri (Jalali) calendar conversion and formatting API",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
