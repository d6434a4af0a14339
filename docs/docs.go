// Package docs holds the Swagger spec served at /swagger.
// Regenerate with: swag init -g cmd/callsum/main.go -o docs
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
        "/generate-summary": {
            "post": {
                "description": "Transcribes the uploaded audio, writes a Markdown summary and suggests three titles",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["summaries"],
                "summary": "Summarize a recorded call",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Recorded call",
                        "name": "audio_file",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "OpenAI API key for this request only",
                        "name": "X-API-Key",
                        "in": "header"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Summary, titles and transcript",
                        "schema": {"$ref": "#/definitions/dto.GenerateSummaryResponse"}
                    },
                    "400": {
                        "description": "Missing or unreadable upload",
                        "schema": {"$ref": "#/definitions/errors.APIError"}
                    },
                    "500": {
                        "description": "Processing failed",
                        "schema": {"$ref": "#/definitions/errors.APIError"}
                    }
                }
            }
        }
    },
    "definitions": {
        "dto.GenerateSummaryResponse": {
            "type": "object",
            "properties": {
                "full_transcript": {"type": "string", "example": "Speaker A: Hello."},
                "suggested_titles": {
                    "type": "array",
                    "items": {"type": "string"},
                    "example": ["Budget Discussion Summary", "Budget Strategy Session", "Quarterly Budget Update"]
                },
                "summary": {"type": "string", "example": "## Meeting Summary\n\n...\n\n## Key Points\n\n- ..."}
            }
        },
        "errors.APIError": {
            "type": "object",
            "properties": {
                "details": {"type": "object", "additionalProperties": {"type": "string"}},
                "kind": {"type": "string"},
                "message": {"type": "string"},
                "request_id": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Call Summarizer API",
	Description:      "Transcribes recorded calls, summarizes them and suggests titles.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
