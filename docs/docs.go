// Package docs registers the OpenAPI description served at /swagger.
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
        "/ping": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness check",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Message"}}}
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Store connectivity",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Store unreachable"}
                }
            }
        },
        "/user/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "User Registration",
                "parameters": [{"in": "body", "name": "register", "required": true, "schema": {"$ref": "#/definitions/domain.UserRegistration"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Message"}},
                    "400": {"description": "Email already exists", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "422": {"description": "Validation failed", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/user/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "User Login",
                "parameters": [{"in": "body", "name": "login", "required": true, "schema": {"$ref": "#/definitions/domain.UserLogin"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.LoginResponse"}},
                    "400": {"description": "Incorrect email or password", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/user/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/candidate/create": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["candidate"],
                "summary": "Create candidate",
                "parameters": [{"in": "body", "name": "candidate", "required": true, "schema": {"$ref": "#/definitions/domain.Candidate"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.CreateCandidateResponse"}},
                    "400": {"description": "Email already exists", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "422": {"description": "Validation failed", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/candidate/get/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["candidate"],
                "summary": "Get candidate",
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Candidate"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/candidate/update/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["candidate"],
                "summary": "Update candidate",
                "description": "Partial update; only provided fields change. Email and uuid are immutable.",
                "parameters": [
                    {"type": "string", "in": "path", "name": "id", "required": true},
                    {"in": "body", "name": "candidate", "required": true, "schema": {"$ref": "#/definitions/domain.CandidateUpdate"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Candidate"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "422": {"description": "Validation failed", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/candidate/delete/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["candidate"],
                "summary": "Delete candidate",
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Message"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/candidate/all-candidates": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["candidate"],
                "summary": "Search candidates",
                "parameters": [{"in": "body", "name": "filter", "schema": {"$ref": "#/definitions/domain.CandidateFilter"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Candidate"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/candidate/generate-csv-report": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["candidate"],
                "summary": "Export candidates",
                "parameters": [{"type": "string", "in": "query", "name": "format", "enum": ["csv", "xlsx"]}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.ReportResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Candidate": {
            "type": "object",
            "required": ["careerLevel", "degreeType", "email", "firstName", "gender", "jobMajor", "lastName", "nationality", "city", "skills"],
            "properties": {
                "uuid": {"type": "string"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "email": {"type": "string"},
                "careerLevel": {"type": "string", "enum": ["Junior", "Mid Level", "Senior"]},
                "jobMajor": {"type": "string"},
                "yearsOfExperience": {"type": "integer", "minimum": 0},
                "degreeType": {"type": "string", "enum": ["High School", "Bachelor", "Master"]},
                "skills": {"type": "array", "items": {"type": "string"}},
                "nationality": {"type": "string"},
                "city": {"type": "string"},
                "salary": {"type": "number"},
                "gender": {"type": "string", "enum": ["Male", "Female", "Not Specified"]}
            }
        },
        "domain.CandidateUpdate": {
            "type": "object",
            "properties": {
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "careerLevel": {"type": "string", "enum": ["Junior", "Mid Level", "Senior"]},
                "jobMajor": {"type": "string"},
                "yearsOfExperience": {"type": "integer", "minimum": 0},
                "degreeType": {"type": "string", "enum": ["High School", "Bachelor", "Master"]},
                "skills": {"type": "array", "items": {"type": "string"}},
                "nationality": {"type": "string"},
                "city": {"type": "string"},
                "salary": {"type": "number"},
                "gender": {"type": "string", "enum": ["Male", "Female", "Not Specified"]}
            }
        },
        "domain.CandidateFilter": {
            "type": "object",
            "properties": {
                "uuid": {"type": "string"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "email": {"type": "string"},
                "careerLevel": {"type": "string", "enum": ["Junior", "Mid Level", "Senior"]},
                "jobMajor": {"type": "string"},
                "yearsOfExperience": {"type": "integer"},
                "degreeType": {"type": "string", "enum": ["High School", "Bachelor", "Master"]},
                "skills": {"type": "string", "description": "matches candidates whose skills contain this value"},
                "nationality": {"type": "string"},
                "city": {"type": "string"},
                "salary": {"type": "number"},
                "gender": {"type": "string", "enum": ["Male", "Female", "Not Specified"]}
            }
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "uuid": {"type": "string"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "domain.UserRegistration": {
            "type": "object",
            "required": ["email", "firstName", "lastName", "password"],
            "properties": {
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "domain.UserLogin": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "response.Message": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "response.ErrorBody": {
            "type": "object",
            "properties": {
                "detail": {},
                "request_id": {"type": "string"}
            }
        },
        "v1.LoginResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "accessToken": {"type": "string"}
            }
        },
        "v1.CreateCandidateResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "uuid": {"type": "string"}
            }
        },
        "v1.ReportResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "file": {"type": "string"},
                "rows": {"type": "integer"},
                "locations": {"type": "array", "items": {"type": "string"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Candidate Registry API",
	Description:      "User accounts and candidate profiles with bearer token access control.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
