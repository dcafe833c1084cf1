// Package docs holds the Swagger document served by the fastapi demo server.
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
        "/fastapi/hello": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "fastapi"
                ],
                "summary": "Static greeting",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/fastapiserver.HelloResponse"
                        }
                    }
                }
            }
        },
        "/fastapi/user": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "fastapi"
                ],
                "summary": "Echo a validated user",
                "parameters": [
                    {
                        "description": "User to echo",
                        "name": "user",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/user.User"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/fastapiserver.CreateUserResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/fastapiserver.ValidationErrorResponse"
                        }
                    }
                }
            }
        },
        "/fastapi/user/{user_id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "fastapi"
                ],
                "summary": "Echo a user id",
                "parameters": [
                    {
                        "type": "string",
                        "description": "User id",
                        "name": "user_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/fastapiserver.UserDetailResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "fastapiserver.CreateUserResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "User created"
                },
                "user": {
                    "$ref": "#/definitions/user.User"
                }
            }
        },
        "fastapiserver.FieldError": {
            "type": "object",
            "properties": {
                "loc": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    },
                    "example": [
                        "body",
                        "email"
                    ]
                },
                "msg": {
                    "type": "string",
                    "example": "field required"
                },
                "type": {
                    "type": "string",
                    "example": "value_error.missing"
                }
            }
        },
        "fastapiserver.HelloResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "Hello from FastAPI!"
                }
            }
        },
        "fastapiserver.UserDetailResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "example": "42"
                },
                "message": {
                    "type": "string",
                    "example": "Get user detail"
                }
            }
        },
        "fastapiserver.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/fastapiserver.FieldError"
                    }
                }
            }
        },
        "user.User": {
            "type": "object",
            "required": [
                "email",
                "name"
            ],
            "properties": {
                "email": {
                    "type": "string",
                    "example": "a@x.com"
                },
                "name": {
                    "type": "string",
                    "example": "Ann"
                }
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
	Title:            "FastAPI",
	Description:      "Schema-checked demo server: hello, create-user and get-user-detail.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
