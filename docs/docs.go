// Package docs registra en swag la doc OpenAPI del servicio. Sigue las
// anotaciones de cmd/api y de los handlers; se puede regenerar con
// `swag init -g cmd/api/main.go`.
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
        "/pets": {
            "post": {
                "description": "Crea una mascota para un usuario existente y la agrega a su lista de mascotas.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Crear mascota",
                "parameters": [
                    {
                        "description": "Mascota; id debe venir vacío",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/pets.petRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/pets.PetResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "404": {"description": "owner not found", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/pets/{petID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Obtener mascota",
                "parameters": [
                    {"type": "integer", "description": "ID de la mascota", "name": "petID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.PetResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            },
            "put": {
                "description": "Cambia el nombre y/o reasigna el dueño. El nuevo dueño debe existir.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Actualizar mascota",
                "parameters": [
                    {"type": "integer", "description": "ID de la mascota", "name": "petID", "in": "path", "required": true},
                    {
                        "description": "Nuevos datos",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/pets.petRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.PetResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "404": {"description": "pet or owner not found", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["pets"],
                "summary": "Borrar mascota",
                "parameters": [
                    {"type": "integer", "description": "ID de la mascota", "name": "petID", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/users": {
            "post": {
                "description": "Crea un usuario sin mascotas. id y pets no se aceptan en el body.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Crear usuario",
                "parameters": [
                    {
                        "description": "Usuario",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/users.createUserRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/users.userResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/users/{userID}": {
            "get": {
                "description": "Devuelve el usuario con sus mascotas.",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Obtener usuario",
                "parameters": [
                    {"type": "integer", "description": "ID del usuario", "name": "userID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/users.userResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            },
            "put": {
                "description": "Reemplaza name, email y age. La lista de mascotas no se modifica.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Actualizar usuario",
                "parameters": [
                    {"type": "integer", "description": "ID del usuario", "name": "userID", "in": "path", "required": true},
                    {
                        "description": "Nuevos datos",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/users.updateUserRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/users.userResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            },
            "delete": {
                "description": "Borra el usuario y, en cascada, todas sus mascotas.",
                "tags": ["users"],
                "summary": "Borrar usuario",
                "parameters": [
                    {"type": "integer", "description": "ID del usuario", "name": "userID", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "httpx.ErrorResponse": {
            "type": "object",
            "properties": {
                "dateTime": {"type": "string"},
                "detailedMessage": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "pets.PetResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "userId": {"type": "integer"}
            }
        },
        "pets.petRequest": {
            "type": "object",
            "required": ["name", "userId"],
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string", "maxLength": 50, "minLength": 3},
                "userId": {"type": "integer"}
            }
        },
        "users.createUserRequest": {
            "type": "object",
            "required": ["age", "email", "name"],
            "properties": {
                "age": {"type": "integer", "maximum": 100, "minimum": 0},
                "email": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string", "maxLength": 50, "minLength": 3}
            }
        },
        "users.updateUserRequest": {
            "type": "object",
            "required": ["age", "email", "name"],
            "properties": {
                "age": {"type": "integer", "maximum": 100, "minimum": 0},
                "email": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string", "maxLength": 50, "minLength": 3}
            }
        },
        "users.userResponse": {
            "type": "object",
            "properties": {
                "age": {"type": "integer"},
                "email": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "pets": {"type": "array", "items": {"$ref": "#/definitions/pets.PetResponse"}}
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
	Title:            "Pet Registry API",
	Description:      "CRUD in-memory de usuarios y sus mascotas.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
