// Package docs registra la especificación OpenAPI servida en /swagger.
// Se mantiene a mano alineada con las anotaciones de los handlers.
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
        "/animals": {
            "get": {"produces": ["application/json"], "tags": ["animals"], "summary": "Listar especies",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/animalResponse"}}}}},
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["animals"], "summary": "Crear especie",
                "parameters": [{"description": "Especie", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/createAnimalRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/animalResponse"}}, "400": {"description": "species exists"}}}
        },
        "/animals/{animalID}": {
            "get": {"produces": ["application/json"], "tags": ["animals"], "summary": "Obtener especie",
                "parameters": [{"type": "string", "name": "animalID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/animalResponse"}}, "404": {"description": "wrong id"}}},
            "delete": {"tags": ["animals"], "summary": "Borrar especie",
                "parameters": [{"type": "string", "name": "animalID", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "wrong id"}}}
        },
        "/users": {
            "get": {"produces": ["application/json"], "tags": ["users"], "summary": "Listar usuarios",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/userResponse"}}}}},
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["users"], "summary": "Crear usuario",
                "parameters": [{"description": "Datos del usuario", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/createUserRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/userResponse"}}, "400": {"description": "username exists"}}}
        },
        "/users/{userID}": {
            "get": {"produces": ["application/json"], "tags": ["users"], "summary": "Obtener usuario",
                "parameters": [{"type": "string", "name": "userID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/userResponse"}}, "404": {"description": "wrong id"}}},
            "delete": {"tags": ["users"], "summary": "Borrar usuario",
                "parameters": [{"type": "string", "name": "userID", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "wrong id"}}}
        },
        "/clients": {
            "get": {"produces": ["application/json"], "tags": ["clients"], "summary": "Listar clientes",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/clientResponse"}}}}},
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["clients"], "summary": "Crear cliente",
                "parameters": [{"description": "Datos del cliente", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/createClientRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/clientResponse"}}, "400": {"description": "name and surname should not be null"}}}
        },
        "/clients/{clientID}": {
            "get": {"produces": ["application/json"], "tags": ["clients"], "summary": "Obtener cliente",
                "parameters": [{"type": "string", "name": "clientID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/clientResponse"}}, "404": {"description": "wrong id"}}},
            "delete": {"tags": ["clients"], "summary": "Borrar cliente",
                "parameters": [{"type": "string", "name": "clientID", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "wrong id"}}}
        },
        "/pets": {
            "get": {"produces": ["application/json"], "tags": ["pets"], "summary": "Listar mascotas visibles",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/petResponse"}}}, "401": {"description": "unauthorized"}}},
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["pets"], "summary": "Registrar mascota",
                "parameters": [{"description": "Datos de la mascota", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/createPetRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/petResponse"}}, "400": {"description": "name cannot be null / wrong animal id / wrong client id"}, "404": {"description": "user don't have access to this pet"}}}
        },
        "/pets/{petID}": {
            "get": {"produces": ["application/json"], "tags": ["pets"], "summary": "Obtener mascota",
                "parameters": [{"type": "string", "name": "petID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/petResponse"}}, "404": {"description": "wrong id"}}},
            "delete": {"tags": ["pets"], "summary": "Borrar mascota",
                "parameters": [{"type": "string", "name": "petID", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "wrong id"}}}
        }
    },
    "definitions": {
        "createAnimalRequest": {"type": "object", "properties": {"species": {"type": "string"}}},
        "animalResponse": {"type": "object", "properties": {"id": {"type": "string"}, "species": {"type": "string"}, "created_at": {"type": "string"}}},
        "createUserRequest": {"type": "object", "properties": {"username": {"type": "string"}, "password": {"type": "string"}, "role": {"type": "string", "enum": ["ADMIN", "VET", "CLIENT"]}}},
        "userResponse": {"type": "object", "properties": {"id": {"type": "string"}, "username": {"type": "string"}, "role": {"type": "string"}, "created_at": {"type": "string"}}},
        "createClientRequest": {"type": "object", "properties": {"name": {"type": "string"}, "surname": {"type": "string"}, "username": {"type": "string"}}},
        "clientResponse": {"type": "object", "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "surname": {"type": "string"}, "user_id": {"type": "string"}, "created_at": {"type": "string"}}},
        "createPetRequest": {"type": "object", "properties": {"name": {"type": "string"}, "birth_date": {"type": "string", "example": "2020-05-01"}, "animal_id": {"type": "string"}, "client_id": {"type": "string"}}},
        "petResponse": {"type": "object", "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "birth_date": {"type": "string"}, "animal_id": {"type": "string"}, "client_id": {"type": "string"}, "created_at": {"type": "string"}}}
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Vet Clinic Records API",
	Description:      "Especies, usuarios, clientes y mascotas de la clínica. Un usuario con rol CLIENT solo ve las mascotas de su ficha de cliente.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
