// Package docs registers the API description served at /swagger. Keep the paths in step with
// internal/routes when a route is added.
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
        "/auth/register": {"post": {"tags": ["auth"], "summary": "Register a new user", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}, "429": {"description": "Too Many Requests"}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Log in and receive an access token", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "429": {"description": "Too Many Requests"}}}},
        "/users": {"get": {"security": [{"TokenAuth": []}], "tags": ["users"], "summary": "List users", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}},
        "/users/stats": {"get": {"security": [{"TokenAuth": []}], "tags": ["users"], "summary": "Monthly registrations over the last year", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}},
        "/users/find/{id}": {"get": {"security": [{"TokenAuth": []}], "tags": ["users"], "summary": "Get a user", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/users/{id}": {
            "put": {"security": [{"TokenAuth": []}], "tags": ["users"], "summary": "Update a user", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}},
            "delete": {"security": [{"TokenAuth": []}], "tags": ["users"], "summary": "Delete a user", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}
        },
        "/carts": {
            "get": {"security": [{"TokenAuth": []}], "tags": ["carts"], "summary": "List carts", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}},
            "post": {"security": [{"TokenAuth": []}], "tags": ["carts"], "summary": "Create a cart", "responses": {"201": {"description": "Created"}, "401": {"description": "Unauthorized"}}}
        },
        "/carts/find/{userId}": {"get": {"security": [{"TokenAuth": []}], "tags": ["carts"], "summary": "Get a user's cart", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/carts/{id}": {
            "put": {"security": [{"TokenAuth": []}], "tags": ["carts"], "summary": "Replace a cart's products", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}},
            "delete": {"security": [{"TokenAuth": []}], "tags": ["carts"], "summary": "Delete a cart", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}
        },
        "/orders": {
            "get": {"security": [{"TokenAuth": []}], "tags": ["orders"], "summary": "List orders", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}},
            "post": {"security": [{"TokenAuth": []}], "tags": ["orders"], "summary": "Place an order", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/orders/income": {"get": {"security": [{"TokenAuth": []}], "tags": ["orders"], "summary": "Monthly income", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}},
        "/orders/find/{userId}": {"get": {"security": [{"TokenAuth": []}], "tags": ["orders"], "summary": "List a user's orders", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}},
        "/orders/{id}": {
            "put": {"security": [{"TokenAuth": []}], "tags": ["orders"], "summary": "Update an order", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}},
            "delete": {"security": [{"TokenAuth": []}], "tags": ["orders"], "summary": "Delete an order", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}
        },
        "/products": {
            "get": {"tags": ["products"], "summary": "List products", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"TokenAuth": []}], "tags": ["products"], "summary": "Create a product", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}
        },
        "/products/find/{id}": {"get": {"tags": ["products"], "summary": "Get a product", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/products/{id}": {
            "put": {"security": [{"TokenAuth": []}], "tags": ["products"], "summary": "Update a product", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}},
            "delete": {"security": [{"TokenAuth": []}], "tags": ["products"], "summary": "Delete a product", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}
        },
        "/products/{id}/image": {"post": {"security": [{"TokenAuth": []}], "tags": ["products"], "summary": "Upload a product image", "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}},
        "/search/products": {"get": {"tags": ["search"], "summary": "Full-text product search", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/search/users": {"get": {"security": [{"TokenAuth": []}], "tags": ["search"], "summary": "Search users by username or email prefix", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}}}}
    },
    "securityDefinitions": {
        "TokenAuth": {
            "description": "Type \"Bearer <token>\"",
            "type": "apiKey",
            "name": "token",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "Storefront API",
	Description:      "E-commerce REST API with token-based authorization",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
