// Package docs registers the OpenAPI document served under /swagger.
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
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {"description": "Login and optional secret", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.registerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.registerResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "List products",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.productResponse"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Add a product to the catalog",
                "parameters": [
                    {"description": "Product", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createProductRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.productResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/products/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Get a product by id",
                "parameters": [
                    {"type": "integer", "description": "Product id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.productResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "List categories with their products",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.categoryResponse"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Create a category",
                "parameters": [
                    {"description": "Category", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createCategoryRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.categoryResponse"}}
                }
            }
        },
        "/v1/categories/batch": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Create several categories at once",
                "parameters": [
                    {"description": "Category names, in id order", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createCategoriesRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.categoryResponse"}}}
                }
            }
        },
        "/v1/categories/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Find the first category with a name",
                "parameters": [
                    {"type": "string", "description": "Exact category name", "name": "name", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.categoryResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/categories/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Get a category by id",
                "parameters": [
                    {"type": "integer", "description": "Category id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.categoryResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/categories/assign": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Assign products to a category",
                "parameters": [
                    {"description": "Category selector and product ids", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.assignRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.categoryResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/cart": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Current basket",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.basketResponse"}}
                }
            }
        },
        "/v1/cart/items": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Add a product to the basket",
                "parameters": [
                    {"description": "Product id", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.addToCartRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.basketResponse"}}
                }
            }
        },
        "/v1/cart/total": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Order total for the current basket",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.totalResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.errorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "handler.registerRequest": {"type": "object", "required": ["login"], "properties": {"login": {"type": "string"}, "secret": {"type": "string", "description": "string or number; anything else falls back to the default secret"}}},
        "handler.loginRequest": {"type": "object", "required": ["login"], "properties": {"login": {"type": "string"}, "secret": {"type": "string", "description": "string or number; anything else falls back to the default secret"}}},
        "handler.userResponse": {"type": "object", "properties": {"login": {"type": "string"}, "basket_items": {"type": "integer"}}},
        "handler.registerResponse": {"type": "object", "properties": {"user": {"$ref": "#/definitions/handler.userResponse"}, "default_secret_applied": {"type": "boolean"}}},
        "handler.loginResponse": {"type": "object", "properties": {"token": {"type": "string"}, "user": {"$ref": "#/definitions/handler.userResponse"}}},
        "handler.createProductRequest": {"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}, "price": {"type": "number", "minimum": 0, "default": 1}, "rating": {"type": "number", "default": 1}, "category_id": {"type": "integer", "minimum": 0}}},
        "handler.productResponse": {"type": "object", "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "price": {"type": "number"}, "rating": {"type": "number"}, "category_id": {"type": "integer"}}},
        "handler.createCategoryRequest": {"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}},
        "handler.createCategoriesRequest": {"type": "object", "required": ["names"], "properties": {"names": {"type": "array", "items": {"type": "string"}}}},
        "handler.categoryResponse": {"type": "object", "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "products": {"type": "array", "items": {"$ref": "#/definitions/handler.productResponse"}}}},
        "handler.assignRequest": {"type": "object", "required": ["product_ids"], "properties": {"category_id": {"type": "integer"}, "category_name": {"type": "string"}, "product_ids": {"type": "array", "items": {"type": "integer"}}}},
        "handler.addToCartRequest": {"type": "object", "required": ["product_id"], "properties": {"product_id": {"type": "integer"}}},
        "handler.basketResponse": {"type": "object", "properties": {"items": {"type": "array", "items": {"$ref": "#/definitions/handler.productResponse"}}, "count": {"type": "integer"}, "total": {"type": "number"}}},
        "handler.totalResponse": {"type": "object", "properties": {"total": {"type": "number"}}}
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
	Title:            "Shop Catalog API",
	Description:      "In-memory shop catalog: products, categories, baskets and a single current user.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
