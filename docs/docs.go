// Package docs holds the OpenAPI description built from the controller
// annotations in api/controllers and served under /api-docs.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "basePath": "{{.BasePath}}",
    "definitions": {
        "auth.LoginRequest": {
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            },
            "required": [
                "email",
                "password"
            ],
            "type": "object"
        },
        "auth.LoginResponse": {
            "properties": {
                "expires_in": {
                    "type": "integer"
                },
                "token": {
                    "type": "string"
                },
                "token_type": {
                    "type": "string"
                },
                "usuario": {
                    "$ref": "#/definitions/users.UserDTO"
                }
            },
            "type": "object"
        },
        "categories.CategoryDTO": {
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "nombre": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "categories.CategoryRequest": {
            "properties": {
                "nombre": {
                    "type": "string"
                }
            },
            "required": [
                "nombre"
            ],
            "type": "object"
        },
        "categories.DeleteResult": {
            "properties": {
                "cleanup_error": {
                    "type": "string"
                },
                "deleted": {
                    "$ref": "#/definitions/categories.CategoryDTO"
                },
                "productos_actualizados": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "models.Buyer": {
            "properties": {
                "direccion": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "nombre": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "products.DeleteResult": {
            "properties": {
                "deleted": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "products.ProductDTO": {
            "properties": {
                "categoria": {
                    "type": "string"
                },
                "codigo": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "descripcion": {
                    "type": "string"
                },
                "en_oferta": {
                    "type": "boolean"
                },
                "id": {
                    "type": "integer"
                },
                "imagen": {
                    "type": "string"
                },
                "nombre": {
                    "type": "string"
                },
                "precio": {
                    "type": "number"
                },
                "precio_oferta": {
                    "type": "number"
                },
                "stock": {
                    "type": "integer"
                },
                "stock_critico": {
                    "type": "integer"
                },
                "updated_at": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "products.ProductInput": {
            "properties": {
                "categoria": {
                    "type": "string"
                },
                "codigo": {
                    "type": "string"
                },
                "descripcion": {
                    "type": "string"
                },
                "en_oferta": {
                    "type": "boolean"
                },
                "imagen": {
                    "type": "string"
                },
                "nombre": {
                    "type": "string"
                },
                "precio": {
                    "type": "number"
                },
                "precio_oferta": {
                    "type": "number"
                },
                "stock": {
                    "type": "integer"
                },
                "stock_critico": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "receipts.CreateReceiptRequest": {
            "properties": {
                "comprador": {
                    "type": "object"
                },
                "fecha": {
                    "type": "string"
                },
                "productos": {
                    "items": {
                        "type": "object"
                    },
                    "type": "array"
                },
                "total": {
                    "type": "number"
                },
                "usuario_id": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "receipts.DeleteResult": {
            "properties": {
                "deleted": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "receipts.ReceiptDTO": {
            "properties": {
                "comprador": {
                    "$ref": "#/definitions/models.Buyer"
                },
                "created_at": {
                    "type": "string"
                },
                "fecha": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "numero_compra": {
                    "type": "integer"
                },
                "productos": {
                    "items": {
                        "type": "object"
                    },
                    "type": "array"
                },
                "total": {
                    "type": "number"
                },
                "usuario_id": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "types.ErrorBody": {
            "properties": {
                "code": {
                    "type": "string"
                },
                "details": {},
                "message": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "types.ErrorEnvelope": {
            "properties": {
                "error": {
                    "$ref": "#/definitions/types.ErrorBody"
                }
            },
            "type": "object"
        },
        "types.SuccessEnvelope": {
            "properties": {
                "data": {}
            },
            "type": "object"
        },
        "users.RegisterRequest": {
            "properties": {
                "apellidos": {
                    "type": "string"
                },
                "comuna": {
                    "type": "string"
                },
                "direccion": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "fecha_nacimiento": {
                    "type": "string"
                },
                "historial_compras": {
                    "items": {
                        "type": "object"
                    },
                    "type": "array"
                },
                "nombre": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "region": {
                    "type": "string"
                },
                "run": {
                    "type": "string"
                },
                "tipo_usuario": {
                    "type": "string"
                }
            },
            "required": [
                "email",
                "password"
            ],
            "type": "object"
        },
        "users.UserDTO": {
            "properties": {
                "apellidos": {
                    "type": "string"
                },
                "comuna": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "direccion": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "fecha_nacimiento": {
                    "type": "string"
                },
                "historial_compras": {
                    "items": {
                        "type": "object"
                    },
                    "type": "array"
                },
                "id": {
                    "type": "integer"
                },
                "nombre": {
                    "type": "string"
                },
                "region": {
                    "type": "string"
                },
                "run": {
                    "type": "string"
                },
                "tipo_usuario": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            },
            "type": "object"
        }
    },
    "host": "{{.Host}}",
    "info": {
        "contact": {},
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "paths": {
        "/boletas": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/types.SuccessEnvelope"
                                },
                                {
                                    "properties": {
                                        "data": {
                                            "items": {
                                                "$ref": "#/definitions/receipts.ReceiptDTO"
                                            },
                                            "type": "array"
                                        }
                                    },
                                    "type": "object"
                                }
                            ]
                        }
                    }
                },
                "summary": "List receipts",
                "tags": [
                    "boletas"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "comprador and productos may be JSON values or JSON-encoded strings.",
                "parameters": [
                    {
                        "description": "receipt",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/receipts.CreateReceiptRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/types.SuccessEnvelope"
                                },
                                {
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/receipts.ReceiptDTO"
                                        }
                                    },
                                    "type": "object"
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorEnvelope"
                        }
                    }
                },
                "summary": "Create a receipt",
                "tags": [
                    "boletas"
                ]
            }
        },
        "/boletas/numero/{numeroCompra}": {
            "get": {
                "parameters": [
                    {
                        "description": "purchase number",
                        "in": "path",
                        "name": "numeroCompra",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/types.SuccessEnvelope"
                                },
                                {
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/receipts.ReceiptDTO"
                                        }
                                    },
                                    "type": "object"
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorEnvelope"
                        }
                    }
                },
                "summary": "Get a receipt by purchase number",
                "tags": [
                    "boletas"
                ]
            }
        },
        "/boletas/{usuarioId}": {
            "delete": {
                "parameters": [
                    {
                        "description": "user id",
                        "in": "path",
                        "name": "usuarioId",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/types.SuccessEnvelope"
                                },
                                {
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/receipts.DeleteResult"
                                        }
                                    },
                                    "type": "object"
                                }
                            ]
                        }
                    }
                },
                "summary": "Delete every receipt of a user",
                "tags": [
                    "boletas"
                ]
            },
            "get": {
                "parameters": [
                    {
                        "description": "user id",
                        "in": "path",
                        "name": "usuarioId",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/types.SuccessEnvelope"
                                },
                                {
                                    "properties": {
                                        "data": {
                                            "items": {
                                                "$ref": "#/definitions/receipts.ReceiptDTO"
                                            },
                                            "type": "array"
                                        }
                                    },
                                    "type": "object"
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorEnvelope"
                        }
                    }
                },
                "summary": "List the receipts of a user",
                "tags": [
                    "boletas"
                ]
            }
        },
        "/categorias": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/types.SuccessEnvelope"
                                },
                                {
                                    "properties": {
                                        "data": {
                                            "items": {
                                                "$ref": "#/definitions/categories.CategoryDTO"
                                            },
                                            "type": "array"
                                        }
                                    },
                                    "type": "object"
                                }
                            ]
                        }
                    }
                },
                "summary": "List categories",
                "tags": [
                    "categorias"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "category",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/categories.CategoryRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/types.SuccessEnvelope"
                                },
                                {
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/categories.CategoryDTO"
                                        }
                                    },
                                    "type": "object"
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorEnvelope"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorEnvelope"
                        }
                    }
                },
                "summary": "Create a category",
                "tags": [
                    "categorias"
                ]
            }
        },
        "/categorias/nombres": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/types.SuccessEnvelope"
                                },
                                {
                                    "properties": {
                                        "data": {
                                            "items": {
                                                "type": "string"
                                            },
                                            "type": "array"
                                        }
                                    },
                                    "type": "object"
                                }
                            ]
                        }
                    }
                },
                "summary": "List category names",
                "tags": [
                    "categorias"
                ]
            }
        },
        "/categorias/seed": {
            "post": {
                "description": "Idempotent; returns every category name afterwards.",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/types.SuccessEnvelope"
                                },
                                {
                                    "properties": {
                                        "data": {
                                            "items": {
                                                "type": "string"
                                            },
                                            "type": "array"
                                        }
                                    },
                                    "type": "object"
                                }
                            ]
                        }
                    }
                },
                "summary": "Insert the default categories",
                "tags": [
                    "categorias"
                ]
            }
        },
        "/categorias/{id}": {
            "delete": {
                "description": "Products in the category get a NULL categoria before the row is removed.",
                "parameters": [
                    {
                        "description": "category id",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/types.SuccessEnvelope"
                                },
                                {
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/categories.DeleteResult"
                                        }
                                    },
                                    "type": "object"
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorEnvelope"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorEnvelope"
                        }
                    }
                },
                "summary": "Delete a category",
                "tags": [
                    "categorias"
                ]
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "category id",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "category",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/categories.CategoryRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/types.SuccessEnvelope"
                                },
                                {
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/categories.CategoryDTO"
                                        }
                                    },
                                    "type": "object"
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorEnvelope"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorEnvelope"
                        }
                    }
                },
                "summary": "Rename a category",
                "tags": [
                    "categorias"
                ]
            }
        },
        "/detalle": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/types.SuccessEnvelope"
                                },
                                {
                                    "properties": {
                                        "data": {
                                            "items": {
                                                "$ref": "#/definitions/receipts.ReceiptDTO"
                                            },
                                            "type": "array"
                                        }
                                    },
                                    "type": "object"
                                }
                            ]
                        }
                    }
                },
                "summary": "List receipts",
                "tags": [
                    "boletas"
                ]
            }
        },
        "/detalle/{numeroCompra}": {
            "get": {
                "parameters": [
                    {
                        "description": "purchase number",
                        "in": "path",
                        "name": "numeroCompra",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/types.SuccessEnvelope"
                                },
                                {
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/receipts.ReceiptDTO"
                                        }
                                    },
                                    "type": "object"
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorEnvelope"
                        }
                    }
                },
                "summary": "Get a receipt by purchase number",
                "tags": [
                    "boletas"
                ]
            }
        },
        "/productos": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/types.SuccessEnvelope"
                                },
                                {
                                    "properties": {
                                        "data": {
                                            "items": {
                                                "$ref": "#/definitions/products.ProductDTO"
                                            },
                                            "type": "array"
                                        }
                                    },
                                    "type": "object"
                                }
                            ]
                        }
                    }
                },
                "summary": "List products",
                "tags": [
                    "productos"
                ]
            },
            "post": {
                "consumes": [
                    "application/json",
                    "multipart/form-data"
                ],
                "description": "Accepts JSON or multipart/form-data; an uploaded \"imagen\" file wins over an \"imagen\" URL.",
                "parameters": [
                    {
                        "description": "product fields",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/products.ProductInput"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/types.SuccessEnvelope"
                                },
                                {
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/products.ProductDTO"
                                        }
                                    },
                                    "type": "object"
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorEnvelope"
                        }
                    }
                },
                "summary": "Create a product",
                "tags": [
                    "productos"
                ]
            }
        },
        "/productos/categoria/{categoria}": {
            "get": {
                "parameters": [
                    {
                        "description": "category name",
                        "in": "path",
                        "name": "categoria",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/types.SuccessEnvelope"
                                },
                                {
                                    "properties": {
                                        "data": {
                                            "items": {
                                                "$ref": "#/definitions/products.ProductDTO"
                                            },
                                            "type": "array"
                                        }
                                    },
                                    "type": "object"
                                }
                            ]
                        }
                    }
                },
                "summary": "List products of a category",
                "tags": [
                    "productos"
                ]
            }
        },
        "/productos/{id}": {
            "delete": {
                "parameters": [
                    {
                        "description": "product id",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/types.SuccessEnvelope"
                                },
                                {
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/products.DeleteResult"
                                        }
                                    },
                                    "type": "object"
                                }
                            ]
                        }
                    }
                },
                "summary": "Delete a product",
                "tags": [
                    "productos"
                ]
            },
            "get": {
                "parameters": [
                    {
                        "description": "product id",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/types.SuccessEnvelope"
                                },
                                {
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/products.ProductDTO"
                                        }
                                    },
                                    "type": "object"
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorEnvelope"
                        }
                    }
                },
                "summary": "Get a product",
                "tags": [
                    "productos"
                ]
            },
            "put": {
                "consumes": [
                    "application/json",
                    "multipart/form-data"
                ],
                "description": "Only the fields sent are changed. Accepts JSON or multipart/form-data.",
                "parameters": [
                    {
                        "description": "product id",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "fields to change",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/products.ProductInput"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/types.SuccessEnvelope"
                                },
                                {
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/products.ProductDTO"
                                        }
                                    },
                                    "type": "object"
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorEnvelope"
                        }
                    }
                },
                "summary": "Update a product",
                "tags": [
                    "productos"
                ]
            }
        },
        "/usuarios": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/types.SuccessEnvelope"
                                },
                                {
                                    "properties": {
                                        "data": {
                                            "items": {
                                                "$ref": "#/definitions/users.UserDTO"
                                            },
                                            "type": "array"
                                        }
                                    },
                                    "type": "object"
                                }
                            ]
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "List users",
                "tags": [
                    "usuarios"
                ]
            }
        },
        "/usuarios/login": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "credentials",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/auth.LoginRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/types.SuccessEnvelope"
                                },
                                {
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/auth.LoginResponse"
                                        }
                                    },
                                    "type": "object"
                                }
                            ]
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorEnvelope"
                        }
                    },
                    "429": {
                        "description": "Too Many Requests",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorEnvelope"
                        }
                    }
                },
                "summary": "Log in with email and password",
                "tags": [
                    "usuarios"
                ]
            }
        },
        "/usuarios/register": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "user fields",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/users.RegisterRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/types.SuccessEnvelope"
                                },
                                {
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/users.UserDTO"
                                        }
                                    },
                                    "type": "object"
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorEnvelope"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorEnvelope"
                        }
                    }
                },
                "summary": "Register a user",
                "tags": [
                    "usuarios"
                ]
            }
        },
        "/usuarios/{id}": {
            "get": {
                "parameters": [
                    {
                        "description": "user id",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/types.SuccessEnvelope"
                                },
                                {
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/users.UserDTO"
                                        }
                                    },
                                    "type": "object"
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Get a user by id",
                "tags": [
                    "usuarios"
                ]
            }
        }
    },
    "schemes": {{ marshal .Schemes }},
    "securityDefinitions": {
        "BearerAuth": {
            "in": "header",
            "name": "Authorization",
            "type": "apiKey"
        }
    },
    "swagger": "2.0"
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Tienda API",
	Description:      "Users, products, categories and receipts services. Every response is wrapped in {\"data\": ...} or {\"error\": {...}}.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
