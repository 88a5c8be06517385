package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Activity Showcase API",
        "description": "Admin and public API for campus activities, winners, gallery, participants and student performance",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": ["http", "https"],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Authentication", "description": "Admin login"},
        {"name": "Winners", "description": "Recognised winners"},
        {"name": "Activities", "description": "Upcoming and completed activities"},
        {"name": "Gallery", "description": "Photo gallery"},
        {"name": "Participants", "description": "Activity participants and awards"},
        {"name": "Students", "description": "Student roster and bulk import"},
        {"name": "Performance", "description": "Student performance summaries and reports"},
        {"name": "Uploads", "description": "Image uploads"},
        {"name": "Changes", "description": "Collection change counters"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate the admin",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/winners": {
            "get": {
                "tags": ["Winners"],
                "summary": "List winners, newest first",
                "parameters": [{"in": "query", "name": "thisWeek", "type": "boolean"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}
            },
            "post": {
                "tags": ["Winners"],
                "summary": "Add a winner",
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/Winner"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}}
            }
        },
        "/winners/{id}": {
            "put": {
                "tags": ["Winners"],
                "summary": "Update a winner",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "id", "required": true, "type": "string"},
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/Winner"}}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "delete": {
                "tags": ["Winners"],
                "summary": "Delete a winner",
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}],
                "responses": {"204": {"description": "Deleted"}}
            }
        },
        "/activities": {
            "get": {
                "tags": ["Activities"],
                "summary": "List activities",
                "parameters": [{"in": "query", "name": "status", "type": "string", "enum": ["upcoming", "completed"]}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}
            },
            "post": {
                "tags": ["Activities"],
                "summary": "Add an activity",
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/Activity"}}],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/activities/{id}": {
            "get": {
                "tags": ["Activities"],
                "summary": "Get an activity",
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "put": {
                "tags": ["Activities"],
                "summary": "Update an activity",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "id", "required": true, "type": "string"},
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/Activity"}}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "delete": {
                "tags": ["Activities"],
                "summary": "Delete an activity",
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}],
                "responses": {"204": {"description": "Deleted"}}
            }
        },
        "/activities/{id}/photos": {
            "post": {
                "tags": ["Activities"],
                "summary": "Attach an uploaded photo",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "id", "required": true, "type": "string"},
                    {"in": "body", "name": "payload", "required": true, "schema": {"type": "object", "properties": {"url": {"type": "string"}}}}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/gallery": {
            "get": {"tags": ["Gallery"], "summary": "List gallery images, newest first", "responses": {"200": {"description": "OK"}}},
            "post": {
                "tags": ["Gallery"],
                "summary": "Add a gallery image",
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/GalleryImage"}}],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/gallery/{id}": {
            "put": {
                "tags": ["Gallery"],
                "summary": "Update a gallery image",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "id", "required": true, "type": "string"},
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/GalleryImage"}}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["Gallery"],
                "summary": "Delete a gallery image",
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}],
                "responses": {"204": {"description": "Deleted"}}
            }
        },
        "/participants": {
            "get": {
                "tags": ["Participants"],
                "summary": "List participants",
                "parameters": [
                    {"in": "query", "name": "activityId", "type": "string"},
                    {"in": "query", "name": "rollNumber", "type": "string"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Participants"],
                "summary": "Register a participant",
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/Participant"}}],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/participants/{id}": {
            "put": {
                "tags": ["Participants"],
                "summary": "Update a participant",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "id", "required": true, "type": "string"},
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/Participant"}}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["Participants"],
                "summary": "Delete a participant",
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}],
                "responses": {"204": {"description": "Deleted"}}
            }
        },
        "/students": {
            "get": {"tags": ["Students"], "summary": "List students", "responses": {"200": {"description": "OK"}}},
            "post": {
                "tags": ["Students"],
                "summary": "Add a student",
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/Student"}}],
                "responses": {"201": {"description": "Created"}, "409": {"description": "PIN already in use"}}
            }
        },
        "/students/import": {
            "post": {
                "tags": ["Students"],
                "summary": "Bulk import students from CSV",
                "security": [{"BearerAuth": []}],
                "consumes": ["text/csv", "multipart/form-data"],
                "parameters": [{"in": "formData", "name": "file", "type": "file"}],
                "responses": {
                    "200": {"description": "Import summary"},
                    "400": {"description": "No valid rows"},
                    "413": {"description": "Roster too large"}
                }
            }
        },
        "/students/{pin}": {
            "get": {
                "tags": ["Students"],
                "summary": "Get a student",
                "parameters": [{"in": "path", "name": "pin", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "put": {
                "tags": ["Students"],
                "summary": "Update a student",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "pin", "required": true, "type": "string"},
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/Student"}}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}, "409": {"description": "PIN already in use"}}
            },
            "delete": {
                "tags": ["Students"],
                "summary": "Delete a student",
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "pin", "required": true, "type": "string"}],
                "responses": {"204": {"description": "Deleted"}}
            }
        },
        "/performance/{pin}": {
            "get": {
                "tags": ["Performance"],
                "summary": "Student performance summary",
                "parameters": [{"in": "path", "name": "pin", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Student not found"}}
            }
        },
        "/performance/{pin}/export": {
            "get": {
                "tags": ["Performance"],
                "summary": "Export a performance report",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"in": "path", "name": "pin", "required": true, "type": "string"},
                    {"in": "query", "name": "format", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {"200": {"description": "Report file"}, "404": {"description": "Student not found"}}
            }
        },
        "/uploads/{category}": {
            "post": {
                "tags": ["Uploads"],
                "summary": "Upload an image",
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"in": "path", "name": "category", "required": true, "type": "string", "enum": ["winners", "activities", "posters", "gallery"]},
                    {"in": "formData", "name": "file", "required": true, "type": "file"}
                ],
                "responses": {"201": {"description": "Stored"}, "413": {"description": "File too large"}}
            }
        },
        "/changes": {
            "get": {"tags": ["Changes"], "summary": "Change counter per collection", "responses": {"200": {"description": "OK"}}}
        }
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"},
                "details": {"type": "object"}
            }
        },
        "Envelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "Winner": {
            "type": "object",
            "required": ["name", "event", "date", "year"],
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "rollNumber": {"type": "string"},
                "event": {"type": "string"},
                "date": {"type": "string", "format": "date"},
                "photo": {"type": "string"},
                "year": {"type": "string"},
                "isThisWeekWinner": {"type": "boolean"},
                "position": {"type": "integer", "minimum": 1, "maximum": 3},
                "activityType": {"type": "string"},
                "weekNumber": {"type": "integer"}
            }
        },
        "Activity": {
            "type": "object",
            "required": ["name", "date", "description", "status"],
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "date": {"type": "string", "format": "date"},
                "description": {"type": "string"},
                "status": {"type": "string", "enum": ["upcoming", "completed"]},
                "poster": {"type": "string"},
                "photos": {"type": "array", "items": {"type": "string"}},
                "details": {"type": "string"},
                "formLink": {"type": "string"}
            }
        },
        "GalleryImage": {
            "type": "object",
            "required": ["url"],
            "properties": {"id": {"type": "string"}, "url": {"type": "string"}, "caption": {"type": "string"}}
        },
        "Participant": {
            "type": "object",
            "required": ["activityId", "name", "rollNumber", "department", "college", "award"],
            "properties": {
                "id": {"type": "string"},
                "activityId": {"type": "string"},
                "name": {"type": "string"},
                "rollNumber": {"type": "string"},
                "department": {"type": "string"},
                "college": {"type": "string"},
                "award": {"type": "string", "enum": ["1st Place", "2nd Place", "3rd Place", "Participation"]}
            }
        },
        "Student": {
            "type": "object",
            "required": ["pin", "name", "branch", "year", "section"],
            "properties": {
                "id": {"type": "string"},
                "pin": {"type": "string"},
                "name": {"type": "string"},
                "branch": {"type": "string"},
                "year": {"type": "string"},
                "section": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
