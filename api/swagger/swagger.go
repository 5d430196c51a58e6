package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "UniGov mock API",
        "description": "Local stand-in for the UniGov student-government backend",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "security": [
        {"BearerAuth": []}
    ],
    "tags": [
        {"name": "Auth", "description": "Sign-in"},
        {"name": "Users", "description": "Profile and photo"},
        {"name": "Messages", "description": "Direct messages"},
        {"name": "Events", "description": "Agenda"},
        {"name": "Decisions", "description": "Council decisions"},
        {"name": "Announcements", "description": "Announcements board"},
        {"name": "Complaints", "description": "Student complaints"},
        {"name": "Polls", "description": "Consultations"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "security": [],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/metrics": {
            "get": {
                "summary": "Prometheus metrics",
                "security": [],
                "produces": ["text/plain"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/auth/signin": {
            "post": {
                "tags": ["Auth"],
                "summary": "Sign in",
                "security": [],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Session"}},
                    "401": {"description": "Bad credentials", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/api/users/me": {
            "get": {
                "tags": ["Users"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}}
                }
            }
        },
        "/api/users/profile": {
            "put": {
                "tags": ["Users"],
                "summary": "Update profile",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateProfileRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}}
                }
            }
        },
        "/api/users/photo": {
            "post": {
                "tags": ["Users"],
                "summary": "Upload profile photo",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "file", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}}
                }
            }
        },
        "/api/messages": {
            "post": {
                "tags": ["Messages"],
                "summary": "Send message",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SendMessageRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Message"}}
                }
            }
        },
        "/api/messages/{id}": {
            "delete": {
                "tags": ["Messages"],
                "summary": "Delete message",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "204": {"description": "Deleted"}
                }
            }
        },
        "/api/messages/conversations": {
            "get": {
                "tags": ["Messages"],
                "summary": "List conversations",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Conversation"}}}
                }
            }
        },
        "/api/messages/conversation/{userId}": {
            "get": {
                "tags": ["Messages"],
                "summary": "Conversation history",
                "parameters": [
                    {"name": "userId", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Message"}}}
                }
            }
        },
        "/api/messages/conversation/{userId}/read": {
            "put": {
                "tags": ["Messages"],
                "summary": "Mark conversation as read",
                "parameters": [
                    {"name": "userId", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "204": {"description": "Marked"}
                }
            }
        },
        "/api/messages/unread-count": {
            "get": {
                "tags": ["Messages"],
                "summary": "Unread messages",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/UnreadCount"}}
                }
            }
        },
        "/api/events": {
            "get": {
                "tags": ["Events"],
                "summary": "List events",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Event"}}}
                }
            },
            "post": {
                "tags": ["Events"],
                "summary": "Create event",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateEventRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Event"}},
                    "403": {"description": "Editors only", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/api/events/upcoming": {
            "get": {
                "tags": ["Events"],
                "summary": "Upcoming events",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Event"}}}
                }
            }
        },
        "/api/decisions": {
            "get": {
                "tags": ["Decisions"],
                "summary": "List decisions",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Decision"}}}
                }
            },
            "post": {
                "tags": ["Decisions"],
                "summary": "Create decision",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DecisionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Decision"}}
                }
            }
        },
        "/api/decisions/{id}": {
            "get": {
                "tags": ["Decisions"],
                "summary": "Get decision",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Decision"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "put": {
                "tags": ["Decisions"],
                "summary": "Update decision",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DecisionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Decision"}}
                }
            },
            "delete": {
                "tags": ["Decisions"],
                "summary": "Delete decision",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "204": {"description": "Deleted"}
                }
            }
        },
        "/api/announcements": {
            "get": {
                "tags": ["Announcements"],
                "summary": "List announcements",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Announcement"}}}
                }
            },
            "post": {
                "tags": ["Announcements"],
                "summary": "Publish announcement",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "title", "in": "formData", "required": true, "type": "string"},
                    {"name": "content", "in": "formData", "required": true, "type": "string"},
                    {"name": "priority", "in": "formData", "type": "string", "enum": ["URGENT", "NORMAL"]},
                    {"name": "audience", "in": "formData", "type": "string", "enum": ["all", "department", "staff"]},
                    {"name": "departments", "in": "formData", "type": "string", "description": "JSON array"},
                    {"name": "years", "in": "formData", "type": "string", "description": "JSON array"},
                    {"name": "allowComments", "in": "formData", "type": "boolean"},
                    {"name": "pushNotification", "in": "formData", "type": "boolean"},
                    {"name": "file", "in": "formData", "type": "file"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Announcement"}}
                }
            }
        },
        "/api/complaints": {
            "get": {
                "tags": ["Complaints"],
                "summary": "List complaints",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Complaint"}}}
                }
            },
            "post": {
                "tags": ["Complaints"],
                "summary": "File complaint",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateComplaintRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Complaint"}}
                }
            }
        },
        "/api/complaints/my": {
            "get": {
                "tags": ["Complaints"],
                "summary": "Complaints filed by the caller",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Complaint"}}}
                }
            }
        },
        "/api/complaints/{id}": {
            "get": {
                "tags": ["Complaints"],
                "summary": "Get complaint",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Complaint"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "delete": {
                "tags": ["Complaints"],
                "summary": "Delete complaint",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Deleted"}
                }
            }
        },
        "/api/complaints/{id}/status": {
            "put": {
                "tags": ["Complaints"],
                "summary": "Update complaint status",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateComplaintStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Complaint"}},
                    "403": {"description": "Administrators only", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/api/polls": {
            "get": {
                "tags": ["Polls"],
                "summary": "List polls",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Poll"}}}
                }
            },
            "post": {
                "tags": ["Polls"],
                "summary": "Create poll",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreatePollRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Poll"}}
                }
            }
        },
        "/api/polls/{optionId}/vote": {
            "post": {
                "tags": ["Polls"],
                "summary": "Vote for an option",
                "parameters": [
                    {"name": "optionId", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Poll"}}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["username", "password"]
        },
        "Session": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "fullName": {"type": "string"},
                "username": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string", "enum": ["ROLE_ADMIN", "ROLE_DELEGATE", "ROLE_STUDENT"]},
                "profilePhoto": {"type": "string"},
                "token": {"type": "string"}
            }
        },
        "User": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "fullName": {"type": "string"},
                "username": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string"},
                "department": {"type": "string"},
                "year": {"type": "string"},
                "profilePhoto": {"type": "string"}
            }
        },
        "UserSummary": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "fullName": {"type": "string"},
                "username": {"type": "string"},
                "role": {"type": "string"},
                "profilePhoto": {"type": "string"}
            }
        },
        "UpdateProfileRequest": {
            "type": "object",
            "properties": {
                "fullName": {"type": "string"},
                "email": {"type": "string"},
                "department": {"type": "string"},
                "year": {"type": "string"}
            },
            "required": ["fullName"]
        },
        "Message": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "senderId": {"type": "integer"},
                "recipientId": {"type": "integer"},
                "content": {"type": "string"},
                "timestamp": {"type": "string"},
                "isRead": {"type": "boolean"}
            }
        },
        "Conversation": {
            "type": "object",
            "properties": {
                "user": {"$ref": "#/definitions/UserSummary"},
                "lastMessage": {"$ref": "#/definitions/Message"},
                "unreadCount": {"type": "integer"}
            }
        },
        "SendMessageRequest": {
            "type": "object",
            "properties": {
                "recipientId": {"type": "integer"},
                "content": {"type": "string"}
            },
            "required": ["recipientId", "content"]
        },
        "UnreadCount": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"}
            }
        },
        "Event": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "type": {"type": "string", "enum": ["ACADEMIC", "MEETING", "EXAM", "SOCIAL"]},
                "startTime": {"type": "string"},
                "endTime": {"type": "string"},
                "location": {"type": "string"}
            }
        },
        "CreateEventRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "type": {"type": "string", "enum": ["ACADEMIC", "MEETING", "EXAM", "SOCIAL"]},
                "startTime": {"type": "string"},
                "endTime": {"type": "string"},
                "location": {"type": "string"}
            },
            "required": ["title", "type"]
        },
        "Decision": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "content": {"type": "string"},
                "category": {"type": "string"},
                "status": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        },
        "DecisionRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "content": {"type": "string"},
                "category": {"type": "string"},
                "status": {"type": "string"}
            },
            "required": ["title", "content"]
        },
        "Announcement": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "content": {"type": "string"},
                "date": {"type": "string"},
                "author": {"type": "string"},
                "priority": {"type": "string"},
                "audience": {"type": "string", "enum": ["all", "department", "staff"]},
                "departments": {"type": "array", "items": {"type": "string"}},
                "years": {"type": "array", "items": {"type": "string"}},
                "allowComments": {"type": "boolean"},
                "pushNotification": {"type": "boolean"},
                "attachmentPath": {"type": "string"}
            }
        },
        "Complaint": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "category": {"type": "string"},
                "priority": {"type": "string"},
                "status": {"type": "string", "enum": ["PENDING", "IN_PROGRESS", "RESOLVED"]},
                "studentName": {"type": "string"},
                "studentDepartment": {"type": "string"},
                "attachmentPath": {"type": "string"},
                "response": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        },
        "CreateComplaintRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "category": {"type": "string"},
                "priority": {"type": "string", "enum": ["URGENT", "HIGH", "MEDIUM", "LOW"]}
            },
            "required": ["title", "description", "category"]
        },
        "UpdateComplaintStatusRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["PENDING", "IN_PROGRESS", "RESOLVED"]},
                "response": {"type": "string"}
            },
            "required": ["status"]
        },
        "PollOption": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "text": {"type": "string"},
                "votes": {"type": "integer"}
            }
        },
        "Poll": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "question": {"type": "string"},
                "description": {"type": "string"},
                "options": {"type": "array", "items": {"$ref": "#/definitions/PollOption"}},
                "endDate": {"type": "string"},
                "active": {"type": "boolean"}
            }
        },
        "CreatePollRequest": {
            "type": "object",
            "properties": {
                "question": {"type": "string"},
                "description": {"type": "string"},
                "options": {"type": "array", "items": {"type": "string"}, "minItems": 2},
                "endDate": {"type": "string"}
            },
            "required": ["question", "options"]
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document of the mock backend.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
