package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "COE API",
        "description": "College administration backend: accounts, results, timetable, ID cards and the assistant endpoint",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Registration, login and credential recovery"},
        {"name": "Profile", "description": "Student profile management"},
        {"name": "Chat", "description": "Assistant endpoint and conversation log"},
        {"name": "Timetable", "description": "Published class schedule"},
        {"name": "Results", "description": "Exam results"},
        {"name": "IDCard", "description": "ID card application workflow"},
        {"name": "Admin", "description": "Administrative panel endpoints"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Degraded"}
                }
            }
        },
        "/register": {
            "post": {
                "tags": ["Auth"],
                "summary": "Register a student account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/RegisterResponse"}}
                }
            }
        },
        "/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate a user",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/LoginResponse"}}
                }
            }
        },
        "/forgot_password": {
            "post": {
                "tags": ["Auth"],
                "summary": "Recover a stored password",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/forgot_userid": {
            "post": {
                "tags": ["Auth"],
                "summary": "Recover an email from identity fields",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/get_profile": {
            "post": {
                "tags": ["Profile"],
                "summary": "Fetch a student profile",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/update_profile": {
            "post": {
                "tags": ["Profile"],
                "summary": "Update mutable profile fields",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ask": {
            "post": {
                "tags": ["Chat"],
                "summary": "Ask the assistant a question",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AskRequest"}}
                ],
                "responses": {
                    "200": {"description": "Answer"},
                    "500": {"description": "Completion failed"}
                }
            }
        },
        "/history": {
            "post": {
                "tags": ["Chat"],
                "summary": "Fetch a user's conversation history",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/get_timetable": {
            "get": {
                "tags": ["Timetable"],
                "summary": "List all timetable slots",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/get_result": {
            "post": {
                "tags": ["Results"],
                "summary": "Fetch a student's results by email",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/apply_id": {
            "post": {
                "tags": ["IDCard"],
                "summary": "Submit an ID card application",
                "consumes": ["multipart/form-data"],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Invalid application"}
                }
            }
        },
        "/api/get_verified_id": {
            "get": {
                "tags": ["IDCard"],
                "summary": "Fetch a student's approved ID card",
                "parameters": [
                    {"name": "email", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/get_verified_id_pdf": {
            "get": {
                "tags": ["IDCard"],
                "summary": "Download an approved ID card as PDF",
                "parameters": [
                    {"name": "email", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "PDF"},
                    "404": {"description": "Not approved or found"}
                }
            }
        },
        "/api/get_all_ids": {
            "get": {
                "tags": ["IDCard"],
                "summary": "List every card issued to one account",
                "parameters": [
                    {"name": "email", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/admin/get_users": {
            "get": {
                "tags": ["Admin"],
                "summary": "List all registered users",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/admin/update_attendance": {
            "post": {
                "tags": ["Admin"],
                "summary": "Update attendance and grade for a user",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/admin/delete_user": {
            "post": {
                "tags": ["Admin"],
                "summary": "Delete a user account",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/admin/upload_knowledge": {
            "post": {
                "tags": ["Admin"],
                "summary": "Ingest a document into the knowledge base",
                "consumes": ["multipart/form-data"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/admin/get_knowledge": {
            "get": {
                "tags": ["Admin"],
                "summary": "List ingested documents",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/admin/delete_knowledge": {
            "post": {
                "tags": ["Admin"],
                "summary": "Remove a document from the knowledge base",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/admin/add_timetable": {
            "post": {
                "tags": ["Admin"],
                "summary": "Add a timetable slot",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/admin/delete_timetable": {
            "post": {
                "tags": ["Admin"],
                "summary": "Delete a timetable slot",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/admin/add_bulk_marks": {
            "post": {
                "tags": ["Admin"],
                "summary": "Record multiple marks for one student",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/admin/get_result_by_roll": {
            "post": {
                "tags": ["Admin"],
                "summary": "Look up results by roll number",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/admin/update_result": {
            "post": {
                "tags": ["Admin"],
                "summary": "Update one result row",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/admin/delete_result_entry": {
            "post": {
                "tags": ["Admin"],
                "summary": "Delete one result row",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/admin/delete_all_marks": {
            "post": {
                "tags": ["Admin"],
                "summary": "Delete all marks for one student",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/admin/import_bulk_marks": {
            "post": {
                "tags": ["Admin"],
                "summary": "Import marks from a CSV or Excel sheet",
                "consumes": ["multipart/form-data"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/admin/clear_all_results_database": {
            "post": {
                "tags": ["Admin"],
                "summary": "Delete every stored result",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/admin/export_results_csv": {
            "get": {
                "tags": ["Admin"],
                "summary": "Download every stored result as CSV",
                "produces": ["text/csv"],
                "responses": {
                    "200": {"description": "CSV"}
                }
            }
        },
        "/admin/get_pending_id_apps": {
            "get": {
                "tags": ["Admin"],
                "summary": "List applications awaiting review",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/admin/update_id_status": {
            "post": {
                "tags": ["Admin"],
                "summary": "Approve or reject an application",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/admin/full_edit_id_app": {
            "post": {
                "tags": ["Admin"],
                "summary": "Edit an application, optionally replacing its files",
                "consumes": ["multipart/form-data"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/admin/get_verified_students": {
            "get": {
                "tags": ["Admin"],
                "summary": "List all students holding approved cards",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    },
    "definitions": {
        "RegisterRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "dob": {"type": "string"},
                "roll": {"type": "string"},
                "course": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "RegisterResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "userId": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "properties": {
                "userId": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "LoginResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "userName": {"type": "string"},
                "isAdmin": {"type": "boolean"}
            }
        },
        "AskRequest": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "email": {"type": "string"}
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
