// Package docs registers the swagger specification served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/colleges": {
            "get": {
                "produces": ["application/json"],
                "tags": ["colleges"],
                "summary": "List filter options",
                "parameters": [
                    {"type": "boolean", "description": "Include the list of colleges", "name": "withColleges", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CollegeListResponse"}},
                    "400": {"description": "Invalid query parameter", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/colleges/filters": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["colleges"],
                "summary": "Filter colleges",
                "parameters": [
                    {"minimum": 1, "type": "integer", "description": "Page number (1-based)", "name": "page", "in": "query"},
                    {"description": "Filters; empty values are ignored", "name": "request", "in": "body", "schema": {"$ref": "#/definitions/dto.CollegeFilterRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CollegeFilterResponse"}},
                    "400": {"description": "Invalid request data", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/colleges/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["colleges"],
                "summary": "Get college details",
                "parameters": [
                    {"type": "string", "description": "College ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CollegeDetailResponse"}},
                    "400": {"description": "Invalid college ID", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "College not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/countries/{country}/colleges/count": {
            "get": {
                "produces": ["application/json"],
                "tags": ["colleges"],
                "summary": "Count colleges in a country",
                "parameters": [
                    {"type": "string", "description": "Country name", "name": "country", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CollegeCountResponse"}},
                    "400": {"description": "Invalid country", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/courses/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "Get course content",
                "parameters": [
                    {"type": "string", "description": "Course ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Content"}},
                    "400": {"description": "Invalid course ID", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Course not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/scholarships/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["scholarships"],
                "summary": "Get scholarship content",
                "parameters": [
                    {"type": "string", "description": "Scholarship ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Content"}},
                    "400": {"description": "Invalid scholarship ID", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Scholarship not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}
                }
            }
        },
        "/ping": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SuccessResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.CollegeCountResponse": {
            "type": "object",
            "properties": {
                "country": {"type": "string", "example": "India"},
                "count": {"type": "integer", "example": 42}
            }
        },
        "dto.CollegeDetailResponse": {
            "type": "object",
            "properties": {
                "college": {"$ref": "#/definitions/models.CollegeDetail"},
                "currencyConversion": {"type": "object", "additionalProperties": {"type": "number"}},
                "currencyBase": {"type": "string", "example": "INR"},
                "currencyStale": {"type": "boolean"}
            }
        },
        "dto.CollegeFilterRequest": {
            "type": "object",
            "properties": {
                "country": {"type": "string", "maxLength": 100, "example": "India"},
                "program": {"type": "string", "maxLength": 200, "example": "MBA"},
                "type": {"type": "string", "maxLength": 100, "example": "Full Time"},
                "courseName": {"type": "string", "maxLength": 200, "example": "data science"},
                "collegeName": {"type": "string", "maxLength": 200, "example": "institute"}
            }
        },
        "dto.CollegeFilterResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/models.CollegeCourseRow"}},
                "totalCount": {"type": "integer"},
                "pagination": {"$ref": "#/definitions/dto.PaginationInfo"}
            }
        },
        "dto.CollegeListResponse": {
            "type": "object",
            "properties": {
                "uniqueFilterOptions": {"type": "array", "items": {"$ref": "#/definitions/models.UniqueFilterOptions"}},
                "colleges": {"type": "array", "items": {"$ref": "#/definitions/models.College"}}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "error": {"type": "string", "example": "College not found"},
                "code": {"type": "string", "example": "RES_001"},
                "details": {},
                "timestamp": {"type": "string", "example": "2025-04-23T12:01:05.123Z"}
            }
        },
        "dto.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "ok"},
                "database": {"type": "string", "example": "mongo"},
                "timestamp": {"type": "string"}
            }
        },
        "dto.SuccessResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "pong"},
                "status": {"type": "string", "example": "success"}
            }
        },
        "dto.PaginationInfo": {
            "type": "object",
            "properties": {
                "currentPage": {"type": "integer", "example": 1},
                "totalPages": {"type": "integer", "example": 7},
                "pageSize": {"type": "integer", "example": 20},
                "totalItems": {"type": "integer", "example": 131}
            }
        },
        "models.College": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "name": {"type": "string"},
                "address": {"type": "string"},
                "country": {"type": "string"},
                "landing": {}
            }
        },
        "models.CollegeCourseRow": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "name": {"type": "string"},
                "address": {"type": "string"},
                "country": {"type": "string"},
                "numberOfCourses": {"type": "integer"},
                "courseId": {"type": "string"},
                "courseName": {"type": "string"},
                "program": {"type": "string"},
                "courseType": {"type": "string"}
            }
        },
        "models.CollegeDetail": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "name": {"type": "string"},
                "address": {"type": "string"},
                "country": {"type": "string"},
                "landing": {},
                "courseDetails": {"type": "array", "items": {"$ref": "#/definitions/models.Course"}},
                "scholarshipDetails": {"type": "array", "items": {"$ref": "#/definitions/models.Scholarship"}}
            }
        },
        "models.Content": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "html": {"type": "string"}
            }
        },
        "models.Course": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "collegeId": {"type": "string"},
                "program": {"type": "string"},
                "courseType": {"type": "string"},
                "courseName": {"type": "string"}
            }
        },
        "models.Scholarship": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "collegeId": {"type": "string"}
            }
        },
        "models.UniqueFilterOptions": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "countries": {"type": "array", "items": {"type": "string"}},
                "programs": {"type": "array", "items": {"type": "string"}},
                "types": {"type": "array", "items": {"type": "string"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "College Catalog API",
	Description:      "Read-only catalog of colleges, courses and scholarships with search and currency conversion.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
