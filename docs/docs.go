// Package docs holds the OpenAPI description served at /swagger/doc.json.
// Regenerate with swag init after changing handler annotations.
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
        "/tournaments": {
            "post": {
                "tags": [
                    "Tournaments"
                ],
                "summary": "Create Tournament",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.CreateTournamentRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Tournament"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "get": {
                "tags": [
                    "Tournaments"
                ],
                "summary": "List Tournaments",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Tournament"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/tournaments/{id}": {
            "get": {
                "tags": [
                    "Tournaments"
                ],
                "summary": "Get Tournament Details",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Tournament ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Tournament"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/tournaments/{id}/sessions": {
            "get": {
                "tags": [
                    "Tournaments"
                ],
                "summary": "List Tournament Sessions",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Tournament ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Session"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/sessions": {
            "post": {
                "tags": [
                    "Sessions"
                ],
                "summary": "Create Session",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.CreateSessionRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Session"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Unknown tournament or team",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/sessions/{code}": {
            "get": {
                "tags": [
                    "Sessions"
                ],
                "summary": "Get Session",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session code",
                        "name": "code",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Session"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/sessions/{code}/matrix": {
            "post": {
                "tags": [
                    "Sessions"
                ],
                "summary": "Submit Matrix",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session code",
                        "name": "code",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Request",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.MatrixInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MatrixSubmitted"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/sessions/{code}/matrices": {
            "get": {
                "tags": [
                    "Sessions"
                ],
                "summary": "Get Matrices",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session code",
                        "name": "code",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.SessionMatrices"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/sessions/{code}/optimize": {
            "post": {
                "tags": [
                    "Pairing"
                ],
                "summary": "Optimize Pairing Strategy",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session code",
                        "name": "code",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.OptimizeResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "503": {
                        "description": "Search capacity exhausted",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/sessions/{code}/recommend": {
            "post": {
                "tags": [
                    "Pairing"
                ],
                "summary": "Recommend Decision",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session code",
                        "name": "code",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Request",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.RecommendationRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.RecommendationResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "models.Player": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "army": {
                    "type": "string"
                },
                "archetype": {
                    "type": "string"
                }
            }
        },
        "models.Team": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "players": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Player"
                    }
                }
            }
        },
        "models.Tournament": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "teams": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Team"
                    }
                },
                "created_at": {
                    "type": "string"
                }
            }
        },
        "models.CreatePlayerRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "army": {
                    "type": "string"
                },
                "archetype": {
                    "type": "string"
                }
            }
        },
        "models.CreateTeamRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "players": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.CreatePlayerRequest"
                    }
                }
            }
        },
        "models.CreateTournamentRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "teams": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.CreateTeamRequest"
                    }
                }
            }
        },
        "models.CreateSessionRequest": {
            "type": "object",
            "properties": {
                "tournament_id": {
                    "type": "string"
                },
                "your_team_id": {
                    "type": "string"
                },
                "opponent_team_id": {
                    "type": "string"
                },
                "round_number": {
                    "type": "integer"
                },
                "round_name": {
                    "type": "string"
                }
            }
        },
        "models.Session": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "code": {
                    "type": "string"
                },
                "tournament_id": {
                    "type": "string"
                },
                "your_team_id": {
                    "type": "string"
                },
                "opponent_team_id": {
                    "type": "string"
                },
                "round_number": {
                    "type": "integer"
                },
                "round_name": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                }
            }
        },
        "models.MatrixInput": {
            "type": "object",
            "properties": {
                "player_name": {
                    "type": "string"
                },
                "matrix": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "number"
                    }
                }
            }
        },
        "models.MatrixSubmitted": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "player": {
                    "type": "string"
                },
                "total_submitted": {
                    "type": "integer"
                }
            }
        },
        "models.SessionMatrices": {
            "type": "object",
            "properties": {
                "session_code": {
                    "type": "string"
                },
                "matrices": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "object",
                        "additionalProperties": {
                            "type": "number"
                        }
                    }
                },
                "submitted_count": {
                    "type": "integer"
                }
            }
        },
        "models.StrategySummary": {
            "type": "object",
            "properties": {
                "defender": {
                    "type": "string"
                },
                "attackers": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "expected_score": {
                    "type": "number"
                },
                "best_case_score": {
                    "type": "number"
                },
                "worst_case_score": {
                    "type": "number"
                }
            }
        },
        "models.OptimizationResult": {
            "type": "object",
            "properties": {
                "best_defender": {
                    "type": "string"
                },
                "best_attackers": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "expected_score": {
                    "type": "number"
                },
                "best_case_score": {
                    "type": "number"
                },
                "worst_case_score": {
                    "type": "number"
                },
                "confidence": {
                    "type": "number"
                },
                "decision_tree": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                },
                "simulations_run": {
                    "type": "integer"
                },
                "computation_time": {
                    "type": "number"
                },
                "degenerate": {
                    "type": "boolean"
                },
                "strategies": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.StrategySummary"
                    }
                }
            }
        },
        "models.IncompleteSubmission": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "submitted": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "required": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "missing": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "models.OptimizeResponse": {
            "type": "object",
            "properties": {
                "complete": {
                    "type": "boolean"
                },
                "result": {
                    "$ref": "#/definitions/models.OptimizationResult"
                },
                "incomplete": {
                    "$ref": "#/definitions/models.IncompleteSubmission"
                }
            }
        },
        "models.RecommendationRequest": {
            "type": "object",
            "properties": {
                "decision_type": {
                    "type": "string",
                    "enum": [
                        "pick_defender",
                        "pick_attackers",
                        "pick_defender_matchup"
                    ]
                },
                "unpaired_your_team": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "unpaired_opponent_team": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "opponent_defender": {
                    "type": "string"
                },
                "opponent_attackers": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "your_defender": {
                    "type": "string"
                }
            }
        },
        "models.RecommendationResponse": {
            "type": "object",
            "properties": {
                "decision_type": {
                    "type": "string"
                },
                "recommendation": {},
                "expected_total_score": {
                    "type": "number"
                },
                "all_options": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "number"
                    }
                },
                "degenerate": {
                    "type": "boolean"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Strategium Pairings API",
	Description:      "Team pairing strategy search and in-round recommendations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
