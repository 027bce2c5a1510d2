// Package docs holds the OpenAPI description served under /swagger.
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
        "/stages": {
            "get": {
                "tags": [
                    "stages"
                ],
                "summary": "List stages",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "event_name",
                        "in": "query"
                    }
                ]
            },
            "post": {
                "tags": [
                    "stages"
                ],
                "summary": "Import a bracket document",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handlers.errorResponse"
                        }
                    },
                    "422": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handlers.errorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/services.ImportStageInput"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/stages/{stageID}": {
            "get": {
                "tags": [
                    "stages"
                ],
                "summary": "Get a stage",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handlers.errorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "integer",
                        "name": "stageID",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "delete": {
                "tags": [
                    "stages"
                ],
                "summary": "Delete a stage with its structure and matches",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handlers.errorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "integer",
                        "name": "stageID",
                        "in": "path",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/stages/{stageID}/matches": {
            "get": {
                "tags": [
                    "stages"
                ],
                "summary": "Matches of one stage",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "integer",
                        "name": "stageID",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/viewer-data/{stageID}": {
            "get": {
                "tags": [
                    "stages"
                ],
                "summary": "Everything a bracket viewer needs to render a stage",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.StageSnapshot"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handlers.errorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "integer",
                        "name": "stageID",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/matches": {
            "get": {
                "tags": [
                    "matches"
                ],
                "summary": "List all matches",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/matches/{matchID}": {
            "put": {
                "tags": [
                    "matches"
                ],
                "summary": "Record a match result",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handlers.errorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handlers.errorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "name": "matchID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/services.UpdateMatchResultInput"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/participants": {
            "get": {
                "tags": [
                    "participants"
                ],
                "summary": "List participants",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "integer",
                        "name": "tournament_id",
                        "in": "query"
                    }
                ]
            },
            "post": {
                "tags": [
                    "participants"
                ],
                "summary": "Add a participant to a tournament roster",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handlers.errorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/services.CreateParticipantInput"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/participants/{participantID}": {
            "get": {
                "tags": [
                    "participants"
                ],
                "summary": "Get a participant",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handlers.errorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "integer",
                        "name": "participantID",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "delete": {
                "tags": [
                    "participants"
                ],
                "summary": "Remove a participant",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handlers.errorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "integer",
                        "name": "participantID",
                        "in": "path",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/standings/{stageID}": {
            "get": {
                "tags": [
                    "standings"
                ],
                "summary": "Final standings of a stage",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.PlacementRecord"
                            }
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handlers.errorResponse"
                        }
                    },
                    "422": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handlers.errorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "integer",
                        "name": "stageID",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/standings/{stageID}/stats": {
            "get": {
                "tags": [
                    "standings"
                ],
                "summary": "Standings with ranker and skipped-match statistics",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/services.StageStandings"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handlers.errorResponse"
                        }
                    },
                    "422": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handlers.errorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "integer",
                        "name": "stageID",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/standings/{stageID}/export": {
            "post": {
                "tags": [
                    "standings"
                ],
                "summary": "Export standings to an xlsx workbook",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/services.ExportResult"
                        }
                    },
                    "503": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handlers.errorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "integer",
                        "name": "stageID",
                        "in": "path",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/events/{eventName}/rankings": {
            "get": {
                "tags": [
                    "standings"
                ],
                "summary": "Points table across all stages of an event",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.EventRanking"
                            }
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handlers.errorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "eventName",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        }
    },
    "definitions": {
        "handlers.errorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                }
            }
        },
        "models.Slot": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "result": {
                    "type": "string",
                    "enum": [
                        "win",
                        "loss"
                    ]
                },
                "score": {
                    "type": "integer"
                }
            }
        },
        "models.Stage": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "tournament_id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "single_elimination",
                        "double_elimination",
                        "round_robin"
                    ]
                },
                "event_name": {
                    "type": "string"
                },
                "number": {
                    "type": "integer"
                },
                "created_at": {
                    "type": "string"
                }
            }
        },
        "models.Group": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "stage_id": {
                    "type": "integer"
                },
                "number": {
                    "type": "integer"
                }
            }
        },
        "models.Round": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "stage_id": {
                    "type": "integer"
                },
                "group_id": {
                    "type": "integer"
                },
                "number": {
                    "type": "integer"
                }
            }
        },
        "models.Match": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "stage_id": {
                    "type": "integer"
                },
                "group_id": {
                    "type": "integer"
                },
                "round_id": {
                    "type": "integer"
                },
                "number": {
                    "type": "integer"
                },
                "opponent1": {
                    "$ref": "#/definitions/models.Slot"
                },
                "opponent2": {
                    "$ref": "#/definitions/models.Slot"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "models.Participant": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "tournament_id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                }
            }
        },
        "models.StageSnapshot": {
            "type": "object",
            "properties": {
                "stage": {
                    "$ref": "#/definitions/models.Stage"
                },
                "group": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Group"
                    }
                },
                "round": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Round"
                    }
                },
                "match": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Match"
                    }
                },
                "participant": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Participant"
                    }
                }
            }
        },
        "models.PlacementRecord": {
            "type": "object",
            "properties": {
                "placement": {
                    "type": "integer"
                },
                "participant_id": {
                    "type": "integer"
                },
                "participant_name": {
                    "type": "string"
                },
                "wins": {
                    "type": "integer"
                },
                "losses": {
                    "type": "integer"
                }
            }
        },
        "models.EventRanking": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "points": {
                    "type": "integer"
                },
                "wins": {
                    "type": "integer"
                },
                "losses": {
                    "type": "integer"
                },
                "played": {
                    "type": "integer"
                },
                "tournaments": {
                    "type": "integer"
                },
                "win_rate": {
                    "type": "number"
                }
            }
        },
        "services.StageStandings": {
            "type": "object",
            "properties": {
                "stage_id": {
                    "type": "integer"
                },
                "tournament_id": {
                    "type": "integer"
                },
                "stage_name": {
                    "type": "string"
                },
                "stage_type": {
                    "type": "string"
                },
                "ranker": {
                    "type": "string"
                },
                "placements": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.PlacementRecord"
                    }
                },
                "decided_matches": {
                    "type": "integer"
                },
                "skipped_matches": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                }
            }
        },
        "services.ExportResult": {
            "type": "object",
            "properties": {
                "key": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                }
            }
        },
        "services.SlotResultInput": {
            "type": "object",
            "properties": {
                "result": {
                    "type": "string",
                    "enum": [
                        "win",
                        "loss"
                    ]
                },
                "score": {
                    "type": "integer"
                }
            }
        },
        "services.UpdateMatchResultInput": {
            "type": "object",
            "properties": {
                "opponent1": {
                    "$ref": "#/definitions/services.SlotResultInput"
                },
                "opponent2": {
                    "$ref": "#/definitions/services.SlotResultInput"
                }
            }
        },
        "services.CreateParticipantInput": {
            "type": "object",
            "properties": {
                "tournament_id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                }
            },
            "required": [
                "tournament_id",
                "name"
            ]
        },
        "services.ImportStageInput": {
            "type": "object",
            "properties": {
                "tournament_id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "event_name": {
                    "type": "string"
                },
                "number": {
                    "type": "integer"
                },
                "participants": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "id": {
                                "type": "integer"
                            },
                            "name": {
                                "type": "string"
                            }
                        }
                    }
                },
                "groups": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "id": {
                                "type": "integer"
                            },
                            "number": {
                                "type": "integer"
                            }
                        }
                    }
                },
                "rounds": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "id": {
                                "type": "integer"
                            },
                            "group_id": {
                                "type": "integer"
                            },
                            "number": {
                                "type": "integer"
                            }
                        }
                    }
                },
                "matches": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "id": {
                                "type": "integer"
                            },
                            "group_id": {
                                "type": "integer"
                            },
                            "round_id": {
                                "type": "integer"
                            },
                            "number": {
                                "type": "integer"
                            },
                            "opponent1": {
                                "$ref": "#/definitions/models.Slot"
                            },
                            "opponent2": {
                                "$ref": "#/definitions/models.Slot"
                            }
                        }
                    }
                }
            },
            "required": [
                "tournament_id",
                "name",
                "type"
            ]
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Tournament Brackets API",
	Description:      "Stores elimination brackets and computes final standings.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
