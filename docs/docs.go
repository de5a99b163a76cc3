// Package docs AroundMe API.
//
// Сервис оценки района: геокодирование, места поблизости, ориентиры и оценка.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/health": {
            "get": {"tags": ["Health"], "summary": "Health check", "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}
        },
        "/api/v1/geocode": {
            "post": {"tags": ["Geocode"], "summary": "Геокодирование адреса", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.GeocodeRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}, "502": {"description": "Bad Gateway"}}}
        },
        "/api/v1/pois/categories": {
            "get": {"tags": ["POI"], "summary": "Поддерживаемые категории", "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/pois/nearby": {
            "post": {"tags": ["POI"], "summary": "Места одной категории поблизости", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.NearbyPoiRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}, "502": {"description": "Bad Gateway"}}}
        },
        "/api/v1/pois/nearby/all": {
            "post": {"tags": ["POI"], "summary": "Места нескольких категорий поблизости", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.NearbyAllRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/api/v1/landmarks": {
            "get": {"tags": ["Landmarks"], "summary": "Ориентиры", "produces": ["application/json"],
                "parameters": [
                    {"in": "query", "name": "city", "type": "string"},
                    {"in": "query", "name": "country", "type": "string"},
                    {"in": "query", "name": "suggest", "type": "boolean", "default": false}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/api/v1/landmarks/distance": {
            "post": {"tags": ["Landmarks"], "summary": "Расстояния до ориентиров", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.LandmarkDistanceRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/api/v1/score": {
            "post": {"tags": ["Score"], "summary": "Оценка района", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.ScoreRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/api/v1/locations": {
            "post": {"tags": ["Locations"], "summary": "Сохранить локацию", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.CreateLocationRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/api/v1/locations/{id}": {
            "get": {"tags": ["Locations"], "summary": "Получить локацию", "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["Locations"], "summary": "Удалить локацию",
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        },
        "/api/v1/locations/{id}/report": {
            "get": {"tags": ["Locations"], "summary": "Отчёт по локации", "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "required": true, "type": "string"},
                    {"in": "query", "name": "pois", "type": "string"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/api/v1/listings": {
            "get": {"tags": ["Listings"], "summary": "Список объявлений", "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Listings"], "summary": "Создать объявление", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.CreateListingRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/api/v1/listings/{id}": {
            "get": {"tags": ["Listings"], "summary": "Получить объявление", "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["Listings"], "summary": "Удалить объявление",
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        },
        "/api/v1/listings/{id}/report": {
            "get": {"tags": ["Listings"], "summary": "Отчёт по объявлению", "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        }
    },
    "definitions": {
        "domain.Address": {
            "type": "object",
            "required": ["address", "city", "country"],
            "properties": {"address": {"type": "string"}, "city": {"type": "string"}, "country": {"type": "string"}}
        },
        "domain.LandMark": {
            "type": "object",
            "required": ["name", "address"],
            "properties": {"name": {"type": "string"}, "address": {"type": "string"}, "location": {"$ref": "#/definitions/domain.Location"}}
        },
        "domain.Location": {
            "type": "object",
            "properties": {"latitude": {"type": "number"}, "longitude": {"type": "number"}}
        },
        "domain.ScoreConfig": {
            "type": "object",
            "properties": {
                "placeType": {"type": "string"}, "weight": {"type": "number"},
                "distanceType": {"type": "string", "enum": ["walking", "driving", "public"]},
                "thresholdInMinutes": {"type": "integer"}
            }
        },
        "dto.GeocodeRequest": {
            "type": "object",
            "required": ["address"],
            "properties": {"address": {"type": "string"}}
        },
        "dto.NearbyPoiRequest": {
            "type": "object",
            "required": ["address", "pointOfInterest", "radius"],
            "properties": {
                "address": {"$ref": "#/definitions/domain.Address"},
                "pointOfInterest": {"type": "string"},
                "radius": {"type": "integer"},
                "limit": {"type": "integer"}
            }
        },
        "dto.NearbyAllRequest": {
            "type": "object",
            "required": ["address", "pointsOfInterest", "radius"],
            "properties": {
                "address": {"$ref": "#/definitions/domain.Address"},
                "pointsOfInterest": {"type": "array", "items": {"type": "string"}},
                "radius": {"type": "integer"},
                "limit": {"type": "integer"}
            }
        },
        "dto.LandmarkDistanceRequest": {
            "type": "object",
            "required": ["address", "landmarks"],
            "properties": {
                "address": {"$ref": "#/definitions/domain.Address"},
                "landmarks": {"type": "array", "items": {"$ref": "#/definitions/domain.LandMark"}}
            }
        },
        "dto.ScoreRequest": {
            "type": "object",
            "required": ["groupedPois"],
            "properties": {
                "groupedPois": {"type": "object"},
                "config": {"type": "array", "items": {"$ref": "#/definitions/domain.ScoreConfig"}}
            }
        },
        "dto.CreateLocationRequest": {
            "type": "object",
            "required": ["address"],
            "properties": {"address": {"type": "string"}}
        },
        "dto.CreateListingRequest": {
            "type": "object",
            "required": ["address", "pois"],
            "properties": {
                "name": {"type": "string"},
                "address": {"type": "string"},
                "pois": {"type": "array", "items": {"type": "string"}},
                "landmarks": {"type": "array", "items": {"type": "string", "format": "uuid"}},
                "suggestLandmarks": {"type": "boolean"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "AroundMe API",
	Description:      "Сервис оценки района для объявлений о недвижимости.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
