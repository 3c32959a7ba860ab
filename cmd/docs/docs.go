// Package docs holds the Swagger document served under /swagger.
// It follows the swag annotations on the handlers; rebuild it with
// go generate ./cmd/jweb_backend after changing them.
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
        "/journal-entries": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Validates the entry, converts USD amounts to the local currency at the saved rate, and posts it to the accounting system.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["journal entries"],
                "summary": "Submit a journal entry",
                "parameters": [
                    {
                        "description": "Journal entry",
                        "name": "entry",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.CreateJournalEntryRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.JournalEntryResponse"}},
                    "400": {"description": "Invalid input format or validation error", "schema": {"type": "object", "additionalProperties": true}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "422": {"description": "No exchange rate configured", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "502": {"description": "Accounting system rejected or did not answer", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/journal-entries/form": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Loads offices, currencies, payment types and GL accounts together with default selections.\nIf any lookup fails, dataLoadError is set and no defaults are returned.",
                "produces": ["application/json"],
                "tags": ["journal entries"],
                "summary": "Load the journal entry form",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.EntryFormResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "502": {"description": "Reference data could not be loaded", "schema": {"$ref": "#/definitions/dto.EntryFormResponse"}}
                }
            }
        },
        "/journal-entries/report": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns one sorted page of journal entries matching the filter",
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Get the journal entry report",
                "parameters": [
                    {"type": "string", "description": "From date (YYYY-MM-DD or RFC 3339)", "name": "fromDate", "in": "query"},
                    {"type": "string", "description": "To date, inclusive (YYYY-MM-DD or RFC 3339)", "name": "toDate", "in": "query"},
                    {"type": "integer", "description": "Office ID", "name": "office", "in": "query"},
                    {"type": "integer", "default": 0, "description": "Rows to skip", "name": "offset", "in": "query"},
                    {"maximum": 100, "type": "integer", "default": 10, "description": "Page size", "name": "limit", "in": "query"},
                    {
                        "enum": ["date", "office", "debitAccount", "creditAccount", "debitUSD", "creditUSD", "conversionRate", "debitUGX", "creditUGX"],
                        "type": "string",
                        "description": "Sort column",
                        "name": "sortBy",
                        "in": "query"
                    },
                    {"enum": ["asc", "desc"], "type": "string", "description": "Sort direction", "name": "sortDir", "in": "query"},
                    {"type": "string", "description": "Token from a previous page's nextPageToken", "name": "pageToken", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ReportPageResponse"}},
                    "400": {"description": "Invalid input", "schema": {"type": "object", "additionalProperties": true}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "502": {"description": "Unable to load journal entry report", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/journal-entries/report/export": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Exports the rows of the requested page only, as a spreadsheet (xlsx) or document (pdf)",
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "application/pdf"],
                "tags": ["reports"],
                "summary": "Export the journal entry report page",
                "parameters": [
                    {"enum": ["xlsx", "pdf"], "type": "string", "description": "Export format", "name": "format", "in": "query", "required": true},
                    {"type": "string", "description": "From date (YYYY-MM-DD or RFC 3339)", "name": "fromDate", "in": "query"},
                    {"type": "string", "description": "To date, inclusive (YYYY-MM-DD or RFC 3339)", "name": "toDate", "in": "query"},
                    {"type": "integer", "description": "Office ID", "name": "office", "in": "query"},
                    {"type": "integer", "default": 0, "description": "Rows to skip", "name": "offset", "in": "query"},
                    {"maximum": 100, "type": "integer", "default": 10, "description": "Page size", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Sort column", "name": "sortBy", "in": "query"},
                    {"enum": ["asc", "desc"], "type": "string", "description": "Sort direction", "name": "sortDir", "in": "query"},
                    {"type": "string", "description": "Token from a previous page's nextPageToken", "name": "pageToken", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "400": {"description": "Invalid input", "schema": {"type": "object", "additionalProperties": true}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "No data to export", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "502": {"description": "Unable to load journal entry report", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/mcurrency/config": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns the saved rate, the rate mode, whether a rate may be saved today and, in live mode, the live rate",
                "produces": ["application/json"],
                "tags": ["exchange rates"],
                "summary": "Load the rate configuration",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RateConfigResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Failed to load rate configuration", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/mcurrency/live": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns the live rate, served from cache while it is fresh. Provider failures are reported in fetchError.",
                "produces": ["application/json"],
                "tags": ["exchange rates"],
                "summary": "Fetch the live exchange rate",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RateConfigResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Failed to fetch live rate", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/mcurrency/mode": {
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "Persists the rate mode. Switching to live clears the manual rate and fetches a live rate.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["exchange rates"],
                "summary": "Switch between live and manual rates",
                "parameters": [
                    {
                        "description": "Rate mode",
                        "name": "mode",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.ToggleRateModeRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RateConfigResponse"}},
                    "400": {"description": "Invalid input format", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Failed to change rate mode", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/mcurrency/save": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Saves a manual rate, or the current live rate when source is \"live\". Allowed once per calendar day.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["exchange rates"],
                "summary": "Save today's exchange rate",
                "parameters": [
                    {
                        "description": "Rate to save",
                        "name": "rate",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.SaveRateRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RateConfigResponse"}},
                    "400": {"description": "Invalid input format or validation error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "409": {"description": "A rate was already saved today", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "502": {"description": "Live rate unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/mcurrency/today": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns the rate journal entries are converted with and when it was saved",
                "produces": ["application/json"],
                "tags": ["exchange rates"],
                "summary": "Get the saved exchange rate",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SavedRateResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "No rate has been saved", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Failed to retrieve saved rate", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/offices": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Lists the offices the report can be filtered by. The list may be empty.",
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "List offices",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.OfficeResponse"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "502": {"description": "Unable to load offices", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "domain.Currency": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "decimalPlaces": {"type": "integer"},
                "displaySymbol": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "domain.EntryDefaults": {
            "type": "object",
            "properties": {
                "currencyCode": {"type": "string"},
                "officeId": {"type": "integer"},
                "paymentTypeId": {"type": "integer"},
                "transactionDate": {"type": "string"}
            }
        },
        "domain.GLAccount": {
            "type": "object",
            "properties": {
                "glCode": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "domain.JournalLine": {
            "type": "object",
            "properties": {
                "amount": {"type": "number"},
                "glAccountId": {"type": "integer"}
            }
        },
        "domain.JournalEntryDraft": {
            "type": "object",
            "properties": {
                "comments": {"type": "string"},
                "credits": {"type": "array", "items": {"$ref": "#/definitions/domain.JournalLine"}},
                "currencyCode": {"type": "string"},
                "debits": {"type": "array", "items": {"$ref": "#/definitions/domain.JournalLine"}},
                "officeId": {"type": "integer"},
                "referenceNumber": {"type": "string"},
                "transactionDate": {"type": "string"}
            }
        },
        "domain.Office": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "domain.PaymentType": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "dto.CreateJournalEntryRequest": {
            "type": "object",
            "properties": {
                "accountNumber": {"type": "string"},
                "bankNumber": {"type": "string"},
                "chequeNumber": {"type": "string"},
                "comments": {"type": "string"},
                "credits": {"type": "array", "items": {"$ref": "#/definitions/dto.JournalLineRequest"}},
                "currencyCode": {"type": "string"},
                "debits": {"type": "array", "items": {"$ref": "#/definitions/dto.JournalLineRequest"}},
                "officeId": {"type": "integer"},
                "paymentTypeId": {"type": "integer"},
                "receiptNumber": {"type": "string"},
                "referenceNumber": {"type": "string"},
                "routingCode": {"type": "string"},
                "transactionDate": {"type": "string", "example": "2024-05-10"}
            }
        },
        "dto.EntryFormResponse": {
            "type": "object",
            "properties": {
                "currencies": {"type": "array", "items": {"$ref": "#/definitions/domain.Currency"}},
                "dataLoadError": {"type": "string"},
                "defaults": {"$ref": "#/definitions/domain.EntryDefaults"},
                "draft": {"$ref": "#/definitions/domain.JournalEntryDraft"},
                "glAccounts": {"type": "array", "items": {"$ref": "#/definitions/domain.GLAccount"}},
                "offices": {"type": "array", "items": {"$ref": "#/definitions/domain.Office"}},
                "paymentTypes": {"type": "array", "items": {"$ref": "#/definitions/domain.PaymentType"}}
            }
        },
        "dto.JournalEntryResponse": {
            "type": "object",
            "properties": {
                "officeId": {"type": "integer"},
                "transactionId": {"type": "string"}
            }
        },
        "dto.JournalLineRequest": {
            "type": "object",
            "properties": {
                "amount": {"type": "number"},
                "glAccountId": {"type": "integer"}
            }
        },
        "dto.OfficeResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "dto.RateConfigResponse": {
            "type": "object",
            "properties": {
                "canSaveRate": {"type": "boolean"},
                "fetchError": {"type": "string"},
                "isFetchingLiveRate": {"type": "boolean"},
                "lastUpdated": {"type": "string"},
                "liveRate": {"type": "number"},
                "manualRate": {"type": "number"},
                "savedRate": {"type": "number"},
                "savedRateSource": {"type": "string"},
                "useLiveRates": {"type": "boolean"}
            }
        },
        "dto.ReportPageResponse": {
            "type": "object",
            "properties": {
                "limit": {"type": "integer"},
                "nextPageToken": {"type": "string"},
                "offset": {"type": "integer"},
                "rows": {"type": "array", "items": {"$ref": "#/definitions/dto.ReportRowResponse"}},
                "total": {"type": "integer"}
            }
        },
        "dto.ReportRowResponse": {
            "type": "object",
            "properties": {
                "conversionRate": {"type": "number"},
                "creditAccount": {"type": "string"},
                "creditUGX": {"type": "number"},
                "creditUSD": {"type": "number"},
                "date": {"type": "string"},
                "debitAccount": {"type": "string"},
                "debitUGX": {"type": "number"},
                "debitUSD": {"type": "number"},
                "office": {"type": "string"}
            }
        },
        "dto.SaveRateRequest": {
            "type": "object",
            "properties": {
                "rate": {"type": "number"},
                "source": {"type": "string", "enum": ["live", "manual"]}
            }
        },
        "dto.SavedRateResponse": {
            "type": "object",
            "properties": {
                "lastUpdated": {"type": "string"},
                "rate": {"type": "number"},
                "source": {"type": "string"}
            }
        },
        "dto.ToggleRateModeRequest": {
            "type": "object",
            "required": ["useLiveRates"],
            "properties": {
                "useLiveRates": {"type": "boolean"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "JWeb Multi-Currency API",
	Description:      "Backend for the multi-currency journal entry screens: exchange rate configuration, journal entry submission and reporting.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
