package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/xeipuuv/gojsonschema"

	"socialgraph/core"
	"socialgraph/loader"
)

// graphqlBodySchema validates the request envelope before the query
// reaches the executor.
var graphqlBodySchema = gojsonschema.NewStringLoader(`{
	"type": "object",
	"properties": {
		"query": { "type": "string", "minLength": 1 },
		"variables": { "type": ["object", "null"] },
		"operationName": { "type": ["string", "null"] }
	},
	"required": ["query"],
	"additionalProperties": false
}`)

type graphqlRequest struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

// serveGraphQL validates the body, attaches a fresh loader bundle to
// the request context, and runs the query. Execution errors travel in
// the result envelope, not the HTTP status.
func (a *API) serveGraphQL(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		a.respondError(w, core.BadRequest("unable to read request body"))
		return
	}

	validation, err := gojsonschema.Validate(graphqlBodySchema, gojsonschema.NewBytesLoader(body))
	if err != nil {
		a.respondError(w, core.BadRequest("invalid request body"))
		return
	}
	if !validation.Valid() {
		a.respondError(w, core.BadRequest(validation.Errors()[0].String()))
		return
	}

	var req graphqlRequest
	if err := json.Unmarshal(body, &req); err != nil {
		a.respondError(w, core.BadRequest("invalid request body"))
		return
	}

	// One bundle per request: batching and memoization never leak
	// across requests.
	ctx := loader.NewContext(r.Context(), loader.NewBundle(a.store))
	result := a.graphql.Execute(ctx, req.Query, req.Variables, req.OperationName)
	a.respondJSON(w, result, http.StatusOK)
}
