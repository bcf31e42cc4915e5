package gql

import (
	"encoding/json"
	"errors"

	"github.com/graphql-go/graphql"

	"socialgraph/loader"
)

// errNoLoaders signals a schema executed without a request-scoped
// loader bundle attached to the context.
var errNoLoaders = errors.New("no loader bundle in request context")

// bundleFrom extracts the per-request loader bundle.
func bundleFrom(p graphql.ResolveParams) (*loader.Bundle, error) {
	b, ok := loader.FromContext(p.Context)
	if !ok {
		return nil, errNoLoaders
	}
	return b, nil
}

// decodeArg converts a GraphQL input object (a plain map after
// coercion) into a typed payload via its JSON tags.
func decodeArg(src interface{}, dst interface{}) error {
	raw, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

// stringArg returns a coerced string argument.
func stringArg(p graphql.ResolveParams, name string) string {
	s, _ := p.Args[name].(string)
	return s
}
