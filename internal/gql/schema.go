package gql

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

//go:embed schema.graphql
var schemaSDL string

var (
	schemaOnce   sync.Once
	loadedSchema *ast.Schema
	loadErr      error
)

// SchemaSDL returns the embedded indexer schema source.
func SchemaSDL() string {
	return schemaSDL
}

// LoadSchema parses and validates the embedded indexer schema. The result is
// cached; callers must not mutate it.
func LoadSchema() (*ast.Schema, error) {
	schemaOnce.Do(func() {
		s, err := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphql", Input: schemaSDL})
		if err != nil {
			loadErr = fmt.Errorf("load schema: %w", err)
			return
		}
		loadedSchema = s
	})
	return loadedSchema, loadErr
}

// ValidateDocument parses an operation document and validates it against the
// indexer schema.
func ValidateDocument(query string) (*ast.QueryDocument, error) {
	s, err := LoadSchema()
	if err != nil {
		return nil, err
	}
	doc, errs := gqlparser.LoadQuery(s, query)
	if len(errs) > 0 {
		return nil, fmt.Errorf("validate document: %w", errs)
	}
	return doc, nil
}

// OperationNames lists the named operations of a document in source order.
func OperationNames(doc *ast.QueryDocument) []string {
	if doc == nil {
		return nil
	}
	names := make([]string, 0, len(doc.Operations))
	for _, op := range doc.Operations {
		if op.Name == "" {
			continue
		}
		names = append(names, op.Name)
	}
	return names
}
