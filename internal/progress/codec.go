package progress

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const ledgerSchemaURL = "schema://ledger.json"

// ledgerSchema accepts {"YYYY-Www": {"<skill>": <non-negative int>}}.
const ledgerSchema = `{
	"type": "object",
	"propertyNames": {"pattern": "^[0-9]{4}-W[0-9]{2}$"},
	"additionalProperties": {
		"type": "object",
		"additionalProperties": {"type": "integer", "minimum": 0}
	}
}`

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(ledgerSchema))
	if err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(ledgerSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(ledgerSchemaURL)
})

// Encode serializes l as JSON.
func Encode(l Ledger) (string, error) {
	if l == nil {
		l = Ledger{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return "", fmt.Errorf("marshal ledger: %w", err)
	}
	return string(b), nil
}

// Decode parses and validates a stored ledger payload. Any error means the
// payload must be discarded as a whole.
func Decode(raw string) (Ledger, error) {
	parsed, err := jsonschema.UnmarshalJSON(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile ledger schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var l Ledger
	if err := json.Unmarshal([]byte(raw), &l); err != nil {
		return nil, fmt.Errorf("unmarshal ledger: %w", err)
	}
	if l == nil {
		l = Ledger{}
	}
	return l, nil
}
