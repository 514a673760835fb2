package agent

import (
	"encoding/json"
	"fmt"
	"math"
)

// validateArgs checks raw JSON arguments against a tool's input schema.
// The schema is the JSON-schema-shaped map the tool advertises: an
// "object" with "properties" (name -> {"type": primitive}) and a
// "required" list. Only primitive types are supported; that is all the
// registered tools declare.
func validateArgs(toolName string, schema any, raw string) error {
	spec, ok := schema.(map[string]any)
	if !ok {
		return nil
	}

	var args map[string]any
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return &ValidationError{Tool: toolName, Reason: "arguments are not a JSON object: " + err.Error()}
	}

	properties, _ := spec["properties"].(map[string]any)

	for _, name := range requiredNames(spec["required"]) {
		if _, present := args[name]; !present {
			return &ValidationError{Tool: toolName, Param: name, Reason: "required parameter missing"}
		}
	}

	for name, value := range args {
		prop, ok := properties[name].(map[string]any)
		if !ok {
			return &ValidationError{Tool: toolName, Param: name, Reason: "parameter not in schema"}
		}
		typ, _ := prop["type"].(string)
		if err := checkType(typ, value); err != nil {
			return &ValidationError{Tool: toolName, Param: name, Reason: err.Error()}
		}
	}

	return nil
}

func requiredNames(v any) []string {
	switch req := v.(type) {
	case []string:
		return req
	case []any:
		names := make([]string, 0, len(req))
		for _, r := range req {
			if s, ok := r.(string); ok {
				names = append(names, s)
			}
		}
		return names
	default:
		return nil
	}
}

func checkType(typ string, value any) error {
	switch typ {
	case "string":
		if _, ok := value.(string); !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
	case "boolean":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("expected boolean, got %T", value)
		}
	case "number":
		if _, ok := value.(float64); !ok {
			return fmt.Errorf("expected number, got %T", value)
		}
	case "integer":
		f, ok := value.(float64)
		if !ok {
			return fmt.Errorf("expected integer, got %T", value)
		}
		if f != math.Trunc(f) {
			return fmt.Errorf("expected integer, got %v", f)
		}
	case "":
		// Property without a declared type accepts anything.
	default:
		return fmt.Errorf("unsupported schema type %q", typ)
	}
	return nil
}
