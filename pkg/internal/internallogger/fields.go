package internallogger

import (
	"github.com/joeydtaylor/meditation/pkg/logschema"
	"go.uber.org/zap"
)

func fieldsFromMap(fields map[string]interface{}) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(fields))
	for key, value := range fields {
		if key == "" {
			continue
		}
		out = append(out, zap.Any(key, value))
	}
	return out
}

// withSchema stamps the schema identifier unless an option already set one.
func withSchema(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	if _, ok := out[logschema.FieldSchema]; !ok {
		out[logschema.FieldSchema] = logschema.SchemaID
	}
	return out
}
