// internal/common/validation/schema.go
package validation

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// askRequestSchema is the wire contract for POST /api/ask. Defaults for
// omitted fields are applied after validation, not here.
const askRequestSchema = `{
  "type": "object",
  "additionalProperties": false,
  "required": ["question"],
  "properties": {
    "question": {
      "type": "string",
      "minLength": 1,
      "maxLength": 500
    },
    "age_min": {
      "type": "integer",
      "minimum": 18,
      "maximum": 120
    },
    "age_max": {
      "type": "integer",
      "minimum": 18,
      "maximum": 120
    },
    "sample_size": {
      "type": "integer",
      "minimum": 5,
      "maximum": 100
    },
    "sex": {
      "type": "string"
    },
    "states": {
      "type": "array",
      "items": {"type": "string"}
    },
    "occupations": {
      "type": "array",
      "items": {"type": "string"}
    },
    "model": {
      "type": "string"
    }
  }
}`

var askSchema = gojsonschema.NewStringLoader(askRequestSchema)

// ValidateAskRequest checks a raw request body against the ask schema.
// On violation it returns the first offending field and its message.
func ValidateAskRequest(body []byte) error {
	result, err := gojsonschema.Validate(askSchema, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}

	if !result.Valid() {
		first := result.Errors()[0]
		return fmt.Errorf("%s: %s", first.Field(), first.Description())
	}

	return nil
}
