package postgres

import (
	"encoding/json"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
)

// decodeJSONColumn unmarshals a JSONB column into out. Documents written by
// older clients are sometimes double-encoded (the JSON array wrapped in a JSON
// string); those are unwrapped before decoding so callers always see the real
// structure.
func decodeJSONColumn(data datatypes.JSON, out any) error {
	if len(data) == 0 {
		return nil
	}

	raw := []byte(data)
	for {
		var wrapped string
		if err := json.Unmarshal(raw, &wrapped); err != nil {
			break
		}
		raw = []byte(wrapped)
	}

	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	return errors.Wrap(json.Unmarshal(raw, out), "failed to decode JSONB column")
}

// encodeJSONColumn marshals a value into a JSONB column. Nil slices become
// empty arrays so reads never have to deal with SQL NULL.
func encodeJSONColumn(value any) (datatypes.JSON, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode JSONB column")
	}
	if string(raw) == "null" {
		raw = []byte("[]")
	}

	return datatypes.JSON(raw), nil
}
