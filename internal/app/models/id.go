package models

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// ID is a backend identifier. Backends send it as a JSON string or a JSON
// number; it is always kept and written back as a string.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0, bytes.Equal(trimmed, []byte("null")):
		*id = ""
		return nil
	case trimmed[0] == '"':
		var value string
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		*id = ID(value)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(trimmed, &number); err != nil {
		return fmt.Errorf("id must be a string or a number, got %s", trimmed)
	}
	*id = ID(number.String())
	return nil
}

func (id ID) String() string {
	return string(id)
}
