package openapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
)

var ErrInvalidID = errors.New("invalid id: must be a JSON string or an integer")

var integerIDRegex = regexp.MustCompile(`^-?[0-9]+$`)

// ID is an identifier the service encodes inconsistently: user creation returns
// a string ("id": "123") while registration returns a number ("id": 4).
// Both decode to the same textual form.
type ID string

func (i ID) String() string {
	return string(i)
}

func (i *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*i = ""

		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		*i = ID(s)

		return nil
	}

	if !integerIDRegex.Match(data) {
		return ErrInvalidID
	}

	*i = ID(data)

	return nil
}
