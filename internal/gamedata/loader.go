package gamedata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
)

// validator is implemented by data files that check their own contents.
type validator interface {
	validate() error
}

// Load decodes a JSON file from the embedded data.
func Load[T any](filename string) (T, error) {
	return loadFS[T](dataFS, filename)
}

// loadFS decodes filename from fsys. Unknown fields are rejected so a typo in
// a data file fails loudly instead of zeroing a field.
func loadFS[T any](fsys fs.FS, filename string) (T, error) {
	var result T

	content, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return result, fmt.Errorf("read %s: %w", filename, err)
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&result); err != nil {
		return result, fmt.Errorf("parse %s: %w", filename, err)
	}

	if v, ok := any(&result).(validator); ok {
		if err := v.validate(); err != nil {
			return result, fmt.Errorf("%s: %w", filename, err)
		}
	}
	return result, nil
}
