package gamedata

import (
	"encoding/json"
	"io/fs"

	"github.com/samdwyer/monstertamer/internal/errors"
)

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	return LoadFrom[T](dataFS, filename)
}

// LoadFrom reads and unmarshals a JSON file from fsys.
func LoadFrom[T any](fsys fs.FS, filename string) (T, error) {
	var result T

	content, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return result, errors.WrapWithCode(err, errors.CodeNotFound, "failed to read data file "+filename)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, errors.WrapWithCode(err, errors.CodeValidation, "failed to parse JSON from "+filename)
	}

	return result, nil
}

// MustLoad reads and unmarshals a JSON file, panicking on error.
// Use this for data that must be present for the game to function.
func MustLoad[T any](filename string) T {
	result, err := Load[T](filename)
	if err != nil {
		panic(err)
	}
	return result
}
