package gamedata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Load reads a JSON file from the embedded filesystem, validates it against
// its sibling schema (foo.json -> foo.schema.json) when one exists, and
// unmarshals it.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := validate(filename, content); err != nil {
		return result, err
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// MustLoad reads and unmarshals a JSON file, panicking on error.
// Use this for data that must be present for the simulation to function.
func MustLoad[T any](filename string) T {
	result, err := Load[T](filename)
	if err != nil {
		panic(err)
	}
	return result
}

func schemaName(filename string) string {
	return strings.TrimSuffix(filename, ".json") + ".schema.json"
}

func validate(filename string, content []byte) error {
	name := schemaName(filename)
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read schema %s: %w", name, err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, bytes.NewReader(raw)); err != nil {
		return fmt.Errorf("failed to add schema %s: %w", name, err)
	}
	schema, err := compiler.Compile(name)
	if err != nil {
		return fmt.Errorf("failed to compile schema %s: %w", name, err)
	}

	var doc any
	if err := json.Unmarshal(content, &doc); err != nil {
		return fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%s does not match %s: %w", filename, name, err)
	}
	return nil
}
