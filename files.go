package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"coordedit/coord"
)

type script struct {
	Points []coord.Pair[string, coord.Vec3]
	Edits  []coord.Edit
}

// rawScript defers edit decoding so a bad edit can be reported by index.
type rawScript struct {
	Points []coord.Pair[string, coord.Vec3] `yaml:"points"`
	Edits  []yaml.Node                      `yaml:"edits"`
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	return err == nil, err
}

func loadScript(path string) (*script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read edit script: %w", err)
	}

	var raw rawScript
	if err := decodeStrict(bytes.NewReader(data), &raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse edit script: %w", err)
	}
	if len(raw.Points) == 0 {
		return nil, fmt.Errorf("edit script %s has no points", path)
	}

	s := &script{Points: raw.Points, Edits: make([]coord.Edit, len(raw.Edits))}
	for i := range raw.Edits {
		node := &raw.Edits[i]
		if err := decodeNode(node, &s.Edits[i]); err != nil {
			return nil, fmt.Errorf("failed to parse edit script: edit %d (line %d): %w", i, node.Line, err)
		}
	}
	return s, nil
}

// decodeStrict rejects keys that do not map to a struct field.
func decodeStrict(r io.Reader, v any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	return dec.Decode(v)
}

// decodeNode goes through decodeStrict since Node.Decode ignores unknown keys.
func decodeNode(node *yaml.Node, v any) error {
	data, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	return decodeStrict(bytes.NewReader(data), v)
}
