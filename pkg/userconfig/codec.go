package userconfig

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Document is the decoded user configuration
type Document map[string]interface{}

// Codec converts a Document to and from its file representation
type Codec interface {
	Name() string
	Decode(data []byte) (Document, error)
	Encode(doc Document) ([]byte, error)
}

// CodecFor picks the codec matching the file extension
func CodecFor(file string) Codec {
	if strings.EqualFold(filepath.Ext(file), ".toml") {
		return tomlCodec{}
	}
	return yamlCodec{}
}

type yamlCodec struct{}

func (yamlCodec) Name() string { return "yaml" }

// Decode goes through a plain map: decoding into Document directly makes
// yaml.v3 produce Document for every nested mapping too.
func (yamlCodec) Decode(data []byte) (Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Document{}, nil
	}
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return Document{}, nil
	}
	return Document(raw), nil
}

func (yamlCodec) Encode(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(map[string]interface{}(doc)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type tomlCodec struct{}

func (tomlCodec) Name() string { return "toml" }

func (tomlCodec) Decode(data []byte) (Document, error) {
	raw := map[string]interface{}{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return Document(raw), nil
}

func (tomlCodec) Encode(doc Document) ([]byte, error) {
	data, err := toml.Marshal(map[string]interface{}(doc))
	if err != nil {
		return nil, fmt.Errorf("toml: %w", err)
	}
	return data, nil
}
