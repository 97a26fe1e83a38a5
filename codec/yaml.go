package codec

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// YAMLCodec reads and writes YAML documents.
type YAMLCodec struct {
	Indent int
}

// NewYAMLCodec returns a YAML codec indenting by two spaces.
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{Indent: 2}
}

func (c *YAMLCodec) Name() string { return "yaml" }

func (c *YAMLCodec) Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(c.Indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *YAMLCodec) Decode(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
