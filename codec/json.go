package codec

import "encoding/json"

// JSONCodec reads and writes JSON.
type JSONCodec struct {
	// Indent, when set, switches Encode to indented output.
	Indent string
}

// NewJSONCodec returns a compact JSON codec.
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// WithIndent enables indented output.
func (c *JSONCodec) WithIndent(indent string) *JSONCodec {
	c.Indent = indent
	return c
}

func (c *JSONCodec) Name() string { return "json" }

func (c *JSONCodec) Encode(v any) ([]byte, error) {
	if c.Indent != "" {
		return json.MarshalIndent(v, "", c.Indent)
	}
	return json.Marshal(v)
}

func (c *JSONCodec) Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
