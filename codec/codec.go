// Package codec names the wire formats wrapper values can be written in and
// picks one by format name or file extension.
package codec

import (
	"path/filepath"
	"sort"
	"strings"

	apperrors "github.com/kleinwareio/liketype/errors"
)

// Codec turns values into bytes and back.
type Codec interface {
	Name() string
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

var registry = map[string]func() Codec{
	"json":        func() Codec { return NewJSONCodec() },
	"yaml":        func() Codec { return NewYAMLCodec() },
	"yml":         func() Codec { return NewYAMLCodec() },
	"msgpack":     func() Codec { return NewMsgpackCodec() },
	"mpk":         func() Codec { return NewMsgpackCodec() },
	"messagepack": func() Codec { return NewMsgpackCodec() },
}

// Formats lists the accepted format names, aliases included.
func Formats() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ForFormat returns a fresh codec for a format name, ignoring case.
func ForFormat(format string) (Codec, error) {
	build, ok := registry[strings.ToLower(strings.TrimSpace(format))]
	if !ok {
		return nil, apperrors.InvalidArgument("format", "unsupported format "+format).
			WithDetail("supported", Formats())
	}
	return build(), nil
}

// ForPath picks the codec matching the extension of path.
func ForPath(path string) (Codec, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return nil, apperrors.InvalidArgument("path", "no extension to infer a format from: "+path)
	}
	return ForFormat(ext)
}

// MustEncode encodes v or panics.
func MustEncode(c Codec, v any) []byte {
	data, err := c.Encode(v)
	if err != nil {
		panic(err)
	}
	return data
}
