package liketype

import (
	"strings"

	apperrors "github.com/kleinwareio/liketype/errors"
)

// RenderStrategy selects how a Seq renders itself. It never affects equality.
type RenderStrategy int

const (
	// CountOnly renders the type name and element count: Orders[4].
	CountOnly RenderStrategy = iota
	// AllValuesSingleLine renders every element on one line: Orders[2] = { '14', '22' }.
	AllValuesSingleLine
	// AllValuesMultiLine renders every element on its own line.
	AllValuesMultiLine
)

// String returns the string representation of the strategy.
func (s RenderStrategy) String() string {
	switch s {
	case CountOnly:
		return "count-only"
	case AllValuesSingleLine:
		return "single-line"
	case AllValuesMultiLine:
		return "multi-line"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the defined strategies.
func (s RenderStrategy) Valid() bool {
	return s >= CountOnly && s <= AllValuesMultiLine
}

// ParseRenderStrategy parses names such as "count-only", "SingleLine" or
// "all_values_multi_line".
func ParseRenderStrategy(name string) (RenderStrategy, error) {
	normalized := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(name))
	normalized = strings.TrimPrefix(normalized, "allvalues")
	switch normalized {
	case "countonly", "count":
		return CountOnly, nil
	case "singleline", "single":
		return AllValuesSingleLine, nil
	case "multiline", "multi":
		return AllValuesMultiLine, nil
	}
	return CountOnly, apperrors.InvalidArgument("strategy", "unknown render strategy: "+name)
}

// MarshalText implements encoding.TextMarshaler.
func (s RenderStrategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, apperrors.InvalidArgument("strategy", "unknown render strategy: "+s.String())
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *RenderStrategy) UnmarshalText(data []byte) error {
	parsed, err := ParseRenderStrategy(string(data))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
