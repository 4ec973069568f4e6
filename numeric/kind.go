package numeric

import (
	"fmt"
	"strings"

	"github.com/arloliu/apportion/types"
)

// Kind identifies a target numeric kind chosen at runtime.
type Kind uint8

const (
	// KindInvalid is the zero Kind; it has no adapter.
	KindInvalid Kind = iota
	KindInt32
	KindInt64
	KindInt
	KindFloat32
	KindFloat64
	KindBigFloat
	KindDecimal
)

var kindNames = [...]string{
	KindInvalid:  "invalid",
	KindInt32:    "int32",
	KindInt64:    "int64",
	KindInt:      "int",
	KindFloat32:  "float32",
	KindFloat64:  "float64",
	KindBigFloat: "bigfloat",
	KindDecimal:  "decimal",
}

// unsupportedKinds lists kind names that are recognized but have no adapter.
var unsupportedKinds = map[string]string{
	"uint":    "unsigned",
	"uint8":   "unsigned",
	"uint16":  "unsigned",
	"uint32":  "unsigned",
	"uint64":  "unsigned",
	"uintptr": "unsigned",
	"byte":    "unsigned",
	"int8":    "narrower than 32 bits",
	"int16":   "narrower than 32 bits",
}

// String returns the canonical name of k.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Integral reports whether k is a signed integer kind allocated with
// remainder correction.
func (k Kind) Integral() bool {
	return k == KindInt32 || k == KindInt64 || k == KindInt
}

// Valid reports whether k has an adapter.
func (k Kind) Valid() bool {
	return k > KindInvalid && int(k) < len(kindNames)
}

// ParseKind parses a kind name, case-insensitively.
//
// Accepted names are int32, int64, int, float32, float64, bigfloat and
// decimal. Unsigned kinds and integers narrower than 32 bits are rejected, as
// is any unknown name.
//
// Parameters:
//   - s: Kind name
//
// Returns:
//   - Kind: The parsed kind
//   - error: Wraps types.ErrUnsupportedNumericKind when s has no adapter
//
// Example:
//
//	k, err := numeric.ParseKind("int64")
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))

	for k := KindInt32; int(k) < len(kindNames); k++ {
		if kindNames[k] == name {
			return k, nil
		}
	}

	if reason, ok := unsupportedKinds[name]; ok {
		return KindInvalid, fmt.Errorf("%s is %s: %w", name, reason, types.ErrUnsupportedNumericKind)
	}

	return KindInvalid, fmt.Errorf("unknown kind %q: %w", s, types.ErrUnsupportedNumericKind)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("kind %d: %w", uint8(k), types.ErrUnsupportedNumericKind)
	}

	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseKind.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed

	return nil
}
