package query

import (
	"fmt"
	"slices"
	"strings"
)

// Key identifies one cacheable fetch. Parts are compared in order; changing
// any part addresses a different entry.
type Key []string

func NewKey(parts ...any) Key {
	k := make(Key, len(parts))
	for i, p := range parts {
		switch v := p.(type) {
		case string:
			k[i] = v
		case fmt.Stringer:
			k[i] = v.String()
		default:
			k[i] = fmt.Sprint(v)
		}
	}
	return k
}

func (k Key) With(part any) Key {
	return append(slices.Clone(k), NewKey(part)...)
}

// Parent drops the last part. The parent of a single-part key is the empty
// key, which prefixes every key.
func (k Key) Parent() Key {
	if len(k) == 0 {
		return Key{}
	}
	return slices.Clone(k[:len(k)-1])
}

// Joined is the key as used in metric names.
func (k Key) Joined() string {
	return strings.Join(k, "_")
}

func (k Key) String() string {
	return "[" + strings.Join(k, ", ") + "]"
}
