package shortener

import (
	"fmt"

	"github.com/sqids/sqids-go"
)

// Codec turns session sequence numbers into short URL-safe codes and back.
type Codec struct {
	sqids *sqids.Sqids
}

func New() (*Codec, error) {
	s, err := sqids.New(sqids.Options{
		MinLength: 6,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sqids encoder: %w", err)
	}
	return &Codec{sqids: s}, nil
}

func (c *Codec) Encode(id uint64) (string, error) {
	return c.sqids.Encode([]uint64{id})
}

// Decode returns the id behind code. Only the canonical encoding of a single
// id is accepted, so every session has exactly one valid code.
func (c *Codec) Decode(code string) (uint64, bool) {
	ids := c.sqids.Decode(code)
	if len(ids) != 1 {
		return 0, false
	}
	canonical, err := c.Encode(ids[0])
	if err != nil || canonical != code {
		return 0, false
	}
	return ids[0], true
}
