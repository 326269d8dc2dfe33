package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHexColor parses "#RRGGBB" or "RRGGBB" into its components.
func ParseHexColor(hex string) (r, g, b uint8, err error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid hex colour %q: want 6 hex digits", hex)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex colour %q: %w", hex, err)
	}

	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}
