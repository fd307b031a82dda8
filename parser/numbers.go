package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// registerAliases maps the Z16 ABI register names to their indices 0-7.
var registerAliases = map[string]int{
	"t0": 0,
	"ra": 1,
	"sp": 2,
	"s0": 3,
	"s1": 4,
	"t1": 5,
	"a0": 6,
	"a1": 7,
}

// ParseRegister resolves a register token ("x0".."x7" or an ABI alias)
// to its register index.
func ParseRegister(token string) (int, error) {
	t := strings.TrimSpace(token)
	lower := strings.ToLower(t)

	if strings.HasPrefix(lower, "x") && len(lower) > 1 {
		n, err := strconv.Atoi(lower[1:])
		if err != nil || n < 0 || n > 7 {
			return 0, fmt.Errorf("invalid register number %q", token)
		}
		return n, nil
	}
	if n, ok := registerAliases[lower]; ok {
		return n, nil
	}
	return 0, fmt.Errorf("unknown register %q", token)
}

// ParseImmediate parses a numeric literal token, including the %hi()/%lo()
// relocation-like operators. Accepted literal radices: 0b/0B binary,
// 0x/0X hex, leading-zero octal, and signed decimal, delegating to
// strconv.ParseInt's base-0 auto-detection.
func ParseImmediate(token string) (int32, error) {
	t := strings.TrimSpace(token)
	lower := strings.ToLower(t)

	if strings.HasPrefix(lower, "%hi(") && strings.HasSuffix(t, ")") {
		v, err := parseLiteral(t[4 : len(t)-1])
		if err != nil {
			return 0, err
		}
		return v >> 7, nil
	}
	if strings.HasPrefix(lower, "%lo(") && strings.HasSuffix(t, ")") {
		v, err := parseLiteral(t[4 : len(t)-1])
		if err != nil {
			return 0, err
		}
		return v & 0x7F, nil
	}
	return parseLiteral(t)
}

func parseLiteral(t string) (int32, error) {
	t = strings.TrimSpace(t)
	if t == "" {
		return 0, fmt.Errorf("empty numeric literal")
	}
	v, err := strconv.ParseInt(t, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("malformed numeric literal %q: %w", t, err)
	}
	return int32(v), nil
}
