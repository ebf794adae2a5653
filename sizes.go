package launcher

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

var errBadSize = errors.New("size must be digits with an optional k/m/g/t suffix")

// ParseByteSize parses a human-readable byte quantity: digits optionally
// followed by one of k/K, m/M, g/G, t/T denoting binary multiples of
// 1024. No suffix means a raw byte count. A leading minus sign is
// accepted so that the "-1" unspecified sentinel parses.
func ParseByteSize(s string) (int64, error) {
	digits := s
	neg := false
	if len(digits) > 0 && (digits[0] == '-' || digits[0] == '+') {
		neg = digits[0] == '-'
		digits = digits[1:]
	}

	var shift uint
	if len(digits) > 0 {
		switch digits[len(digits)-1] {
		case 'k', 'K':
			shift = 10
		case 'm', 'M':
			shift = 20
		case 'g', 'G':
			shift = 30
		case 't', 'T':
			shift = 40
		}
		if shift != 0 {
			digits = digits[:len(digits)-1]
		}
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || n < 0 {
		return 0, &FormatError{Value: s, Err: errBadSize}
	}
	if shift > 0 && n > math.MaxInt64>>shift {
		return 0, &FormatError{Value: s, Err: errors.New("size out of range")}
	}
	v := n << shift
	if neg {
		v = -v
	}
	return v, nil
}

// ByteSize is an int64 byte count that can be unmarshaled from a suffixed
// size string.
type ByteSize int64

func (b *ByteSize) UnmarshalText(text []byte) error {
	v, err := ParseByteSize(string(text))
	if err != nil {
		return err
	}
	*b = ByteSize(v)
	return nil
}

// String renders the size back using the largest binary suffix that
// divides it exactly.
func (b ByteSize) String() string {
	v := int64(b)
	if v > 0 {
		suffixes := []struct {
			shift  uint
			letter string
		}{
			{40, "t"}, {30, "g"}, {20, "m"}, {10, "k"},
		}
		for _, s := range suffixes {
			if v%(1<<s.shift) == 0 {
				return strconv.FormatInt(v>>s.shift, 10) + s.letter
			}
		}
	}
	return strconv.FormatInt(v, 10)
}
