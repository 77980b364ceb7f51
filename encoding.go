package bytesize

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strconv"
)

// MarshalText implements encoding.TextMarshaler.
func (s Size[F]) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Size[F]) UnmarshalText(text []byte) error {
	size, err := Parse[F](string(text))
	if err != nil {
		return err
	}
	*s = size
	return nil
}

// MarshalJSON writes the display form as JSON string.
func (s Size[F]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts either a string in any form Parse accepts
// or a non-negative integer number of bytes.
func (s *Size[F]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		return s.UnmarshalText([]byte(str))
	}

	n, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidValue, data)
	}
	*s = Size[F](n)
	return nil
}

// MarshalBinary writes the raw count as 8 big endian bytes.
func (s Size[F]) MarshalBinary() ([]byte, error) {
	return binary.BigEndian.AppendUint64(nil, uint64(s)), nil
}

// UnmarshalBinary reads the raw count written by MarshalBinary.
func (s *Size[F]) UnmarshalBinary(data []byte) error {
	if len(data) != 8 {
		return fmt.Errorf("%w: %d bytes", ErrInvalidValue, len(data))
	}
	*s = Size[F](binary.BigEndian.Uint64(data))
	return nil
}

// Set implements flag.Value, so sizes can be used with flag.Var.
func (s *Size[F]) Set(value string) error {
	return s.UnmarshalText([]byte(value))
}
