package bytesize

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts a plain integer number of bytes
// or a string in any form Parse accepts.
func (s *Size[F]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: not a scalar", ErrInvalidValue, value.Line)
	}

	if value.ShortTag() == "!!int" {
		var n uint64
		if err := value.Decode(&n); err != nil {
			return fmt.Errorf("%w: line %d: %s", ErrInvalidValue, value.Line, value.Value)
		}
		*s = Size[F](n)
		return nil
	}

	if value.ShortTag() == "!!float" {
		return fmt.Errorf("%w: line %d: %s", ErrInvalidValue, value.Line, value.Value)
	}

	return s.UnmarshalText([]byte(value.Value))
}

func (s Size[F]) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}
