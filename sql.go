package bytesize

import (
	"database/sql/driver"
	"fmt"
	"strconv"
)

// Value implements driver.Valuer.
// The count is stored as decimal digits, as SQL integers are signed.
func (s Size[F]) Value() (driver.Value, error) {
	return strconv.FormatUint(uint64(s), 10), nil
}

// Scan implements sql.Scanner.
func (s *Size[F]) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*s = 0
	case int64:
		if v < 0 {
			return fmt.Errorf("%w: %d", ErrInvalidValue, v)
		}
		*s = Size[F](v)
	case string:
		return s.scanDigits(v)
	case []byte:
		return s.scanDigits(string(v))
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidValue, value)
	}
	return nil
}

func (s *Size[F]) scanDigits(v string) error {
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidValue, v)
	}
	*s = Size[F](n)
	return nil
}

// GormDataType keeps the column textual so counts above math.MaxInt64
// are not converted to REAL by sqlite.
func (Size[F]) GormDataType() string {
	return "string"
}
