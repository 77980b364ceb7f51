package lib

type Error string

func (e Error) Error() string { return string(e) }

// ErrorCode carries the process exit code of err
type ErrorCode struct {
	error
	code int
}

func NewErrorCode(err error, code int) ErrorCode {
	return ErrorCode{err, code}
}

func (e *ErrorCode) Code() int {
	return e.code
}

func (e ErrorCode) Unwrap() error {
	return e.error
}
