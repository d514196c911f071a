package gamedata

import "fmt"

// ImportError is returned when a catalog import aborts. Writes committed
// before the failure are kept.
type ImportError struct {
	Op  string
	Err error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("gamedata: %s: %v", e.Op, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

func importError(op string, format string, args ...any) error {
	return &ImportError{Op: op, Err: fmt.Errorf(format, args...)}
}
