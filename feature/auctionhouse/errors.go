package auctionhouse

import "fmt"

// ImportError is returned when a commodity import aborts. Records written
// before the failure are kept.
type ImportError struct {
	Op  string
	Err error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("auctionhouse: %s: %v", e.Op, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}
