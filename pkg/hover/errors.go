package hover

import "fmt"

// ClassMismatchError is returned by Register when the resolved widget does
// not have the expected native window class. No instance is created.
type ClassMismatchError struct {
	Target string // description of the registration target
	Want   string // expected window class
	Got    string // actual window class
}

func (e *ClassMismatchError) Error() string {
	return fmt.Sprintf("hover: %s resolved to window class %q, want %q", e.Target, e.Got, e.Want)
}
