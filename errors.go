package unifiedmap

import "fmt"

// InvalidArgumentError is panicked by a constructor that received a
// negative initial capacity or non-positive load factor.
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string { return e.Message }

func invalidArgument(format string, args ...any) error {
	return &InvalidArgumentError{Message: fmt.Sprintf(format, args...)}
}

// CorruptionError is panicked if one of the package's sentinel markers is
// ever compared or hashed through user-visible equality. Reaching this path
// means a sentinel escaped the map, which can only happen through
// unsynchronized concurrent modification or unsafe misuse, since Go's type
// system otherwise prevents a caller from ever boxing a sentinel into K.
type CorruptionError struct {
	Message string
}

func (e *CorruptionError) Error() string { return e.Message }

func corrupted(op string) error {
	return &CorruptionError{Message: "unifiedmap: sentinel " + op + " invoked; " +
		"this indicates unsynchronized concurrent modification or an alien " +
		"object escaping the map"}
}

// IteratorMisuseError is panicked when Remove is called on an iterator
// without a preceding Next, or twice for the same Next.
type IteratorMisuseError struct {
	Message string
}

func (e *IteratorMisuseError) Error() string { return e.Message }

func iteratorMisuse(reason string) error {
	return &IteratorMisuseError{Message: "unifiedmap: " + reason}
}

// ExhaustedError is panicked when Next is called on an iterator that has
// already yielded every live entry.
type ExhaustedError struct {
	Message string
}

func (e *ExhaustedError) Error() string { return e.Message }

func exhausted() error {
	return &ExhaustedError{Message: "unifiedmap: iterator exhausted"}
}

// EntrySetNullContractError is panicked by PutAllExternal when a foreign
// map reports a non-zero length but returns a nil entry slice.
type EntrySetNullContractError struct {
	Message string
}

func (e *EntrySetNullContractError) Error() string { return e.Message }

func entrySetNullContract() error {
	return &EntrySetNullContractError{Message: "unifiedmap: ExternalMap reported a non-zero Len but a nil Entries slice"}
}

// UnsupportedOperationError is returned by Add on the map's views, which are
// read/remove-only facades over the live map. The views have no AddAll
// method.
type UnsupportedOperationError struct {
	Message string
}

func (e *UnsupportedOperationError) Error() string { return e.Message }

func unsupported(op string) error {
	return &UnsupportedOperationError{Message: "unifiedmap: " + op + " is not supported on this view"}
}
