package gerror

import "errors"

var (
	// ErrDecode is used when the call data is not a recognized conversion invocation
	ErrDecode = errors.New("only conversion transactions can be decoded")
	// ErrLookup is used when a chain read or a contract call fails
	ErrLookup = errors.New("chain lookup failed")
	// ErrTransactionPending is used when the transaction has not been mined yet
	ErrTransactionPending = errors.New("transaction is pending")
	// ErrUnpackOutput is used when the output of a contract call doesn't match the interface descriptor
	ErrUnpackOutput = errors.New("cannot unpack contract call output")
	// ErrInvalidPath is used when a conversion path is not token, relay, token[, relay, token]...
	ErrInvalidPath = errors.New("invalid conversion path")
	// ErrDescriptorNotFound is used when an interface descriptor cannot be loaded
	ErrDescriptorNotFound = errors.New("interface descriptor not found")
)

// LookupError wraps any failure of the chain reader. It matches ErrLookup with errors.Is.
type LookupError struct {
	Op  string
	Err error
}

func (e *LookupError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the transport error
func (e *LookupError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrLookup
func (e *LookupError) Is(target error) bool {
	return target == ErrLookup
}
