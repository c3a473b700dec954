package gramtab

import "errors"

// Structural errors. These indicate a malformed grammar or misuse of
// the API and abort a query as a whole. A query against a well-formed
// grammar that simply does not match returns an empty result list and
// no error; failure to match is data, not an error condition.
var (
	// ErrKeyNotFound is returned by Record.Get for a tier absent from
	// the record.
	ErrKeyNotFound = errors.New("gramtab: tier not present in record")

	// ErrSymbolNotFound is returned when a variable reference or a
	// registry lookup names a rule the grammar does not define.
	ErrSymbolNotFound = errors.New("gramtab: rule not defined in grammar")

	// ErrRecursionLimitExceeded is returned when rule expansion nests
	// deeper than the configured limit (see RecursionLimit).
	ErrRecursionLimitExceeded = errors.New("gramtab: rule expansion exceeds recursion limit")

	// ErrCycleDetected is returned when a rule expansion reaches itself
	// again without having consumed any input. Such an expansion can
	// never terminate.
	ErrCycleDetected = errors.New("gramtab: cyclic rule expansion without input consumption")
)
