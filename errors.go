package textflow

import "fmt"

// InvariantError reports corrupted line structure. It is raised with panic,
// never returned: it means a wrap pass produced output that painting and
// hit testing cannot use.
type InvariantError struct {
	// Op is the operation that detected the violation.
	Op string

	// Detail describes the violation.
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("textflow: %s: invariant violated: %s", e.Op, e.Detail)
}
