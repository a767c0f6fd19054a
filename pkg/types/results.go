package types

// Vars is the variable-bindings tree handed to the template renderer.
// Values may be strings, numbers, booleans, nested maps or slices.
type Vars map[string]any

// PairStatus describes what happened to one (directive, body) pair.
type PairStatus string

const (
	// PairWritten means the body was written and injections ran.
	PairWritten PairStatus = "written"
	// PairSkippedExists means skip_exists was set and the target existed.
	PairSkippedExists PairStatus = "skipped-exists"
	// PairSkippedGlob means skip_glob matched at least one existing path.
	PairSkippedGlob PairStatus = "skipped-glob"
)

// Outcome is the result of processing a single pair.
type Outcome struct {
	Status  PairStatus
	Message string
}

// Skipped reports whether the pair was short-circuited by a skip condition.
func (o Outcome) Skipped() bool {
	return o.Status != PairWritten
}

// Result is the merged result of a full generation call. Message is the
// newline-joined concatenation of the non-empty messages of all pairs that
// were not skipped.
type Result struct {
	Message string
}
