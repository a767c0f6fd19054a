package report

// Null discards all notifications. Useful when scaffgen is embedded as a
// library and the host owns its own output.
type Null struct{}

// NewNull creates a Null reporter.
func NewNull() *Null {
	return &Null{}
}

func (*Null) Added(string)           {}
func (*Null) Overwritten(string)     {}
func (*Null) SkippedExisting(string) {}
func (*Null) Injected(string)        {}
