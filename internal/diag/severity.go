package diag

// Severity orders diagnostics. Lexical and syntax problems are always
// SevError; SevInfo carries observability output such as phase timings.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

var severityNames = [...]string{
	SevInfo:    "INFO",
	SevWarning: "WARNING",
	SevError:   "ERROR",
}

// Valid reports whether s is a declared severity. Values read back from the
// parse cache are checked with it.
func (s Severity) Valid() bool { return s <= SevError }

func (s Severity) String() string {
	if !s.Valid() {
		return "UNKNOWN"
	}
	return severityNames[s]
}
