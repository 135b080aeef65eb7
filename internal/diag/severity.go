package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevHint is for advisory hints.
	SevHint Severity = iota
	// SevInfo is for informational diagnostics.
	SevInfo
	// SevOptimization reports an optimization a later pass performed.
	SevOptimization
	// SevFailedOptimization reports an optimization a later pass wanted
	// to perform but could not.
	SevFailedOptimization
	// SevWarning is for legal but suspect input.
	SevWarning
	// SevError is for input the grammar rejects or internal faults.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevHint:
		return "HINT"
	case SevInfo:
		return "INFO"
	case SevOptimization:
		return "OPTIMIZATION"
	case SevFailedOptimization:
		return "FAILED OPTIMIZATION"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
