package models

// Severity mirrors a rule level: 1 warns, 2 fails the lint.
type Severity int

const (
	SeverityWarning Severity = 1
	SeverityError   Severity = 2
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "disabled"
	}
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type (
	Problem struct {
		Level   Severity `json:"level"`
		Name    string   `json:"name"`
		Message string   `json:"message"`
	}

	Report struct {
		Input    string    `json:"input"`
		Valid    bool      `json:"valid"`
		Ignored  bool      `json:"ignored"`
		Errors   []Problem `json:"errors"`
		Warnings []Problem `json:"warnings"`
	}
)

// Failed reports whether the lint should fail, counting warnings in strict mode.
func (r *Report) Failed(strict bool) bool {
	if !r.Valid {
		return true
	}
	return strict && len(r.Warnings) > 0
}
