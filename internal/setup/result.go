package setup

// Status classifies the outcome of a single setup step.
type Status int

const (
	// StatusOK means the step completed and the run continues.
	StatusOK Status = iota
	// StatusWarning means the step failed but the run continues. Only
	// best-effort steps (version-control reset) may warn.
	StatusWarning
	// StatusFatal means the step failed and the run aborts immediately.
	StatusFatal
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusWarning:
		return "warning"
	case StatusFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// StepResult is the typed outcome of one setup step. The driver halts
// on fatal results and continues on warnings, so the fatal/best-effort
// distinction lives in data rather than in control flow.
type StepResult struct {
	Step   string
	Status Status
	Err    error
}

// OK reports a successful step.
func OK(step string) StepResult {
	return StepResult{Step: step, Status: StatusOK}
}

// Warn reports a non-fatal step failure.
func Warn(step string, err error) StepResult {
	return StepResult{Step: step, Status: StatusWarning, Err: err}
}

// Fatal reports a step failure that aborts the run.
func Fatal(step string, err error) StepResult {
	return StepResult{Step: step, Status: StatusFatal, Err: err}
}
