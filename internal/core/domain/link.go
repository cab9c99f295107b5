package domain

// RevisionStamp is the immutable identifier of the source-tree state at
// link time. It is resolved exactly once per run and shared read-only by
// every project.
type RevisionStamp string

// LinkStatus is the outcome of linking one project.
type LinkStatus string

// Link outcomes.
const (
	// LinkSucceeded means the symbol file was indexed.
	LinkSucceeded LinkStatus = "succeeded"

	// LinkFailed means the project could not be linked. The run continues.
	LinkFailed LinkStatus = "failed"

	// LinkSkipped means the project matched an ignore pattern.
	// Skipped projects count toward neither success nor failure.
	LinkSkipped LinkStatus = "skipped"
)

// WarningKind classifies a verification warning.
type WarningKind string

// Verification warning kinds.
const (
	// WarningMissingChecksum means the symbol file records no entry for a
	// compiled source file.
	WarningMissingChecksum WarningKind = "missing-checksum"

	// WarningChecksumMismatch means the on-disk content hash differs from
	// the checksum recorded at compile time.
	WarningChecksumMismatch WarningKind = "checksum-mismatch"
)

// VerificationWarning is an advisory finding from checksum verification.
// Warnings are logged, never escalated to a failure.
type VerificationWarning struct {
	Kind WarningKind

	// Path is the compiled source path the warning concerns.
	Path string
}

// LinkResult is the per-project outcome of a run. It is created by the
// engine, consumed by the reporter, then discarded.
type LinkResult struct {
	Project *Project

	Status LinkStatus

	// Warnings holds checksum verification findings, if any.
	Warnings []VerificationWarning

	// Err carries the failure cause when Status is LinkFailed.
	Err error
}

// RunResult aggregates per-project results for one run.
type RunResult struct {
	Succeeded []LinkResult
	Failed    []LinkResult
	Skipped   []LinkResult
}

// OK reports whether the run succeeded: true iff no project failed.
// Skipped projects do not affect the outcome.
func (r *RunResult) OK() bool {
	return len(r.Failed) == 0
}

// Linked returns the number of projects that were actually processed,
// i.e. everything except skips.
func (r *RunResult) Linked() int {
	return len(r.Succeeded) + len(r.Failed)
}
