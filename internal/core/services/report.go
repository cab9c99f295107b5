package services

import (
	"github.com/srclink/srclink/internal/core/domain"
	"github.com/srclink/srclink/internal/logger"
)

// Reporter turns per-project results into the run summary.
type Reporter struct {
	log *logger.Log
}

// NewReporter creates a reporter.
func NewReporter(log *logger.Log) *Reporter {
	return &Reporter{log: log}
}

// Report writes the run summary: the "N of M succeeded" line plus an
// indented list of failed project names. Skipped projects are listed
// separately and count toward neither side.
func (r *Reporter) Report(result *domain.RunResult) {
	r.log.Info("%d of %d projects linked successfully", len(result.Succeeded), result.Linked())

	if len(result.Failed) > 0 {
		r.log.Info("failed:")
		done := r.log.Indent()
		for _, res := range result.Failed {
			r.log.Info("%s: %v", res.Project.Name, res.Err)
		}
		done()
	}

	if len(result.Skipped) > 0 {
		r.log.Info("skipped:")
		done := r.log.Indent()
		for _, res := range result.Skipped {
			r.log.Info("%s", res.Project.Name)
		}
		done()
	}
}
