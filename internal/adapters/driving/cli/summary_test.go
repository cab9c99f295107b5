package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srclink/srclink/internal/core/domain"
)

func TestPrintSummary_PlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer

	result := &domain.RunResult{
		Succeeded: []domain.LinkResult{{Project: &domain.Project{Name: "App"}}},
		Failed:    []domain.LinkResult{{Project: &domain.Project{Name: "Lib"}}},
	}

	printSummary(&buf, result)
	assert.Equal(t, "1 of 2 succeeded\n", buf.String())
}

func TestPrintSummary_SkipsExcludedFromCount(t *testing.T) {
	var buf bytes.Buffer

	result := &domain.RunResult{
		Succeeded: []domain.LinkResult{{Project: &domain.Project{Name: "App"}}},
		Skipped:   []domain.LinkResult{{Project: &domain.Project{Name: "App.Tests"}}},
	}

	printSummary(&buf, result)
	assert.Equal(t, "1 of 1 succeeded\n", buf.String())
}
