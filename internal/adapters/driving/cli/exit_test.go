package cli

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srclink/srclink/internal/core/domain"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "success", err: nil, want: ExitOK},
		{name: "link failure", err: ErrLinkFailed, want: ExitLinkFailed},
		{name: "no provider", err: fmt.Errorf("select: %w", domain.ErrNoProvider), want: ExitNoProvider},
		{name: "solution missing", err: fmt.Errorf("%w: /x/All.sln", domain.ErrSolutionNotFound), want: ExitSolutionNotFound},
		{name: "anything else", err: assert.AnError, want: ExitLinkFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
