package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolFile_Lookup(t *testing.T) {
	symbols := &SymbolFile{
		Path: "/repo/bin/App.pdb",
		Sources: []SourceRef{
			{Path: `C:\repo\src\A.cs`, Algorithm: ChecksumMD5, Checksum: "aa"},
			{Path: `C:\repo\src\B.cs`, Algorithm: ChecksumSHA256, Checksum: "bb"},
		},
	}

	ref, ok := symbols.Lookup(`C:\repo\src\B.cs`)
	require.True(t, ok)
	assert.Equal(t, ChecksumSHA256, ref.Algorithm)

	// Recorded paths come from case-insensitive filesystems.
	ref, ok = symbols.Lookup(`c:\REPO\src\a.cs`)
	require.True(t, ok)
	assert.Equal(t, "aa", ref.Checksum)

	_, ok = symbols.Lookup(`C:\repo\src\C.cs`)
	assert.False(t, ok)
}

func TestRunResult_OK(t *testing.T) {
	p := &Project{Name: "App"}

	ok := &RunResult{Succeeded: []LinkResult{{Project: p, Status: LinkSucceeded}}}
	assert.True(t, ok.OK())
	assert.Equal(t, 1, ok.Linked())

	failed := &RunResult{
		Succeeded: []LinkResult{{Project: p, Status: LinkSucceeded}},
		Failed:    []LinkResult{{Project: p, Status: LinkFailed}},
	}
	assert.False(t, failed.OK())
	assert.Equal(t, 2, failed.Linked())

	// Skips count toward neither side.
	skipped := &RunResult{Skipped: []LinkResult{{Project: p, Status: LinkSkipped}}}
	assert.True(t, skipped.OK())
	assert.Equal(t, 0, skipped.Linked())
}
