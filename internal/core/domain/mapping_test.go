package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryRelative(t *testing.T) {
	tests := []struct {
		name     string
		root     string
		compiled string
		want     string
	}{
		{
			name:     "unix path under root",
			root:     "/repo",
			compiled: "/repo/src/A.cs",
			want:     "src/A.cs",
		},
		{
			name:     "windows separators normalised",
			root:     `C:\repo`,
			compiled: `C:\repo\src\A.cs`,
			want:     "src/A.cs",
		},
		{
			name:     "no leading separator remains",
			root:     "/repo/",
			compiled: "/repo/src/B.cs",
			want:     "src/B.cs",
		},
		{
			name:     "nested directories",
			root:     "/repo",
			compiled: "/repo/src/sub/dir/C.cs",
			want:     "src/sub/dir/C.cs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RepositoryRelative(tt.root, tt.compiled)
			assert.Equal(t, tt.want, got)
			assert.False(t, strings.HasPrefix(got, "/"))
			assert.NotContains(t, got, "\\")
		})
	}
}

func TestPathMapping_InsertionOrder(t *testing.T) {
	m := NewPathMapping()
	m.Set("/repo/b.cs", "b.cs")
	m.Set("/repo/a.cs", "a.cs")
	m.Set("/repo/c.cs", "c.cs")

	var keys []string
	m.Walk(func(local, _ string) {
		keys = append(keys, local)
	})

	assert.Equal(t, []string{"/repo/b.cs", "/repo/a.cs", "/repo/c.cs"}, keys)
}

func TestPathMapping_LastWriteWins(t *testing.T) {
	m := NewPathMapping()

	_, replaced := m.Set("/repo/a.cs", "first")
	assert.False(t, replaced)

	prev, replaced := m.Set("/repo/a.cs", "second")
	assert.True(t, replaced)
	assert.Equal(t, "first", prev)

	require.Equal(t, 1, m.Len())
	got, ok := m.Get("/repo/a.cs")
	require.True(t, ok)
	assert.Equal(t, "second", got)
}
