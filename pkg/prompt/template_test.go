package prompt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTemplate(t *testing.T) {
	t.Run("renders file template", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "q.tmpl")
		require.NoError(t, os.WriteFile(path, []byte("Query: {{.Query}}"), 0644))

		tmpl, err := NewTemplate(path, nil)
		require.NoError(t, err)

		out, err := tmpl.Render(map[string]string{"Query": "why is the sky blue"})
		require.NoError(t, err)
		require.Equal(t, "Query: why is the sky blue", out)
		require.Len(t, tmpl.Digest(), 64)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := NewTemplate("", nil)
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewTemplate("/nonexistent/q.tmpl", nil)
		require.Error(t, err)
	})

	t.Run("missing key errors at render", func(t *testing.T) {
		tmpl, err := NewTemplateFromString("t", "{{.Missing}}", nil)
		require.NoError(t, err)
		_, err = tmpl.Render(map[string]string{})
		require.Error(t, err)
	})
}

func TestNewTemplateFromString(t *testing.T) {
	tmpl, err := NewTemplateFromString("inline", "hello {{.Name}}", nil)
	require.NoError(t, err)

	out, err := tmpl.Render(map[string]string{"Name": "world"})
	require.NoError(t, err)
	require.Equal(t, "hello world", out)

	// Reload is a no-op without a backing file.
	require.NoError(t, tmpl.Reload())
}

func TestDigestString(t *testing.T) {
	require.Equal(t, DigestString("abc"), DigestString("abc"))
	require.NotEqual(t, DigestString("abc"), DigestString("abd"))
	require.Len(t, DigestString(""), 64)
}
