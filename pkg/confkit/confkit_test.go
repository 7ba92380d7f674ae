package confkit

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolvePath(t *testing.T) {
	t.Run("relative joins base", func(t *testing.T) {
		got := ResolvePath("/etc/app", "llm.yaml")
		require.Equal(t, filepath.Join("/etc/app", "llm.yaml"), got)
	})

	t.Run("absolute wins", func(t *testing.T) {
		got := ResolvePath("/etc/app", "/opt/llm.yaml")
		require.Equal(t, "/opt/llm.yaml", got)
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("CONFKIT_TEST_DIR", "/var/conf")
		got := ResolvePath("/etc/app", "$CONFKIT_TEST_DIR/llm.yaml")
		require.Equal(t, "/var/conf/llm.yaml", got)
	})
}

func TestSectionHydrate(t *testing.T) {
	type dummy struct{ Name string }

	t.Run("empty file is a no-op", func(t *testing.T) {
		var s Section[dummy]
		err := s.Hydrate("/base", func(string) (*dummy, error) {
			t.Fatal("loader should not be called")
			return nil, nil
		})
		require.NoError(t, err)
		require.Nil(t, s.Value)
	})

	t.Run("loads and stores value", func(t *testing.T) {
		s := Section[dummy]{File: "dummy.yaml"}
		err := s.Hydrate("/base", func(path string) (*dummy, error) {
			require.Equal(t, filepath.Join("/base", "dummy.yaml"), path)
			return &dummy{Name: "loaded"}, nil
		})
		require.NoError(t, err)
		require.NotNil(t, s.Value)
		require.Equal(t, "loaded", s.Value.Name)
	})

	t.Run("loader error propagates", func(t *testing.T) {
		s := Section[dummy]{File: "broken.yaml"}
		boom := errors.New("boom")
		err := s.Hydrate("/base", func(string) (*dummy, error) { return nil, boom })
		require.ErrorIs(t, err, boom)
	})
}

func TestProjectRoot(t *testing.T) {
	root, err := ProjectRoot()
	require.NoError(t, err)
	require.True(t, fileExists(filepath.Join(root, "go.mod")))
}
