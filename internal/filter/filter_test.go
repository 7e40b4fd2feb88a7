package filter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/enigma/internal/filter"
)

type group struct {
	Name  string `yaml:"name"`
	Cases []struct {
		Pattern     string `yaml:"pattern"`
		Path        string `yaml:"path"`
		Match       bool   `yaml:"match"`
		Description string `yaml:"description"`
	} `yaml:"cases"`
}

func TestPatternGolden(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile("testdata/patterns.yml")
	require.NoError(t, err)

	var groups []group
	require.NoError(t, yaml.Unmarshal(data, &groups))
	require.NotEmpty(t, groups)

	for _, g := range groups {
		t.Run(g.Name, func(t *testing.T) {
			t.Parallel()

			for _, tc := range g.Cases {
				pattern, err := filter.Compile(tc.Pattern)
				require.NoError(t, err, tc.Pattern)

				assert.Equal(t, tc.Match, pattern.Match(tc.Path),
					"pattern %q path %q %s", tc.Pattern, tc.Path, tc.Description)
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	t.Parallel()

	for _, glob := range []string{"trailing\\", "[abc", "[!"} {
		_, err := filter.Compile(glob)
		require.Error(t, err, glob)
	}

	_, err := filter.NewRules([]string{"ok"}, []string{"[bad"})
	require.ErrorContains(t, err, "exclude")
}

func tree(t *testing.T, files ...string) string {
	t.Helper()

	root := t.TempDir()

	for _, name := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(name), 0o600))
	}

	return root
}

func TestResolve(t *testing.T) {
	t.Parallel()

	root := tree(t, "a.txt", "b.log", "sub/c.txt", "sub/deep/d.txt", "vendor/e.txt")

	rules, err := filter.NewRules([]string{"*.txt"}, []string{"*/vendor/*"})
	require.NoError(t, err)

	sel, err := filter.Resolve([]string{root}, rules)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "sub", "c.txt"),
		filepath.Join(root, "sub", "deep", "d.txt"),
	}, sel.Files)
	assert.Equal(t, 5, sel.Scanned)
	assert.Equal(t, 2, sel.Skipped)
}

func TestResolveExplicitFiles(t *testing.T) {
	t.Parallel()

	root := tree(t, "keep.log", "x.txt")
	explicit := filepath.Join(root, "keep.log")

	rules, err := filter.NewRules(nil, []string{"*.log"})
	require.NoError(t, err)

	sel, err := filter.Resolve([]string{explicit, root, explicit}, rules)
	require.NoError(t, err)

	assert.Equal(t, []string{explicit, filepath.Join(root, "x.txt")}, sel.Files,
		"explicit files bypass the rules and duplicates are dropped")
	assert.Equal(t, 1, sel.Skipped)
}

func TestResolveErrors(t *testing.T) {
	t.Parallel()

	_, err := filter.Resolve([]string{filepath.Join(t.TempDir(), "missing")}, filter.Rules{})
	require.Error(t, err)

	root := tree(t, "a.log")

	rules, err := filter.NewRules([]string{"*.txt"}, nil)
	require.NoError(t, err)

	_, err = filter.Resolve([]string{root}, rules)
	require.ErrorIs(t, err, filter.ErrNoFiles)
}

func TestGather(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "ignore.jsonc")
	require.NoError(t, os.WriteFile(file, []byte(`[
  // lock files
  "*.lock",
  "vendor/*", /* trailing comma follows */
]`), 0o600))

	globs, err := filter.Gather([]string{"*.tmp"}, []string{file})
	require.NoError(t, err)
	assert.Equal(t, []string{"*.tmp", "*.lock", "vendor/*"}, globs)

	require.NoError(t, os.WriteFile(file, []byte(`{"not": "a list"}`), 0o600))

	_, err = filter.Gather(nil, []string{file})
	require.Error(t, err)

	_, err = filter.Gather(nil, []string{filepath.Join(t.TempDir(), "missing")})
	require.Error(t, err)
}
