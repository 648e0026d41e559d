package utils

import (
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestIsValidInput(t *testing.T) {
	for _, tc := range []struct {
		input string
		want  bool
	}{
		{"cat", true},
		{"a", true},
		{"", false},
		{"Cat", false},
		{"c4t", false},
		{"ca t", false},
		{"café", false},
	} {
		assert.Check(t, is.Equal(IsValidInput(tc.input), tc.want), "input %q", tc.input)
	}
	assert.Check(t, is.Equal(NormalizeInput("  HeLLo \n"), "hello"))
}

func TestCreateRankList(t *testing.T) {
	assert.DeepEqual(t, CreateRankList(3), []uint16{1, 2, 3})
	assert.DeepEqual(t, CreateRankList(0), []uint16{})
}

func TestTOMLRoundTrip(t *testing.T) {
	type section struct {
		Name  string `toml:"name"`
		Limit int    `toml:"limit"`
	}
	type doc struct {
		Dict section `toml:"dict"`
	}

	path := filepath.Join(t.TempDir(), "conf.toml")
	assert.NilError(t, SaveTOMLFile(doc{Dict: section{Name: "words", Limit: 3}}, path))

	var got doc
	assert.NilError(t, LoadTOMLFile(path, &got))
	assert.Check(t, is.Equal(got.Dict.Name, "words"))
	assert.Check(t, is.Equal(got.Dict.Limit, 3))

	raw, err := ParseTOMLWithRecovery(path)
	assert.NilError(t, err)
	dict, ok := ExtractSection(raw, "dict")
	assert.Assert(t, ok)
	limit, ok := ExtractInt(dict, "limit")
	assert.Check(t, ok)
	assert.Check(t, is.Equal(limit, 3))
	name, ok := ExtractString(dict, "name")
	assert.Check(t, ok)
	assert.Check(t, is.Equal(name, "words"))
	_, ok = ExtractBool(dict, "name")
	assert.Check(t, !ok)
}

func TestResolveSource(t *testing.T) {
	assert.Check(t, is.Equal(ResolveSource("data", "dictionary.txt"), filepath.Join("data", "dictionary.txt")))
	assert.Check(t, is.Equal(ResolveSource("data", ""), ""))
	abs := filepath.Join(string(os.PathSeparator), "tmp", "words.txt")
	assert.Check(t, is.Equal(ResolveSource("data", abs), abs))
}

func TestCheckDirStatus(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "conf")
	result := CheckDirStatus(dir)
	assert.NilError(t, result.Error)
	assert.Check(t, result.Exists)
	assert.Check(t, result.Writable)
	assert.Check(t, FileExists(dir))
}

func TestResolveFlagSource(t *testing.T) {
	work := t.TempDir()
	assert.NilError(t, os.MkdirAll(filepath.Join(work, "data"), 0o755))
	local := filepath.Join(work, "data", "dictionary.txt")
	assert.NilError(t, os.WriteFile(local, []byte("cat"), 0o644))

	pr := &PathResolver{workDir: work}
	dataDir := filepath.Join(work, "data")

	assert.Check(t, is.Equal(pr.ResolveFlagSource(dataDir, "./data/dictionary.txt"), local))
	assert.Check(t, is.Equal(pr.ResolveFlagSource(dataDir, "dictionary.txt"), local))
	assert.Check(t, is.Equal(pr.ResolveFlagSource(dataDir, "extra.txt"), filepath.Join(dataDir, "extra.txt")))
	assert.Check(t, is.Equal(pr.ResolveFlagSource(dataDir, ""), ""))
	assert.Check(t, is.Equal(pr.ResolveFlagSource(dataDir, local), local))
}
