// SPDX-License-Identifier: MIT

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

const testCatalog = `#b0ffb0||10|3|0|1|||Petersen graph
#b0ffb0|||6|3|4|||T(5)
#ffb0b0||21|10|4|5|||conference
#b0ffb0||36|14|4|6|||U3(3)
`

// run executes srgcat with args in a scratch directory and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func scratch(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "brouwer.tmp"), []byte(testCatalog), 0o600))
	return dir
}

func TestVersion(t *testing.T) {
	scratch(t)
	out, err := run(t, "version")
	require.NoError(t, err)
	require.Equal(t, "srgcat version "+Version+"\n", out)
}

func TestClassify(t *testing.T) {
	scratch(t)

	out, err := run(t, "classify", "13", "6", "2", "3")
	require.NoError(t, err)
	require.Equal(t, "(13,6,2,3): PaleyGraph(13) [paley]\n", out)

	out, err = run(t, "classify", "27", "10", "1", "5", "--all")
	require.NoError(t, err)
	require.Contains(t, out, "complement(SchlaefliGraph()) [complement]")

	out, err = run(t, "classify", "25", "12", "5", "6", "--all")
	require.NoError(t, err)
	require.Contains(t, out, "  matches paley\n  matches oa-block\n")

	out, err = run(t, "classify", "36", "14", "4", "6")
	require.NoError(t, err)
	require.Contains(t, out, "no recipe")

	_, err = run(t, "classify", "13", "6", "two", "3")
	require.Error(t, err)
	_, err = run(t, "classify", "13", "6")
	require.Error(t, err)
}

func TestBuild(t *testing.T) {
	dir := scratch(t)
	db := filepath.Join(dir, "srg.db")
	prom := filepath.Join(dir, "srgcat.prom")

	out, err := run(t, "build", "--catalog", "brouwer.tmp", "--vmax", "40",
		"--workers", "2", "--store", db, "--metrics", prom)
	require.NoError(t, err)
	require.Equal(t, "(36  , 14  , 4   , 6   ): U3(3)\n", out)

	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	require.Contains(t, string(data), "srgcat_leftovers 1")
	require.Contains(t, string(data), `srgcat_classified_total{family="sporadic"} 6`)

	_, err = os.Stat(db)
	require.NoError(t, err)
}

func TestBuild_FeasibleFile(t *testing.T) {
	dir := scratch(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "feasible.txt"), []byte("(10, 6, 3, 4)\n"), 0o600))

	out, err := run(t, "build", "--catalog", "brouwer.tmp", "--feasible", "feasible.txt")
	require.NoError(t, err)
	require.Equal(t, "(36  , 14  , 4   , 6   ): U3(3)\n", out)

	_, err = run(t, "build", "--feasible", "missing.txt")
	require.Error(t, err)
}

func TestRealize(t *testing.T) {
	scratch(t)

	out, err := run(t, "realize", "10", "3", "0", "1", "--verify")
	require.NoError(t, err)
	require.Contains(t, out, "(10,3,0,1): complement(JohnsonGraph(5))\n")
	require.Contains(t, out, "vertices 10, edges 15, degree 3..3\n  diameter 2\n  layers 1+3+6\n")
	require.Contains(t, out, "verified")

	out, err = run(t, "realize", "10", "3", "0", "1", "--spectrum", "--verify")
	require.NoError(t, err)
	require.Contains(t, out, "  spectrum 3^1 1^5 -2^4\n")

	out, err = run(t, "realize", "5", "2", "0", "1", "--edges")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4+5)

	out, err = run(t, "realize", "27", "16", "10", "8", "--subconstituent", "--id-prefix", "s", "--no-labels")
	require.NoError(t, err)
	require.Contains(t, out, "  subconstituent at s0: (16,10,6,6)\n  common neighbours 10 adjacent, 8 non-adjacent\n")

	out, err = run(t, "realize", "10", "3", "0", "1", "--subconstituent")
	require.NoError(t, err)
	require.Contains(t, out, "  subconstituent at 0: 3 vertices, degree 0..0\n  common neighbours 0 adjacent, 1 non-adjacent\n")

	_, err = run(t, "realize", "36", "14", "4", "6")
	require.Error(t, err)
}

func TestCatalogCommands(t *testing.T) {
	dir := scratch(t)
	db := filepath.Join(dir, "srg.db")

	out, err := run(t, "catalog", "stats", "--catalog", "brouwer.tmp")
	require.NoError(t, err)
	require.Equal(t, "statistics:\n - 1 impossible\n - 0 open\n - 3 realizable\n", out)

	out, err = run(t, "catalog", "import", "--catalog", "brouwer.tmp", "--store", db)
	require.NoError(t, err)
	require.Contains(t, out, "imported 4 entries")

	out, err = run(t, "catalog", "dump", "--format", "sqlite", "--store", db)
	require.NoError(t, err)
	require.Equal(t, ""+
		"10   3    0    1    exists     Petersen graph\n"+
		"10   6    3    4    exists     T(5)\n"+
		"21   10   4    5    impossible conference\n"+
		"36   14   4    6    exists     U3(3)\n", out)

	yml := filepath.Join(dir, "cat.yaml")
	_, err = run(t, "catalog", "dump", "--catalog", "brouwer.tmp", "--as", "yaml", "-o", yml)
	require.NoError(t, err)
	out, err = run(t, "catalog", "stats", "--catalog", yml, "--format", "yaml")
	require.NoError(t, err)
	require.Contains(t, out, "3 realizable")

	_, err = run(t, "catalog", "import", "--catalog", "brouwer.tmp")
	require.Error(t, err)
	_, err = run(t, "catalog", "dump", "--catalog", "brouwer.tmp", "--as", "csv")
	require.Error(t, err)
}

func TestFeasible(t *testing.T) {
	scratch(t)
	out, err := run(t, "feasible", "--vmax", "10")
	require.NoError(t, err)
	require.Equal(t, "5 2 0 1\n9 4 1 2\n10 3 0 1\n10 6 3 4\n", out)

	_, err = run(t, "feasible", "--vmin", "20", "--vmax", "10")
	require.Error(t, err)
}
