package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davrell/ewgraph/dfs"
	"github.com/davrell/ewgraph/mst"
)

// writeFile drops content into a temp file and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// runCmd executes cmd with args and returns its captured stdout.
func runCmd(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

const triangleGraph = "3 3\n0 1 1.0\n1 2 2.0\n0 2 4.0\n"

const diamondDAG = "4 4\n0 1 1.0\n0 2 2.0\n1 3 3.0\n2 3 1.0\n"

func TestMSTCmd(t *testing.T) {
	path := writeFile(t, "triangle.txt", triangleGraph)

	for _, method := range []string{mst.MethodKruskal, mst.MethodLazyPrim, mst.MethodEagerPrim} {
		out, err := runCmd(t, newMSTCmd(), "--method", method, "--verify", path)
		require.NoError(t, err, method)
		assert.Contains(t, out, "3.00000", method)
	}

	_, err := runCmd(t, newMSTCmd(), "--method", "boruvka", path)
	assert.ErrorIs(t, err, mst.ErrUnknownMethod)
}

func TestSPCmd(t *testing.T) {
	path := writeFile(t, "diamond.txt", diamondDAG)

	// Dijkstra: best route to 3 goes through 2.
	out, err := runCmd(t, newSPCmd(), path, "0")
	require.NoError(t, err)
	assert.Contains(t, out, "0 to 3 (3.00)")
	assert.Contains(t, out, "0->2 2.00")

	// Longest: the 0->1->3 route wins.
	out, err = runCmd(t, newSPCmd(), "--longest", path, "0")
	require.NoError(t, err)
	assert.Contains(t, out, "0 to 3 (4.00)")

	// Unreachable vertices are reported, not omitted.
	out, err = runCmd(t, newSPCmd(), path, "3")
	require.NoError(t, err)
	assert.Contains(t, out, "3 to 0: no path")

	_, err = runCmd(t, newSPCmd(), path, "eight")
	assert.Error(t, err)
}

func TestTopoCmd(t *testing.T) {
	path := writeFile(t, "diamond.txt", diamondDAG)

	out, err := runCmd(t, newTopoCmd(), path)
	require.NoError(t, err)
	lines := strings.Fields(out)
	require.Len(t, lines, 4)
	assert.Equal(t, "0", lines[0])
	assert.Equal(t, "3", lines[3])

	// Symbol form: names come out in dependency order.
	symbols := writeFile(t, "deps.txt", "libc/app\nkernel/libc\n")
	out, err = runCmd(t, newTopoCmd(), "--delim", "/", symbols)
	require.NoError(t, err)
	assert.Equal(t, []string{"kernel", "libc", "app"}, strings.Fields(out))

	// Cyclic input names the cycle in the failure.
	cyclic := writeFile(t, "cyclic.txt", "2 2\n0 1 1.0\n1 0 1.0\n")
	_, err = runCmd(t, newTopoCmd(), cyclic)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

func TestCPMCmd(t *testing.T) {
	path := writeFile(t, "jobs.toml", `
[[job]]
name = "dig"
duration = 2.0
successors = [1]

[[job]]
name = "pour"
duration = 3.0
`)

	out, err := runCmd(t, newCPMCmd(), path)
	require.NoError(t, err)
	assert.Contains(t, out, "dig")
	assert.Contains(t, out, "pour")
	assert.Contains(t, out, "5.0")

	_, err = runCmd(t, newCPMCmd(), writeFile(t, "empty.toml", ""))
	assert.Error(t, err)
}

func TestOpenInput(t *testing.T) {
	in, err := openInput("-")
	require.NoError(t, err)
	require.NoError(t, in.Close())

	_, err = openInput(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestSetVersion(t *testing.T) {
	SetVersion("v1.2.3", "abc123", "2026-08-30")
	assert.Equal(t, "v1.2.3", version)
	assert.Equal(t, "abc123", commit)
	assert.Equal(t, "2026-08-30", date)
}
