package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/influence/config"
	"github.com/katalvlaran/influence/influence"
	"github.com/katalvlaran/influence/network"
)

// execute runs the CLI with args and returns what it wrote.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

const chainYAML = `name: chain
nodes:
  - {id: A, value: 1.0}
  - {id: B, value: 1.0}
  - {id: C, value: 1.0, category: IN}
edges:
  - {from: A, to: B, weight: 0.5}
  - {from: B, to: C, weight: 1.0}
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))

	return p
}

func TestRun_Sample(t *testing.T) {
	out, _, err := execute(t, "run")
	require.NoError(t, err)

	assert.Contains(t, out, "Influence index")
	assert.Contains(t, out, "8.978919")   // i3
	assert.Contains(t, out, "122.206256") // total
	assert.Contains(t, out, "network has cycles")
	assert.Contains(t, out, "17.020325") // cumulative IN
	assert.Contains(t, out, "51.576742")
	assert.Contains(t, out, "influence_contributions_total")
	assert.Contains(t, out, "influence_barrier_hits_total")
}

func TestRun_AcyclicFileAgrees(t *testing.T) {
	p := writeFile(t, "chain.yaml", chainYAML)
	out, _, err := execute(t, "run", "-n", p)
	require.NoError(t, err)
	assert.Contains(t, out, "total 2.000000 over 3 nodes")
	assert.Contains(t, out, "agree=true")
	assert.NotContains(t, out, "network has cycles")

	_, _, err = execute(t, "run", "-n", p, "--max-steps", "1")
	assert.ErrorIs(t, err, influence.ErrStepLimit)
}

func TestCumulative_Categories(t *testing.T) {
	out, _, err := execute(t, "cumulative", "IN", "SCC", "OUT", "TT")
	require.NoError(t, err)
	assert.Contains(t, out, "17.020325")
	assert.Contains(t, out, "7.500000")
	assert.Contains(t, out, "1.500000")
	assert.Contains(t, out, "33.000000")

	// --category is the default argument.
	out, _, err = execute(t, "cumulative", "-c", "TT")
	require.NoError(t, err)
	assert.Contains(t, out, "1.500000")
	assert.NotContains(t, out, "17.020325")
}

func TestAnalytical(t *testing.T) {
	out, _, err := execute(t, "analytical", "-n", writeFile(t, "chain.yaml", chainYAML))
	require.NoError(t, err)
	assert.Contains(t, out, "Closed-form centrality")
	assert.Contains(t, out, "total 2.000000")

	cyc := writeFile(t, "cyc.yaml", `nodes:
  - {id: A, value: 1.0}
  - {id: B, value: 1.0}
edges:
  - {from: A, to: B, weight: 1.0}
  - {from: B, to: A, weight: 1.0}
`)
	_, _, err = execute(t, "analytical", "-n", cyc)
	assert.ErrorIs(t, err, influence.ErrSingularMatrix)

	out, _, err = execute(t, "run", "-n", cyc)
	require.NoError(t, err)
	assert.Contains(t, out, "singular")
}

func TestClassify_Write(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "labelled.yaml")
	out, _, err := execute(t, "classify", "--write", dst)
	require.NoError(t, err)
	assert.Contains(t, out, "25 strongly connected components, 0 node(s) differ")
	assert.Contains(t, out, "s1 s2 s3 s4 s5 s6 s7 s8 s9")
	assert.Contains(t, out, "relabelled 0 node(s)")

	f, err := network.ReadFile(dst)
	require.NoError(t, err)
	g, err := f.Build()
	require.NoError(t, err)
	assert.Len(t, g.VerticesByCategory("TT"), 6)

	// Unlabelled input gets every node relabelled.
	out, _, err = execute(t, "classify", "--apply", "-n", writeFile(t, "chain.yaml", chainYAML))
	require.NoError(t, err)
	assert.Contains(t, out, "relabelled 3 node(s)")
}

func TestShow(t *testing.T) {
	out, _, err := execute(t, "show", "component", "TT")
	require.NoError(t, err)
	assert.Contains(t, out, "TT (6)")
	assert.Contains(t, out, "t1 t2 t3 t4 t5 t6")

	out, _, err = execute(t, "show", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "36")
	assert.Contains(t, out, "IN=9")

	out, _, err = execute(t, "show", "nodes", "-n", writeFile(t, "chain.yaml", chainYAML))
	require.NoError(t, err)
	assert.Contains(t, out, "1.000000")

	out, _, err = execute(t, "show", "edges")
	require.NoError(t, err)
	assert.Contains(t, out, "0.333300")
}

func TestConfigErrors(t *testing.T) {
	_, _, err := execute(t, "show", "stats", "--log-format", "xml")
	assert.ErrorIs(t, err, config.ErrBadLogFormat)

	_, _, err = execute(t, "run", "-n", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	cfg := writeFile(t, "cfg.yaml", "category: TT\n")
	out, _, err := execute(t, "cumulative", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "1.500000")
}

func TestVerboseJSONLogs(t *testing.T) {
	_, errOut, err := execute(t, "show", "stats", "-v", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, errOut, `"msg":"network loaded"`)
}

func TestTrace(t *testing.T) {
	_, errOut, err := execute(t, "cumulative", "--trace")
	require.NoError(t, err)
	assert.Contains(t, errOut, "influence.ComputeCumulative")
}
