package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogPath = "../../menu/testdata/coffee.yaml"

// run executes the root command with args and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestDiff_Menu(t *testing.T) {
	out, err := run(t, "diff", "testdata/observed.yaml", "testdata/expected.yaml", "--menu", catalogPath)
	require.NoError(t, err)

	assert.Contains(t, out, "cost: 4")
	assert.Contains(t, out, "REPAIR")
	assert.Contains(t, out, `change item(small coffee) attribute "small" to "large"`)
	assert.Contains(t, out, `change item(small coffee) attribute "hot" to "iced"`)
	assert.Contains(t, out, "change item(large iced coffee) quantity to 2")
	assert.Contains(t, out, "delete item(whipped cream)")
}

func TestDiff_SimpleReplacesChangedKeys(t *testing.T) {
	out, err := run(t, "diff", "testdata/observed.yaml", "testdata/expected.yaml", "--simple")
	require.NoError(t, err)

	assert.Contains(t, out, "cost: 4")
	assert.Contains(t, out, "delete item(9000:0:0:0)")
	assert.Contains(t, out, "insert item(9000:2:1:0)")
}

func TestDiff_Identical(t *testing.T) {
	out, err := run(t, "diff", "testdata/expected.yaml", "testdata/expected.yaml", "--menu", catalogPath, "--positional")
	require.NoError(t, err)
	assert.Contains(t, out, "cost: 0")
	assert.NotContains(t, out, "REPAIR")
}

func TestDiff_Errors(t *testing.T) {
	_, err := run(t, "diff", "testdata/observed.yaml", "testdata/expected.yaml")
	assert.ErrorContains(t, err, "--menu or --simple")

	_, err = run(t, "diff", "testdata/observed.yaml", "testdata/missing.yaml", "--simple")
	assert.Error(t, err)

	_, err = run(t, "diff", "testdata/observed.yaml")
	assert.Error(t, err)
}

func TestScore(t *testing.T) {
	out, err := run(t, "score", "testdata/suite.yaml", "--menu", catalogPath, "--concurrency", "2", "--details")
	require.NoError(t, err)

	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "latte-ok")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "muffin-missing")
	assert.Contains(t, out, "insert default item(blueberry muffin)")
	assert.Contains(t, out, "cases: 2  passed: 1  failed: 1  repairs: 1  pass rate: 50.0%")
}

func TestKeys(t *testing.T) {
	out, err := run(t, "keys", "--menu", catalogPath)
	require.NoError(t, err)

	assert.Contains(t, out, "small coffee")
	assert.Contains(t, out, "9000:2:1:1")
	assert.Contains(t, out, "large iced decaf coffee")
	assert.Contains(t, out, "venti iced latte")
	assert.Contains(t, out, "blueberry muffin")

	_, err = run(t, "keys")
	assert.ErrorContains(t, err, "--menu is required")
}
