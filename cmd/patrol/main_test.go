package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guard_patrol/internal/patrol"
)

const sampleLayout = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommandsFromStdin(t *testing.T) {
	testCases := []struct {
		args []string
		want string
	}{
		{[]string{"visited"}, "41\n"},
		{[]string{"loops"}, "6\n"},
		{[]string{"loops", "--workers", "1"}, "6\n"},
		{[]string{"run", "-"}, "41\n6\n"},
	}
	for _, tc := range testCases {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			out, err := execute(t, sampleLayout, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestCommandFromFileWithTrace(t *testing.T) {
	dir := t.TempDir()
	layout := filepath.Join(dir, "layout.txt")
	trace := filepath.Join(dir, "trace.json")
	require.NoError(t, os.WriteFile(layout, []byte(sampleLayout), 0644))

	out, err := execute(t, "", "run", layout, "--trace", trace, "--log-level", "debug")
	require.NoError(t, err)
	assert.Equal(t, "41\n6\n", out)

	b, err := os.ReadFile(trace)
	require.NoError(t, err)
	var dump struct {
		Grid   patrol.Dimension `json:"grid"`
		Result struct {
			Outcome string `json:"outcome"`
			Steps   int    `json:"steps"`
		} `json:"result"`
		Events []patrol.Event `json:"events"`
	}
	require.NoError(t, json.Unmarshal(b, &dump))
	assert.Equal(t, patrol.Dimension{Rows: 10, Cols: 10}, dump.Grid)
	assert.Equal(t, "exited", dump.Result.Outcome)
	assert.Len(t, dump.Events, dump.Result.Steps)
}

func TestCommandParseErrors(t *testing.T) {
	_, err := execute(t, "^.\n..x\n", "visited")
	assert.ErrorIs(t, err, patrol.ErrRaggedRows)

	_, err = execute(t, "..\n..\n", "loops")
	assert.ErrorIs(t, err, patrol.ErrNoGuard)

	_, err = execute(t, "", "visited", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = execute(t, sampleLayout, "visited", "--log-level", "loud")
	assert.Error(t, err)
}

func TestGenCommand(t *testing.T) {
	out, err := execute(t, "", "gen", "--rows", "6", "--cols", "9", "--density", "0.2", "--seed", "5")
	require.NoError(t, err)

	m, _, err := patrol.Parse(out)
	require.NoError(t, err, "generated layout must parse:\n%s", out)
	assert.Equal(t, patrol.Dimension{Rows: 6, Cols: 9}, m.Dimension())

	again, err := execute(t, "", "gen", "--rows", "6", "--cols", "9", "--density", "0.2", "--seed", "5")
	require.NoError(t, err)
	assert.Equal(t, out, again, "same seed, same layout")

	_, err = execute(t, "", "gen", "--rows", "0")
	assert.Error(t, err)
}
