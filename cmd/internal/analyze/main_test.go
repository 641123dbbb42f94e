package analyze

import (
	"bytes"
	"context"
	"flag"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blue a7 d7, one open mill on the top row
const pos = "1,1,x/x3/x3/x3/x3/x3/x3/x3 8 10"

func execute(t *testing.T, args ...string) (subcommands.ExitStatus, string) {
	t.Helper()
	var out bytes.Buffer
	c := &Command{stdout: &out}
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(fs)
	require.NoError(t, fs.Parse(args))
	st := c.Execute(context.Background(), fs)
	return st, out.String()
}

func TestEvaluate(t *testing.T) {
	st, out := execute(t, "-quiet", "-evaluate", pos)
	require.Equal(t, subcommands.ExitSuccess, st)
	assert.Equal(t, " blue eval=150\n", out)

	st, out = execute(t, "-quiet", "-evaluate", "-color", "orange", pos)
	require.Equal(t, subcommands.ExitSuccess, st)
	assert.Equal(t, " orange eval=94\n", out)
}

func TestBoardAndExplain(t *testing.T) {
	st, out := execute(t, "-evaluate", "-explain", pos)
	require.Equal(t, subcommands.ExitSuccess, st)
	assert.Contains(t, out, "7 B--------B--------.\n")
	assert.Contains(t, out, "hand: blue:8 orange:10\n")
	assert.Contains(t, out, "open mills")
}

func TestSearch(t *testing.T) {
	st, out := execute(t, "-quiet", "-depth", "1", pos)
	require.Equal(t, subcommands.ExitSuccess, st)
	assert.Contains(t, out, "AI analysis:\n")
	assert.Contains(t, out, " depth=1 ")
	assert.Contains(t, out, " pv=[h1 ")
}

func TestUsageErrors(t *testing.T) {
	cases := [][]string{
		{},
		{"-color", "green", pos},
		{"1,1,x 8 10"},
		{"-weights", "{", pos},
	}
	for _, args := range cases {
		st, out := execute(t, args...)
		assert.Equal(t, subcommands.ExitUsageError, st, "%q", args)
		assert.Empty(t, out)
	}
}
