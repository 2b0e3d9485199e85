package cli_test

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voltflip/board"
	"github.com/katalvlaran/voltflip/internal/cli"
)

func promptWith(t *testing.T, script string) (board.Constraints, string, error) {
	t.Helper()
	var out bytes.Buffer
	cons, err := cli.PromptConstraints(bufio.NewReader(strings.NewReader(script)), &out)

	return cons, out.String(), err
}

func TestPromptConstraints_HappyPath(t *testing.T) {
	cons, out, err := promptWith(t, "5,5,5,5,5\n0,0,0,0,0\n5,5,5,5,5\n0,0,0,0,0\n")
	require.NoError(t, err)
	assert.Equal(t, allOnes(), cons)
	assert.Contains(t, out, "row sums")
	assert.Contains(t, out, "column specials")
}

func TestPromptConstraints_RepromptsOnGarbage(t *testing.T) {
	script := "nonsense\n5,5,5,5,5\n0,0,0,0,0\n5,5,5,5,5\n0,0,0,0,0\n"
	cons, out, err := promptWith(t, script)
	require.NoError(t, err)
	assert.Equal(t, allOnes(), cons)
	assert.Contains(t, out, "five comma-separated integers")
}

func TestPromptConstraints_StartsOverOnInvalidPuzzle(t *testing.T) {
	// First puzzle: row sums 25 vs column sums 30. Second is consistent.
	script := "5,5,5,5,5\n0,0,0,0,0\n6,6,6,6,6\n0,0,0,0,0\n" +
		"5,5,5,5,5\n0,0,0,0,0\n5,5,5,5,5\n0,0,0,0,0\n"
	cons, out, err := promptWith(t, script)
	require.NoError(t, err)
	assert.Equal(t, allOnes(), cons)
	assert.Contains(t, out, "invalid puzzle")
	assert.Contains(t, out, "start over")
}

func TestPromptConstraints_InputClosed(t *testing.T) {
	_, _, err := promptWith(t, "5,5,5,5,5\n0,0,0,0,0\n")
	assert.ErrorIs(t, err, cli.ErrInputClosed)
}

func TestPromptConstraints_LastLineWithoutNewline(t *testing.T) {
	cons, _, err := promptWith(t, "5,5,5,5,5\n0,0,0,0,0\n5,5,5,5,5\n0,0,0,0,0")
	require.NoError(t, err)
	assert.Equal(t, allOnes(), cons)
}
