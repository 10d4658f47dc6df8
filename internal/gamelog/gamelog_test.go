package gamelog_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tablutai/tablut/internal/gamelog"
	"github.com/tablutai/tablut/pkg/board"
)

func TestAppendWritesAttributionLineThenBoard(t *testing.T) {
	var buf bytes.Buffer
	l := gamelog.New(&buf)

	pos := board.NewInitialPosition()
	m := board.Move{From: board.NewSquare(2, 4), To: board.NewSquare(2, 2)}
	require.NoError(t, l.Append(1, board.White, m, pos))

	out := buf.String()
	lines := strings.Split(out, "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "1. white e3c3", lines[0])
	assert.Len(t, lines, board.Size+3) // attribution + 9 rows + trailing blank + split artifact
}

func TestAppendNormalizesEmptyCellsToASingleGlyph(t *testing.T) {
	var buf bytes.Buffer
	l := gamelog.New(&buf)

	pos := board.NewInitialPosition()
	require.NoError(t, l.Append(0, board.White, board.Move{}, pos))

	out := buf.String()
	assert.NotContains(t, out, "camp")
	assert.Contains(t, out, ".")
}
