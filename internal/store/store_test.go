package store_test

import (
	"errors"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tablutai/tablut/internal/store"
	"github.com/tablutai/tablut/pkg/board"
)

func TestSaveThenLoadRoundTrip(t *testing.T) {
	s, err := store.Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	rec := store.Record{
		MatchID: "match-1",
		Side:    board.White,
		Moves: []board.Move{
			{From: board.NewSquare(2, 4), To: board.NewSquare(2, 2)},
		},
		Result:     board.Result{Outcome: board.WhiteWins, Reason: board.KingEscaped},
		FinishedAt: time.Now().Truncate(time.Second),
	}
	require.NoError(t, s.Save(rec))

	got, err := s.Load("match-1")
	require.NoError(t, err)
	assert.Equal(t, rec.MatchID, got.MatchID)
	assert.Equal(t, rec.Side, got.Side)
	assert.Equal(t, rec.Moves, got.Moves)
	assert.Equal(t, rec.Result, got.Result)
	assert.True(t, rec.FinishedAt.Equal(got.FinishedAt))
}

func TestLoadMissingMatchIsErrKeyNotFound(t *testing.T) {
	s, err := store.Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Load("does-not-exist")
	assert.True(t, errors.Is(err, badger.ErrKeyNotFound))
}

func TestListReturnsEveryRecord(t *testing.T) {
	s, err := store.Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Save(store.Record{MatchID: "a", Side: board.White}))
	require.NoError(t, s.Save(store.Record{MatchID: "b", Side: board.Black}))

	records, err := s.List()
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
