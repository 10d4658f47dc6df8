package matchproto_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tablutai/tablut/internal/matchproto"
)

func TestFrameRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, matchproto.WriteFrame(&buf, []byte("hello")))

	payload, err := matchproto.ReadFrame(&buf)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(payload))
}

func TestReadFrameShortReadIsError(t *testing.T) {
	buf := bytes.NewBuffer([]byte{0, 0, 0, 1}) // length says 1 byte, none follows
	_, err := matchproto.ReadFrame(buf)
	assert.Error(t, err)
}

func TestWriteMoveThenReadMessage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, matchproto.WriteMove(&buf, matchproto.EngineMove{From: "e2", To: "e4", Turn: "W"}))

	payload, err := matchproto.ReadFrame(&buf)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"from":"e2"`)
}
