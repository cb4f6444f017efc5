package socket

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/wlcore/transport"
	"github.com/bnema/wlcore/wire"
)

func TestWriteMessageRejectsOversizedMessage(t *testing.T) {
	c, s, err := transport.NewPipePair()
	require.NoError(t, err)
	defer c.Close()
	defer s.Close()

	bs := New(transport.NewAny(c))
	hugeArray := make([]byte, 1<<16)
	err = bs.WriteMessage(1, 0, []wire.ArgValue{wire.ArgArrayVal(hugeArray)})
	require.Error(t, err, "a message whose size overflows the 16-bit size field must be rejected")
}

func TestFlushOnEmptyOutgoingBufferIsANoop(t *testing.T) {
	c, s, err := transport.NewPipePair()
	require.NoError(t, err)
	defer c.Close()
	defer s.Close()

	bs := New(transport.NewAny(c))
	require.NoError(t, bs.Flush())
	require.Equal(t, 0, bs.PendingOutBytes())
}
