package input

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relstor/ptk/keys"
)

func TestPipeInputSendTextReadKeys(t *testing.T) {
	p := NewPipeInput("")
	defer p.Close()

	p.SendText("ab")

	got := p.ReadKeys()
	require.Len(t, got, 2)
	require.Equal(t, keys.Any, got[0].Key)
	require.Equal(t, "a", got[0].Data)
	require.Equal(t, "b", got[1].Data)
}

func TestPipeInputReadKeysDrainsOnce(t *testing.T) {
	p := NewPipeInput("")
	defer p.Close()

	p.SendText("x")
	require.Len(t, p.ReadKeys(), 1)
	require.Empty(t, p.ReadKeys())
}

func TestPipeInputFlushResolvesLoneEscape(t *testing.T) {
	p := NewPipeInput("")
	defer p.Close()

	p.SendBytes([]byte{0x1b})
	require.Empty(t, p.ReadKeys(), "a lone Escape should wait for a possible CSI/SS3 follow-up")

	flushed := p.FlushKeys()
	require.Len(t, flushed, 1)
	require.Equal(t, keys.Escape, flushed[0].Key)
}

func TestPipeInputAttachNotifiesOnReady(t *testing.T) {
	p := NewPipeInput("")
	defer p.Close()

	notified := 0
	detach := p.Attach(func() { notified++ })

	p.SendText("a")
	require.Equal(t, 1, notified)

	detach()
	p.SendText("b")
	require.Equal(t, 1, notified, "expected no further notifications after detach")
}

func TestPipeInputCloseStopsReadsAndSends(t *testing.T) {
	p := NewPipeInput("")
	p.SendText("a")
	require.NoError(t, p.Close())
	require.True(t, p.Closed())

	require.Empty(t, p.ReadKeys())
	p.SendText("b")
	require.Empty(t, p.ReadKeys(), "sends after Close must not resurrect the feed")
}

func TestPipeInputTypeaheadHashDefaultsWhenEmpty(t *testing.T) {
	p := NewPipeInput("")
	require.NotEmpty(t, p.TypeaheadHash())

	named := NewPipeInput("session-1")
	require.Equal(t, "session-1", named.TypeaheadHash())
}

func TestPipeInputFilenoErrors(t *testing.T) {
	p := NewPipeInput("")
	_, err := p.Fileno()
	require.Error(t, err)
}
