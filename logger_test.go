package sprite

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	img := &Sheet8{Width: 2, Pixels: []Pixel{red, Background}}
	data, err := img.Encode()
	require.NoError(t, err)
	_, err = DecodeSheet8(data)
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "sprite sheet encoded")
	require.Contains(t, out, "sprite sheet decoded")
	require.Contains(t, out, "colors=1")

	SetLogger(nil)
	buf.Reset()
	_, err = img.Encode()
	require.NoError(t, err)
	require.Empty(t, buf.String())
	require.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}
