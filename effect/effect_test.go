package effect_test

import (
	"testing"

	"github.com/blaster151/adt/effect"
	"github.com/stretchr/testify/require"
)

func TestOf_NormalizesKnownAndUnknown(t *testing.T) {
	require.Equal(t, effect.Pure, effect.Of(""))
	require.Equal(t, effect.IO, effect.Of("IO"))
	require.Equal(t, effect.Async, effect.Of("Async"))
	require.Equal(t, effect.Unknown, effect.Of("Telepathy"))
}

func TestAnnotate_FreshIdentityPerWrap(t *testing.T) {
	a := effect.Annotate(map[string]any{"tag": "Run"}, effect.IO)
	b := effect.Annotate(map[string]any{"tag": "Run"}, effect.IO)
	require.Equal(t, effect.IO, a.Effect)
	require.NotEqual(t, a.Identity(), b.Identity(), "each annotation gets its own handle")
	require.False(t, a.Effect.Pure())
	require.True(t, effect.Pure.Pure())
}
