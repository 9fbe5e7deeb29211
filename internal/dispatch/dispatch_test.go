package dispatch

import (
	"testing"

	"chromamem/internal/palette"
	"chromamem/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeymap(t *testing.T) {
	km := DefaultKeymap()
	want := map[string]palette.Color{
		"1": palette.Red,
		"2": palette.Green,
		"3": palette.Blue,
		"4": palette.Yellow,
	}
	for key, c := range want {
		got, ok := km.Lookup(key)
		require.True(t, ok, key)
		assert.Equal(t, c, got, key)
		assert.Equal(t, key, km.KeyFor(c))
	}
	assert.Equal(t, []string{"1", "2", "3", "4"}, km.Keys())

	for _, key := range []string{"0", "5", "r", "", "enter"} {
		_, ok := km.Lookup(key)
		assert.False(t, ok, key)
	}
}

func TestNewKeymap_Errors(t *testing.T) {
	tests := []struct {
		name string
		keys map[palette.Color]string
	}{
		{"missing color", map[palette.Color]string{palette.Red: "1", palette.Green: "2", palette.Blue: "3"}},
		{"empty key", map[palette.Color]string{palette.Red: "1", palette.Green: "2", palette.Blue: "3", palette.Yellow: ""}},
		{"duplicate key", map[palette.Color]string{palette.Red: "1", palette.Green: "1", palette.Blue: "3", palette.Yellow: "4"}},
		{"unknown color", map[palette.Color]string{palette.Red: "1", palette.Green: "2", palette.Blue: "3", palette.Yellow: "4", palette.Color(7): "7"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewKeymap(tt.keys)
			assert.Error(t, err)
		})
	}
}

func TestNewKeymap_Custom(t *testing.T) {
	km, err := NewKeymap(map[palette.Color]string{
		palette.Red:    "r",
		palette.Green:  "g",
		palette.Blue:   "b",
		palette.Yellow: "y",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"r", "g", "b", "y"}, km.Keys())
	_, ok := km.Lookup("1")
	assert.False(t, ok)
}

func TestDispatch_EquivalentToAppend(t *testing.T) {
	km := DefaultKeymap()
	for _, key := range km.Keys() {
		c, _ := km.Lookup(key)

		viaKey := session.New()
		d := New(km)
		release := d.Attach(viaKey)
		assert.True(t, d.Dispatch(key))
		release()

		direct := session.New()
		direct.Append(c)

		assert.Equal(t, direct.Entries(), viaKey.Entries(), "key %s", key)
	}
}

func TestDispatch_UnrecognizedIgnored(t *testing.T) {
	s := session.New()
	d := New(DefaultKeymap())
	defer d.Attach(s)()

	assert.False(t, d.Dispatch("9"))
	assert.False(t, d.Dispatch("q"))
	assert.Equal(t, 0, s.Len())
}

func TestDispatch_Detached(t *testing.T) {
	s := session.New()
	d := New(DefaultKeymap())

	assert.False(t, d.Dispatch("1"), "never attached")

	release := d.Attach(s)
	assert.True(t, d.Dispatch("1"))
	release()
	assert.False(t, d.Dispatch("2"))
	assert.Equal(t, 1, s.Len())
}

func TestAttach_StaleReleaseKeepsNewTarget(t *testing.T) {
	first, second := session.New(), session.New()
	d := New(DefaultKeymap())

	releaseFirst := d.Attach(first)
	d.Attach(second)
	releaseFirst()

	assert.True(t, d.Dispatch("3"))
	assert.Equal(t, 0, first.Len())
	assert.Equal(t, 1, second.Len())
}

func TestReplay(t *testing.T) {
	s := session.New()
	d := New(DefaultKeymap())
	defer d.Attach(s)()

	n := d.Replay([]string{"1", "3", "x", "2", "", "4"})
	assert.Equal(t, 4, n)

	var got []palette.Color
	for _, e := range s.Entries() {
		got = append(got, e.Color)
	}
	assert.Equal(t, []palette.Color{palette.Red, palette.Blue, palette.Green, palette.Yellow}, got)
}
