package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/levyxx/emjtxt/pkg/textwidth"
)

func TestHash_Stable(t *testing.T) {
	// Pinned values: changing the mixer changes every seeded banner.
	assert.Equal(t, uint32(0xfc0c7004), Hash(0, 0, 0))
	assert.Equal(t, uint32(0x94967997), Hash(3, 5, 42))
	assert.Equal(t, uint32(0x7f8efab8), Hash(1, 2, 7))
}

func TestIntensity_NoiseDependsOnSeed(t *testing.T) {
	a := Theme{Levels: []string{"a", "b", "c"}, Pattern: Noise, Seed: 1}
	b := a
	b.Seed = 2

	var gotA, gotB []int
	for c := 0; c < 8; c++ {
		gotA = append(gotA, a.Intensity(0, c))
		gotB = append(gotB, b.Intensity(0, c))
	}
	assert.Equal(t, []int{2, 0, 2, 1, 1, 0, 1, 1}, gotA)
	assert.Equal(t, []int{2, 1, 1, 1, 2, 2, 1, 0}, gotB)
}

func TestIntensity_InRange(t *testing.T) {
	for _, name := range Names() {
		th, ok := Lookup(name, 99)
		require.True(t, ok)
		for r := 0; r < 12; r++ {
			for c := 0; c < 40; c++ {
				lvl := th.Intensity(r, c)
				assert.GreaterOrEqual(t, lvl, 0)
				assert.Less(t, lvl, len(th.Levels))
			}
		}
	}
}

func TestIntensity_Diagonal(t *testing.T) {
	th := Theme{Levels: []string{"a", "b", "c"}, Pattern: Diagonal}
	assert.Equal(t, 0, th.Intensity(0, 0))
	assert.Equal(t, 2, th.Intensity(1, 1))
	assert.Equal(t, 0, th.Intensity(2, 1))
	assert.Equal(t, "b", th.Glyph(0, 4))
}

func TestIntensity_NoLevels(t *testing.T) {
	assert.Equal(t, 0, Theme{}.Intensity(3, 4))
}

func TestLookup(t *testing.T) {
	th, ok := Lookup("FIRE", 7)
	require.True(t, ok)
	assert.Equal(t, "fire", th.Name)
	assert.Equal(t, uint32(7), th.Seed)

	_, ok = Lookup("vaporwave", 0)
	assert.False(t, ok)
}

func TestLookup_CopiesLevels(t *testing.T) {
	th, _ := Lookup("ocean", 0)
	th.Levels[0] = "x"
	again, _ := Lookup("ocean", 0)
	assert.Equal(t, "🌊", again.Levels[0])
}

func TestBuiltinGlyphsAreUniformWidth(t *testing.T) {
	for _, name := range Names() {
		th, _ := Lookup(name, 0)
		want := textwidth.VisualWidth(th.Background)
		for _, g := range th.Levels {
			assert.Equal(t, want, textwidth.VisualWidth(g), "theme %s glyph %q", name, g)
		}
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"fire", "forest", "night", "ocean", "rainbow"}, Names())
}

func TestPattern_String(t *testing.T) {
	assert.Equal(t, "noise", Noise.String())
	assert.Equal(t, "bands", Bands.String())
	assert.Equal(t, "diagonal", Diagonal.String())
	assert.Equal(t, "unknown", Pattern(9).String())
}
