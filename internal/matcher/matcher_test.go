package matcher

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// solidPNG encodes a w×h PNG filled with the given color.
func solidPNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// solidPNGWithDiff encodes a w×h black PNG with the first n pixels (raster
// order) flipped to white.
func solidPNGWithDiff(t *testing.T, w, h, n int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if y*w+x < n {
				img.Set(x, y, color.White)
			} else {
				img.Set(x, y, color.Black)
			}
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestScore_IdenticalImage(t *testing.T) {
	m := New()
	img := solidPNG(t, 4, 4, color.Black)

	score := m.Score(img, img)

	assert.Equal(t, 1.0, score)
	assert.True(t, m.Match(img, img))
}

func TestScore_EveryPixelDiffers(t *testing.T) {
	m := New()
	black := solidPNG(t, 4, 4, color.Black)
	white := solidPNG(t, 4, 4, color.White)

	score := m.Score(black, white)

	assert.Equal(t, 0.0, score)
	assert.False(t, m.Match(black, white))
}

func TestScore_DimensionMismatch(t *testing.T) {
	m := New()
	small := solidPNG(t, 4, 4, color.Black)
	large := solidPNG(t, 8, 8, color.Black)

	// Same content, different dimensions: always a non-match.
	assert.Equal(t, 0.0, m.Score(small, large))
	assert.False(t, m.Match(small, large))
}

func TestScore_UndecodableInput(t *testing.T) {
	m := New()
	valid := solidPNG(t, 4, 4, color.Black)
	garbage := []byte("definitely not an image")

	assert.Equal(t, 0.0, m.Score(garbage, valid))
	assert.Equal(t, 0.0, m.Score(valid, garbage))
	assert.False(t, m.Match(garbage, valid))
}

func TestScore_PartialDifference(t *testing.T) {
	m := New()
	base := solidPNG(t, 4, 4, color.Black)
	oneOff := solidPNGWithDiff(t, 4, 4, 1)

	score := m.Score(oneOff, base)

	assert.InDelta(t, 15.0/16.0, score, 1e-9)
	assert.True(t, m.Match(oneOff, base))
}

func TestMatch_ExactThresholdIsRejected(t *testing.T) {
	m := New()
	// 4×5 = 20 pixels, 3 differing: similarity is exactly 0.85.
	base := solidPNG(t, 4, 5, color.Black)
	threeOff := solidPNGWithDiff(t, 4, 5, 3)

	score := m.Score(threeOff, base)

	assert.InDelta(t, 0.85, score, 1e-9)
	assert.False(t, m.Match(threeOff, base), "score equal to the threshold must not match")
}

func TestMatch_JustAboveThreshold(t *testing.T) {
	m := New()
	// 4×5 = 20 pixels, 2 differing: similarity 0.90.
	base := solidPNG(t, 4, 5, color.Black)
	twoOff := solidPNGWithDiff(t, 4, 5, 2)

	assert.True(t, m.Match(twoOff, base))
}

func TestDecodable(t *testing.T) {
	assert.True(t, Decodable(solidPNG(t, 2, 2, color.Black)))
	assert.False(t, Decodable([]byte("nope")))
	assert.False(t, Decodable(nil))
}
