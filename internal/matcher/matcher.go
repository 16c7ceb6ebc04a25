// Package matcher implements the face comparison policy: an exact
// raster-equality heuristic over decoded images.
//
// The policy is intentionally naive. It is not robust to translation,
// scaling, lighting, or compression artifacts; two images match only when
// they agree pixel-for-pixel on more than the acceptance threshold of
// positions. The matcher sits behind its own type so a future
// nearest-neighbor index can replace it without changing the
// authentication flow.
package matcher

import (
	"bytes"
	"image"

	// Raster formats accepted for face images. Registration is all these
	// imports do; image.Decode picks the right one by sniffing the header.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// AcceptanceThreshold is the similarity score a candidate must exceed
// (strictly) to be declared a match.
const AcceptanceThreshold = 0.85

// Matcher scores pairs of encoded images for exact-raster similarity.
// The zero value is not usable; construct with [New].
type Matcher struct {
	threshold float64
}

// New returns a Matcher using [AcceptanceThreshold].
func New() *Matcher {
	return &Matcher{threshold: AcceptanceThreshold}
}

// Score compares two encoded images and returns a similarity in [0, 1].
//
// The comparison fails closed: if either input cannot be decoded as a
// raster image, or the two images differ in pixel dimensions, the score is
// 0 and no error is reported to the caller.
//
// Otherwise the images are compared pixel-by-pixel in raster order; a
// position counts as differing when the pixel values differ in any
// channel. The score is 1 − differing / total pixel count.
func (m *Matcher) Score(candidate, stored []byte) float64 {
	candidateImg, err := decode(candidate)
	if err != nil {
		return 0
	}

	storedImg, err := decode(stored)
	if err != nil {
		return 0
	}

	cb, sb := candidateImg.Bounds(), storedImg.Bounds()
	if cb.Dx() != sb.Dx() || cb.Dy() != sb.Dy() {
		return 0
	}

	total := cb.Dx() * cb.Dy()
	if total == 0 {
		return 0
	}

	differing := 0
	for y := 0; y < cb.Dy(); y++ {
		for x := 0; x < cb.Dx(); x++ {
			cr, cg, cbl, ca := candidateImg.At(cb.Min.X+x, cb.Min.Y+y).RGBA()
			sr, sg, sbl, sa := storedImg.At(sb.Min.X+x, sb.Min.Y+y).RGBA()

			if cr != sr || cg != sg || cbl != sbl || ca != sa {
				differing++
			}
		}
	}

	return 1 - float64(differing)/float64(total)
}

// Match reports whether the two encoded images score strictly above the
// acceptance threshold. A score equal to the threshold is a non-match.
func (m *Matcher) Match(candidate, stored []byte) bool {
	return m.Score(candidate, stored) > m.threshold
}

// Decodable reports whether data decodes as a raster image in one of the
// registered formats. Used by request validation to reject undecodable
// uploads before any state is written.
func Decodable(data []byte) bool {
	_, err := decode(data)
	return err == nil
}

func decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}
