package graphics

import "github.com/go-gl/mathgl/mgl32"

// TexScale returns the ratio of the target viewport to the source image on
// each axis.
func TexScale(srcW, srcH, dstW, dstH int) (scaleX, scaleY float32) {
	return float32(dstW) / float32(srcW), float32(dstH) / float32(srcH)
}

// TexOffset returns the translation applied in pre-scale texture space that
// keeps the source centered for the given scale.
func TexOffset(scaleX, scaleY float32) (x, y float32) {
	return 1/scaleX/2 - 0.5, 1/scaleY/2 - 0.5
}

// TexMatrix builds the texture-coordinate transform that fits a srcW x srcH
// image into a dstW x dstH viewport. The result is Identity * Scale * Translate,
// so the translation acts in the unscaled frame and the stored translation
// column is (scaleX*x, scaleY*y, 0).
//
// The matrix is always rebuilt from scratch; identical inputs give
// bit-identical output.
func TexMatrix(srcW, srcH, dstW, dstH int) mgl32.Mat4 {
	sx, sy := TexScale(srcW, srcH, dstW, dstH)
	tx, ty := TexOffset(sx, sy)

	m := mgl32.Ident4()
	m = m.Mul4(mgl32.Scale3D(sx, sy, 1))
	m = m.Mul4(mgl32.Translate3D(tx, ty, 0))
	return m
}
