package graphics

import (
	"giftex/internal/graphics/gpu"
)

// NewFrameTexture creates a width x height RGBA8 texture on unit 0 with empty
// contents. The texture is left bound. It samples linearly, clamps to edge on
// both axes and has no mipmap chain, since its contents are replaced every
// frame.
func NewFrameTexture(ctx gpu.Context, width, height int) uint32 {
	texture := ctx.GenTexture()
	ctx.ActiveTexture(gpu.Texture0)
	ctx.BindTexture(gpu.Texture2D, texture)

	ctx.TexParameteri(gpu.Texture2D, gpu.TextureMinFilter, gpu.Linear)
	ctx.TexParameteri(gpu.Texture2D, gpu.TextureMagFilter, gpu.Linear)
	ctx.TexParameteri(gpu.Texture2D, gpu.TextureWrapS, gpu.ClampToEdge)
	ctx.TexParameteri(gpu.Texture2D, gpu.TextureWrapT, gpu.ClampToEdge)

	ctx.TexImage2D(
		gpu.Texture2D,
		0,
		int32(gpu.RGBA),
		int32(width),
		int32(height),
		gpu.RGBA,
		gpu.UnsignedByte,
		nil,
	)
	return texture
}
