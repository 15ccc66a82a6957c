package graphics

import (
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// TextureImage holds decoded pixel data ready for GL upload. Rows are
// stored bottom-to-top so texture coordinates start at the lower-left
// corner.
type TextureImage struct {
	Pixels   []byte
	Width    int
	Height   int
	Channels int // 3 (RGB) or 4 (RGBA)
}

// LoadTextureImage decodes an image file into flipped, tightly packed
// pixel data. Only 3-channel and 4-channel images are supported; any
// other channel count is rejected.
func LoadTextureImage(path string) (*TextureImage, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open texture file %s", path)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode image %s", path)
	}

	return decodeTextureImage(img)
}

func decodeTextureImage(img image.Image) (*TextureImage, error) {
	channels := channelCount(img)
	if channels != 3 && channels != 4 {
		return nil, errors.Errorf("unsupported image with %d channels", channels)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]byte, 0, width*height*channels)

	// walk rows bottom-to-top: the vertical flip required by the
	// texture coordinate convention
	for y := bounds.Max.Y - 1; y >= bounds.Min.Y; y-- {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if channels == 3 {
				pixels = append(pixels, c.R, c.G, c.B)
			} else {
				pixels = append(pixels, c.R, c.G, c.B, c.A)
			}
		}
	}

	return &TextureImage{
		Pixels:   pixels,
		Width:    width,
		Height:   height,
		Channels: channels,
	}, nil
}

// channelCount classifies a decoded image by the channel count of its
// native representation
func channelCount(img image.Image) int {
	switch img.(type) {
	case *image.YCbCr:
		return 3
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64, *image.NYCbCrA:
		return 4
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16:
		return 1
	case *image.Paletted:
		return 1
	default:
		return 0
	}
}

// UploadTexture creates a GL 2D texture from decoded pixel data with
// repeat wrapping, linear filtering, and generated mipmaps. Returns the
// texture handle.
func UploadTexture(img *TextureImage) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	internalFormat := int32(gl.RGB8)
	format := uint32(gl.RGB)
	if img.Channels == 4 {
		internalFormat = gl.RGBA8
		format = gl.RGBA
	}

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		internalFormat,
		int32(img.Width),
		int32(img.Height),
		0,
		format,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pixels),
	)

	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return texture
}

// DeleteTexture releases a GL texture handle
func DeleteTexture(texture uint32) {
	gl.DeleteTextures(1, &texture)
}
