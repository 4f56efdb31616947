package knobs

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	_ "golang.org/x/image/webp"
)

var (
	ErrInvalidFont  = errors.New("knobs: invalid font data")
	ErrInvalidImage = errors.New("knobs: invalid image data")
	ErrUnknownFont  = errors.New("knobs: unknown font")
	ErrUnknownImage = errors.New("knobs: unknown image")
)

// Resources provides fonts and images to behaviors during layout and draw.
// Both lookups panic on ids the provider did not issue.
type Resources interface {
	Font(id FontID) *Font
	Image(id ImageID) image.Image
}

// Font is a parsed OpenType font. Faces are cached per pixel size.
type Font struct {
	data   []byte
	parsed *opentype.Font
	faces  map[float32]font.Face
}

// ParseFont parses TrueType or OpenType font data.
func ParseFont(data []byte) (*Font, error) {
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFont, err)
	}
	return &Font{data: data, parsed: parsed, faces: make(map[float32]font.Face)}, nil
}

// Data returns the raw font bytes, for backends that rasterize on their own.
func (f *Font) Data() []byte {
	return f.data
}

// Measure returns the size of text drawn with the given scale. scale.Y is
// the pixel size; scale.X stretches horizontally relative to it.
func (f *Font) Measure(text string, scale Vector) Vector {
	face := f.Face(scale.Y)
	if face == nil {
		return Vector{}
	}
	m := face.Metrics()
	width := fixedToFloat(font.MeasureString(face, text))
	height := fixedToFloat(m.Ascent + m.Descent)
	return Vector{X: width * scale.X / scale.Y, Y: height}
}

// LineHeight returns the distance between baselines at the given pixel size.
func (f *Font) LineHeight(size float32) float32 {
	face := f.Face(size)
	if face == nil {
		return 0
	}
	return fixedToFloat(face.Metrics().Height)
}

// Face returns a face rendering the font at size pixels, or nil when size
// is not positive.
func (f *Font) Face(size float32) font.Face {
	if size <= 0 {
		return nil
	}
	if face, ok := f.faces[size]; ok {
		return face
	}
	face, err := opentype.NewFace(f.parsed, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil
	}
	f.faces[size] = face
	return face
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// Assets is the default Resources implementation: fonts and images held in
// memory and addressed by the ids returned when they were loaded.
type Assets struct {
	fonts  []*Font
	images []image.Image
}

// NewAssets creates an empty asset store.
func NewAssets() *Assets {
	return &Assets{}
}

// LoadFont parses and stores font data.
func (a *Assets) LoadFont(data []byte) (FontID, error) {
	f, err := ParseFont(data)
	if err != nil {
		return FontID{}, err
	}
	a.fonts = append(a.fonts, f)
	return FontID{n: len(a.fonts)}, nil
}

// LoadDefaultFont stores the Go Regular font.
func (a *Assets) LoadDefaultFont() (FontID, error) {
	return a.LoadFont(goregular.TTF)
}

// LoadImage decodes a PNG, JPEG, GIF, BMP or WebP image and stores it.
func (a *Assets) LoadImage(r io.Reader) (ImageID, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return ImageID{}, fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}
	if b := img.Bounds(); b.Empty() {
		return ImageID{}, fmt.Errorf("%w: empty %s image", ErrInvalidImage, format)
	}
	return a.AddImage(img), nil
}

// AddImage stores an already decoded image.
func (a *Assets) AddImage(img image.Image) ImageID {
	a.images = append(a.images, img)
	return ImageID{n: len(a.images)}
}

// LookupFont returns the font with the given id.
func (a *Assets) LookupFont(id FontID) (*Font, error) {
	if id.n < 1 || id.n > len(a.fonts) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFont, id.n)
	}
	return a.fonts[id.n-1], nil
}

// LookupImage returns the image with the given id.
func (a *Assets) LookupImage(id ImageID) (image.Image, error) {
	if id.n < 1 || id.n > len(a.images) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownImage, id.n)
	}
	return a.images[id.n-1], nil
}

// Font implements Resources.
func (a *Assets) Font(id FontID) *Font {
	f, err := a.LookupFont(id)
	if err != nil {
		panic(err)
	}
	return f
}

// Image implements Resources.
func (a *Assets) Image(id ImageID) image.Image {
	img, err := a.LookupImage(id)
	if err != nil {
		panic(err)
	}
	return img
}

// MeasureText measures text drawn with font id at scale.
func (a *Assets) MeasureText(id FontID, text string, scale Vector) Vector {
	return a.Font(id).Measure(text, scale)
}

// ImageSize returns the pixel size of an image.
func ImageSize(img image.Image) Vector {
	b := img.Bounds()
	return Vector{X: float32(b.Dx()), Y: float32(b.Dy())}
}
