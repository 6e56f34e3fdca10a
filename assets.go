package islandguide

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Brand palette: the island's teal waters over a dark slate.
var (
	brandTeal      = color.NRGBA{R: 0x00, G: 0xA9, B: 0x9D, A: 0xFF}
	brandTealLight = color.NRGBA{R: 0x00, G: 0xBD, B: 0xB1, A: 0xFF}
	brandDark      = color.NRGBA{R: 0x1A, G: 0x3C, B: 0x40, A: 0xFF}
	white          = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

const (
	markSize    = 512
	ogWidth     = 1200
	ogHeight    = 630
	jpegQuality = 85
)

var faviconTargets = []struct {
	name string
	size int
}{
	{"favicon-16x16.png", 16},
	{"favicon-32x32.png", 32},
	{"apple-touch-icon.png", 180},
	{"android-chrome-192x192.png", 192},
	{"android-chrome-512x512.png", 512},
}

// GenerateAssets draws the favicon set and the social-preview image into the
// output directory. heroPath optionally names a photo used as the OG image
// background; when empty the brand teal is used instead. This is offline
// tooling: any failure is returned so the run can abort non-zero.
func (b *Builder) GenerateAssets(heroPath string) error {
	if err := os.MkdirAll(b.Config.OutputDir, 0o755); err != nil {
		return fmt.Errorf("islandguide: create output dir: %w", err)
	}

	mark, err := b.drawBrandMark()
	if err != nil {
		return fmt.Errorf("islandguide: draw brand mark: %w", err)
	}
	for _, target := range faviconTargets {
		scaled := scaleImage(mark, target.size, target.size)
		if err := b.writePNG(target.name, scaled); err != nil {
			return err
		}
		b.log.Info("favicon written", "name", target.name, "size", target.size)
	}

	og, err := b.drawOGImage(heroPath)
	if err != nil {
		return fmt.Errorf("islandguide: draw og image: %w", err)
	}
	path := filepath.Join(b.Config.OutputDir, "og-image.jpg")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("islandguide: create og image: %w", err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, og, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return fmt.Errorf("islandguide: encode og image: %w", err)
	}
	b.log.Info("og image written", "path", path)
	return nil
}

func (b *Builder) writePNG(name string, img image.Image) error {
	f, err := os.Create(filepath.Join(b.Config.OutputDir, name))
	if err != nil {
		return fmt.Errorf("islandguide: create %s: %w", name, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("islandguide: encode %s: %w", name, err)
	}
	return nil
}

// drawBrandMark renders the site initial in white over a teal disc with a
// lighter inner glow, on a transparent canvas at the largest favicon size.
func (b *Builder) drawBrandMark() (*image.NRGBA, error) {
	img := image.NewNRGBA(image.Rect(0, 0, markSize, markSize))

	center := markSize / 2
	outer := markSize/2 - markSize/10
	inner := outer - markSize/20
	fillCircle(img, center, center, outer, brandTeal)
	fillCircle(img, center, center, inner, brandTealLight)

	face, err := loadFace(gobold.TTF, markSize/2)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	drawCenteredString(img, face, siteInitial(b.Config.Name), markSize/2, markSize/2)
	return img, nil
}

// siteInitial returns the first letter of the site name, uppercased.
func siteInitial(name string) string {
	for _, r := range strings.TrimSpace(name) {
		if unicode.IsLetter(r) {
			return string(unicode.ToUpper(r))
		}
	}
	return "S"
}

func fillCircle(img *image.NRGBA, cx, cy, r int, c color.NRGBA) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}

func scaleImage(src image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

func loadFace(ttf []byte, size int) (font.Face, error) {
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("build font face: %w", err)
	}
	return face, nil
}

// drawCenteredString draws s with its visual center at (cx, cy).
func drawCenteredString(img *image.NRGBA, face font.Face, s string, cx, cy int) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(white),
		Face: face,
	}
	width := d.MeasureString(s)
	metrics := face.Metrics()
	x := cx - width.Ceil()/2
	y := cy + (metrics.Ascent-metrics.Descent).Ceil()/2
	d.Dot = fixed.P(x, y)
	d.DrawString(s)
}

// drawOGImage composes the 1200x630 social preview: hero photo (or brand
// teal) background, dark gradient over the lower half, and the site title and
// tagline in white.
func (b *Builder) drawOGImage(heroPath string) (*image.NRGBA, error) {
	canvas := image.NewNRGBA(image.Rect(0, 0, ogWidth, ogHeight))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(brandTeal), image.Point{}, draw.Src)

	if heroPath != "" {
		f, err := os.Open(heroPath)
		if err != nil {
			return nil, fmt.Errorf("open hero image: %w", err)
		}
		defer f.Close()
		hero, _, err := image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decode hero image: %w", err)
		}
		draw.CatmullRom.Scale(canvas, canvas.Bounds(), hero, coverCrop(hero.Bounds()), draw.Src, nil)
	}

	// Dark gradient over the lower half so the text stays readable.
	for y := ogHeight / 2; y < ogHeight; y++ {
		alpha := 180 * (y - ogHeight/2) / (ogHeight / 2)
		for x := 0; x < ogWidth; x++ {
			canvas.SetNRGBA(x, y, blend(canvas.NRGBAAt(x, y), brandDark, alpha))
		}
	}

	titleFace, err := loadFace(gobold.TTF, 64)
	if err != nil {
		return nil, err
	}
	defer titleFace.Close()
	subtitleFace, err := loadFace(goregular.TTF, 28)
	if err != nil {
		return nil, err
	}
	defer subtitleFace.Close()

	drawShadowedString(canvas, titleFace, b.Config.Name, 60, ogHeight-120)
	if b.Config.Tagline != "" {
		drawShadowedString(canvas, subtitleFace, b.Config.Tagline, 60, ogHeight-60)
	}
	return canvas, nil
}

// coverCrop returns the centered sub-rectangle of src matching the OG aspect
// ratio, so scaling fills the canvas without distortion.
func coverCrop(src image.Rectangle) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	if sw*ogHeight > sh*ogWidth {
		cropW := sh * ogWidth / ogHeight
		x0 := src.Min.X + (sw-cropW)/2
		return image.Rect(x0, src.Min.Y, x0+cropW, src.Max.Y)
	}
	cropH := sw * ogHeight / ogWidth
	y0 := src.Min.Y + (sh-cropH)/2
	return image.Rect(src.Min.X, y0, src.Max.X, y0+cropH)
}

func blend(base, over color.NRGBA, alpha int) color.NRGBA {
	mix := func(b, o uint8) uint8 {
		return uint8((int(b)*(255-alpha) + int(o)*alpha) / 255)
	}
	return color.NRGBA{
		R: mix(base.R, over.R),
		G: mix(base.G, over.G),
		B: mix(base.B, over.B),
		A: 0xFF,
	}
}

func drawShadowedString(img *image.NRGBA, face font.Face, s string, x, y int) {
	shadow := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(brandDark),
		Face: face,
		Dot:  fixed.P(x+2, y+2),
	}
	shadow.DrawString(s)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(white),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
