// Command uidrawdemo drives the uidraw frame pipeline without a GPU:
// it draws a frame of rectangles and text, then reports the meshes and
// texture uploads a renderer would receive. With -atlas it also dumps
// the glyph atlas as a PNG.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/gogpu/uidraw"
	"github.com/gogpu/uidraw/geom"
	"github.com/gogpu/uidraw/render"
)

func main() {
	var (
		width     = flag.Int("width", 800, "screen width in logical pixels")
		height    = flag.Int("height", 600, "screen height in logical pixels")
		scale     = flag.Float64("scale", 1, "display scale (pixels per point)")
		fontPath  = flag.String("font", "", "TTF/OTF file to draw text with")
		atlasPath = flag.String("atlas", "", "write the glyph atlas to this PNG file")
	)
	flag.Parse()

	cfg := uidraw.DefaultConfig()
	if *fontPath != "" {
		cfg.Fonts = []uidraw.FontConfig{
			{Family: cfg.VariableFamily, Path: *fontPath},
			{Family: cfg.FixedFamily, Path: *fontPath},
		}
	}

	ctx, err := uidraw.NewContext(cfg)
	if err != nil {
		log.Fatalf("create context: %v", err)
	}

	screen := geom.Sz(float32(*width), float32(*height))
	ctx.BeginFrame(screen, float32(*scale))

	ctx.SetDrawColor(render.RGB(30, 30, 46))
	ctx.DrawRect(geom.RectFromOriginSize(geom.Pt[float32](0, 0), screen))

	ctx.SetDrawLayer(1, 0)
	ctx.SetDrawColor(render.RGB(205, 214, 244))
	ctx.DrawRect(geom.RectFromXYWH[float32](20, 20, 200, 120))

	if *fontPath != "" {
		must(ctx.DrawString(geom.Pt[float32](20, 160), "LEFT", "VAR", 20, "uidraw ^2frame ^1pipeline"))
		must(ctx.DrawString(geom.Pt[float32](0, 200), "CENTER", "VAR BOLD", 24, "centered"))
		must(ctx.DrawString(geom.Pt[float32](20, 240), "RIGHT", "FIXED", 16, "right aligned"))
	}

	out := ctx.EndFrame()

	var vertices, indices int
	for _, m := range out.Meshes {
		vertices += len(m.Mesh.Vertices)
		indices += len(m.Mesh.Indices)
	}
	log.Printf("frame: %d meshes, %d vertices, %d indices, skipped=%v",
		len(out.Meshes), vertices, indices, out.Skipped)
	for _, set := range out.TexturesDelta.Set {
		log.Printf("texture %d: upload %dx%d (whole=%v)",
			set.ID, set.Delta.Image.Size.W, set.Delta.Image.Size.H, set.Delta.IsWholeTexture())
	}

	if *atlasPath != "" {
		if err := writeAtlas(ctx, *atlasPath); err != nil {
			log.Fatalf("write atlas: %v", err)
		}
		log.Printf("atlas written to %s", *atlasPath)
	}
}

func writeAtlas(ctx *uidraw.Context, path string) error {
	size := ctx.Engine().Atlas().Size()
	img := image.NewRGBA(image.Rect(0, 0, int(size.W), int(size.H)))
	for y := int32(0); y < size.H; y++ {
		for x := int32(0); x < size.W; x++ {
			r, g, b, a := ctx.Engine().Atlas().Pixel(x, y)
			i := img.PixOffset(int(x), int(y))
			img.Pix[i+0] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = b
			img.Pix[i+3] = a
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
