package video

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game implements ebiten.Game, presenting a FrameBuffer in a resizable
// window and forwarding pressed keys to an optional controller callback.
// Controller input itself is out of scope for this core (spec.md Non-goals);
// OnKeys exists so a caller can wire one up without touching this file.
type Game struct {
	Frames *FrameBuffer
	Title  string

	// OnKeys, if set, is called once per Update with the keys newly pressed
	// this tick. Left nil, Update does not read input at all.
	OnKeys func(pressed []ebiten.Key)

	screen *ebiten.Image
	buf    *image.RGBA
}

// NewGame wraps frames for display and records title in the Title field;
// it does not set the window title itself.
func NewGame(frames *FrameBuffer, title string) *Game {
	return &Game{
		Frames: frames,
		Title:  title,
		screen: ebiten.NewImage(Width, Height),
		buf:    image.NewRGBA(image.Rect(0, 0, Width, Height)),
	}
}

// Update polls the keyboard and invokes OnKeys with whatever was just
// pressed this tick.
func (g *Game) Update() error {
	if g.OnKeys == nil {
		return nil
	}
	pressed := inpututil.AppendJustPressedKeys(nil)
	if len(pressed) > 0 {
		g.OnKeys(pressed)
	}
	return nil
}

// Draw uploads the current frame buffer contents into the window.
func (g *Game) Draw(screen *ebiten.Image) {
	pixels := g.Frames.Snapshot()
	for i, px := range pixels {
		offset := i * 4
		g.buf.Pix[offset+0] = byte(px >> 16)
		g.buf.Pix[offset+1] = byte(px >> 8)
		g.buf.Pix[offset+2] = byte(px)
		g.buf.Pix[offset+3] = 0xff
	}
	g.screen.WritePixels(g.buf.Pix)

	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	scaleX := float64(sw) / float64(Width)
	scaleY := float64(sh) / float64(Height)
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate((float64(sw)-float64(Width)*scale)/2, (float64(sh)-float64(Height)*scale)/2)
	screen.DrawImage(g.screen, op)
}

// Layout reports the window's own size as the screen size; Draw scales and
// centers the native-resolution image inside it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
