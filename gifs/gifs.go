// Package gifs is the emoji asset table for the Otto emotion display: a
// fixed name-to-animation mapping with a lookup, a default fallback, and
// version/count accessors. The shipped bitmap art lives with the hardware
// build; this package synthesizes stand-in animations once at init so the
// module works against any display component.
package gifs

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
)

const version = "1.0.0"

// Display geometry of every emotion animation, in pixels.
const (
	imageWidth  = 200
	imageHeight = 200
)

// Image describes one displayable animated emotion. Data holds the encoded
// GIF payload pushed to the display component as-is.
type Image struct {
	Name       string
	Width      int
	Height     int
	FrameCount int
	Data       []byte
}

type face struct {
	skin   color.RGBA
	frames int
}

// emotionOrder fixes iteration order; Count and Names follow it.
var emotionOrder = []string{"staticstate", "happy", "sad", "anger", "scare", "buxue"}

var faces = map[string]face{
	"staticstate": {skin: color.RGBA{0x2e, 0xc4, 0xb6, 0xff}, frames: 2},
	"happy":       {skin: color.RGBA{0xff, 0xd1, 0x66, 0xff}, frames: 4},
	"sad":         {skin: color.RGBA{0x11, 0x8a, 0xb2, 0xff}, frames: 3},
	"anger":       {skin: color.RGBA{0xef, 0x47, 0x6f, 0xff}, frames: 4},
	"scare":       {skin: color.RGBA{0x9b, 0x5d, 0xe5, 0xff}, frames: 5},
	"buxue":       {skin: color.RGBA{0xf4, 0x97, 0x3b, 0xff}, frames: 3},
}

var table = map[string]*Image{}

func init() {
	for _, name := range emotionOrder {
		table[name] = render(name, faces[name])
	}
}

// GetByName resolves an emotion name to its animation. The second return is
// false when the name is not in the table.
func GetByName(name string) (*Image, bool) {
	img, ok := table[name]
	return img, ok
}

// Default returns the built-in fallback animation (the resting face).
func Default() *Image {
	return table["staticstate"]
}

// Version returns the asset table version string.
func Version() string {
	return version
}

// Count returns the number of supported emotions.
func Count() int {
	return len(emotionOrder)
}

// Names returns the supported emotion names in table order.
func Names() []string {
	names := make([]string, len(emotionOrder))
	copy(names, emotionOrder)
	return names
}

func render(name string, f face) *Image {
	palette := color.Palette{
		color.RGBA{0x00, 0x00, 0x00, 0xff},
		f.skin,
		color.RGBA{0xff, 0xff, 0xff, 0xff},
	}
	anim := &gif.GIF{}
	for i := 0; i < f.frames; i++ {
		frame := image.NewPaletted(image.Rect(0, 0, imageWidth, imageHeight), palette)
		// The face breathes: the disc grows a little each frame.
		radius := 68 + 5*i
		fillDisc(frame, imageWidth/2, imageHeight/2, radius, 1)
		fillDisc(frame, imageWidth/2-24, imageHeight/2-18, 8, 2)
		fillDisc(frame, imageWidth/2+24, imageHeight/2-18, 8, 2)
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, 12)
	}
	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, anim); err != nil {
		panic("gifs: encoding " + name + ": " + err.Error())
	}
	return &Image{
		Name:       name,
		Width:      imageWidth,
		Height:     imageHeight,
		FrameCount: f.frames,
		Data:       buf.Bytes(),
	}
}

func fillDisc(img *image.Paletted, cx, cy, r int, colorIndex uint8) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				img.SetColorIndex(x, y, colorIndex)
			}
		}
	}
}
