package gifs

import (
	"bytes"
	"image/gif"
	"testing"

	"go.viam.com/test"
)

func TestTableContents(t *testing.T) {
	test.That(t, Count(), test.ShouldEqual, 6)
	test.That(t, Names(), test.ShouldResemble, []string{
		"staticstate", "happy", "sad", "anger", "scare", "buxue",
	})
	test.That(t, Version(), test.ShouldNotEqual, "")
}

func TestGetByName(t *testing.T) {
	for _, name := range Names() {
		img, ok := GetByName(name)
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, img.Name, test.ShouldEqual, name)
		test.That(t, img.Width, test.ShouldEqual, 200)
		test.That(t, img.Height, test.ShouldEqual, 200)
		test.That(t, img.FrameCount, test.ShouldBeGreaterThan, 0)
		test.That(t, len(img.Data), test.ShouldBeGreaterThan, 0)
	}

	_, ok := GetByName("grumpy")
	test.That(t, ok, test.ShouldBeFalse)
}

func TestDefault(t *testing.T) {
	def := Default()
	test.That(t, def, test.ShouldNotBeNil)
	test.That(t, def.Name, test.ShouldEqual, "staticstate")

	byName, ok := GetByName("staticstate")
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, def, test.ShouldEqual, byName)
}

func TestPayloadsAreValidGIFs(t *testing.T) {
	for _, name := range Names() {
		img, _ := GetByName(name)
		decoded, err := gif.DecodeAll(bytes.NewReader(img.Data))
		test.That(t, err, test.ShouldBeNil)
		test.That(t, len(decoded.Image), test.ShouldEqual, img.FrameCount)
		bounds := decoded.Image[0].Bounds()
		test.That(t, bounds.Dx(), test.ShouldEqual, img.Width)
		test.That(t, bounds.Dy(), test.ShouldEqual, img.Height)
	}
}
