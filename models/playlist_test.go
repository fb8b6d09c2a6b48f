package models

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"
)

func writePlaylist(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "playlist.yaml")
	test.That(t, os.WriteFile(path, []byte(contents), 0o644), test.ShouldBeNil)
	return path
}

func TestLoadPlaylist(t *testing.T) {
	path := writePlaylist(t, "emotions:\n  - happy\n  - sad\n")

	names, err := loadPlaylist(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, names, test.ShouldResemble, []string{"happy", "sad"})
}

func TestLoadPlaylistUnknownEmotion(t *testing.T) {
	path := writePlaylist(t, "emotions:\n  - happy\n  - grumpy\n")

	_, err := loadPlaylist(path)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "grumpy")
}

func TestLoadPlaylistEmpty(t *testing.T) {
	path := writePlaylist(t, "emotions: []\n")

	_, err := loadPlaylist(path)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestLoadPlaylistMissingFile(t *testing.T) {
	_, err := loadPlaylist(filepath.Join(t.TempDir(), "nope.yaml"))
	test.That(t, err, test.ShouldNotBeNil)
}

func TestLoadPlaylistBadYAML(t *testing.T) {
	path := writePlaylist(t, "emotions: [unclosed\n")

	_, err := loadPlaylist(path)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestPlaylistDrivesSequence(t *testing.T) {
	path := writePlaylist(t, "emotions:\n  - anger\n  - buxue\n")

	s, disp := newTestController(t, &Config{DisplayComponent: "display", Playlist: path})
	ctx := context.Background()

	s.advance(ctx)
	s.advance(ctx)
	s.advance(ctx)

	test.That(t, disp.srcNames(), test.ShouldResemble, []string{
		"staticstate", "anger", "buxue", "anger",
	})
}
