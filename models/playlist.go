package models

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"emotiondisplay/gifs"
)

type playlist struct {
	Emotions []string `yaml:"emotions"`
}

// loadPlaylist reads a YAML playlist overriding the default emotion
// rotation. Every listed name must exist in the asset table.
func loadPlaylist(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read playlist %v", path)
	}
	var pl playlist
	if err := yaml.Unmarshal(data, &pl); err != nil {
		return nil, errors.Wrapf(err, "unable to parse playlist %v", path)
	}
	if len(pl.Emotions) == 0 {
		return nil, errors.Errorf("playlist %v lists no emotions", path)
	}
	for _, name := range pl.Emotions {
		if _, ok := gifs.GetByName(name); !ok {
			return nil, errors.Errorf("playlist %v references unknown emotion %q", path, name)
		}
	}
	return pl.Emotions, nil
}
