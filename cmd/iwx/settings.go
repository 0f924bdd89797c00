package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// settings is iwx's optional persistent configuration, read from a TOML
// file named by --config. --verbose turns verbose logging on even when
// the file leaves it off; it cannot turn off a file's verbose = true.
type settings struct {
	Verbose bool   `toml:"verbose"`
	OCR     string `toml:"ocr"` // provider name; resolution is up to the front-end build
}

func loadSettings(path string) (*settings, error) {
	s := &settings{}
	if path == "" {
		return s, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(raw, s); err != nil {
		return nil, err
	}
	return s, nil
}
