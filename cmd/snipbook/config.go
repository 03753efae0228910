package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const configFile = "config.toml"

// config holds the CLI defaults. Values can still be overridden per
// invocation with flags.
type config struct {
	// BookDir is where the book and its images live.
	BookDir string
	// Shape is the default cut-out shape.
	Shape string
	// Width is the default output width for masked images, in pixels.
	Width int
	// Capacity is the page capacity for newly created books.
	Capacity int
}

func defaultConfig() config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return config{
		BookDir:  filepath.Join(home, "Snipbook"),
		Shape:    "rectangle",
		Width:    1200,
		Capacity: 4,
	}
}

func configPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "snipbook", configFile), nil
}

// loadConfig reads the config file, writing one with defaults first if
// none exists yet.
func loadConfig() (config, error) {
	conf := defaultConfig()

	path, err := configPath()
	if err != nil {
		return conf, err
	}

	_, err = os.Stat(path)
	if os.IsNotExist(err) {
		err = writeConfig(path, conf)
		return conf, err
	} else if err != nil {
		return conf, err
	}

	_, err = toml.DecodeFile(path, &conf)
	return conf, err
}

func writeConfig(path string, conf config) error {
	err := os.MkdirAll(filepath.Dir(path), 0700)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	err = toml.NewEncoder(&buf).Encode(conf)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, buf.Bytes(), 0644)
}
