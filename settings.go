package main

import (
	"flag"
	"fmt"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "LearnOpenGL"
)

type Settings struct {
	Width  int
	Height int
	Title  string
	VSync  bool
}

func DefaultSettings() Settings {
	return Settings{
		Width:  windowWidth,
		Height: windowHeight,
		Title:  windowTitle,
		VSync:  true,
	}
}

// parseSettings reads settings from command line arguments, starting from
// the defaults.
func parseSettings(args []string) (Settings, error) {
	settings := DefaultSettings()

	flags := flag.NewFlagSet("infinitegrid", flag.ContinueOnError)
	flags.IntVar(&settings.Width, "width", settings.Width, "window width in screen coordinates")
	flags.IntVar(&settings.Height, "height", settings.Height, "window height in screen coordinates")
	flags.StringVar(&settings.Title, "title", settings.Title, "window title")
	flags.BoolVar(&settings.VSync, "vsync", settings.VSync, "wait for vertical sync when swapping buffers")
	if err := flags.Parse(args); err != nil {
		return Settings{}, err
	}

	if settings.Width <= 0 || settings.Height <= 0 {
		return Settings{}, fmt.Errorf("invalid window size %dx%d", settings.Width, settings.Height)
	}
	return settings, nil
}
