package menu

// Default returns the built-in catalog used when no catalog file is
// configured.
func Default() *Catalog {
	c := NewCatalog("main",
		&Definition{
			Kind:  "main",
			Title: "Main Menu",
			Items: []Item{
				{ID: "play", Label: "Play", Target: "play"},
				{ID: "settings", Label: "Settings", Target: "settings"},
				{ID: "about", Label: "About", Target: "about"},
				{ID: "quit", Label: "Quit", Action: ActionQuit},
			},
		},
		&Definition{
			Kind:  "play",
			Title: "Play",
			Items: []Item{
				{ID: "continue", Label: "Continue", Action: ActionClose},
				{ID: "new", Label: "New Game", Target: "confirm"},
				{ID: "back", Label: "Back", Action: ActionBack},
			},
		},
		&Definition{
			Kind:  "settings",
			Title: "Settings",
			Items: []Item{
				{ID: "audio", Label: "Audio", Target: "audio"},
				{ID: "video", Label: "Video", Target: "video"},
				{ID: "controls", Label: "Controls", Target: "controls"},
				{ID: "back", Label: "Back", Action: ActionBack},
			},
		},
		&Definition{
			Kind:  "audio",
			Title: "Audio",
			Items: []Item{
				{ID: "master", Label: "Master Volume"},
				{ID: "music", Label: "Music Volume"},
				{ID: "effects", Label: "Effects Volume"},
				{ID: "back", Label: "Back", Action: ActionBack},
			},
		},
		&Definition{
			Kind:  "video",
			Title: "Video",
			Items: []Item{
				{ID: "resolution", Label: "Resolution"},
				{ID: "fullscreen", Label: "Fullscreen"},
				{ID: "vsync", Label: "VSync"},
				{ID: "back", Label: "Back", Action: ActionBack},
			},
		},
		&Definition{
			Kind:  "controls",
			Title: "Controls",
			Items: []Item{
				{ID: "keyboard", Label: "Keyboard"},
				{ID: "gamepad", Label: "Gamepad"},
				{ID: "tidy", Label: "Close Settings Underneath", Action: ActionRemoveBelow},
				{ID: "back", Label: "Back", Action: ActionBack},
			},
		},
		&Definition{
			Kind:  "confirm",
			Title: "Start a new game?",
			Items: []Item{
				{ID: "yes", Label: "Yes", Action: ActionClose},
				{ID: "no", Label: "No", Action: ActionBack},
			},
		},
		&Definition{
			Kind:  "about",
			Title: "About",
			Items: []Item{
				{ID: "version", Label: "menu-stack"},
				{ID: "back", Label: "Back", Action: ActionBack},
			},
		},
	)
	return c
}
