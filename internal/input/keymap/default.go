package keymap

// snapArgs builds the arguments for a fixed-position snap binding.
func snapArgs(horiz, vert string) map[string]any {
	return map[string]any{"horiz": horiz, "vert": vert}
}

// Default returns the built-in viewer keymap.
func Default() *Keymap {
	return &Keymap{
		Name:   "default",
		Source: "default",
		Bindings: []Binding{
			// Page navigation.
			{Keys: "PageDown", Action: "page.next", Description: "Next page", Category: "Navigation"},
			{Keys: "Alt+Right", Action: "page.next", Description: "Next page", Category: "Navigation"},
			{Keys: "PageUp", Action: "page.previous", Description: "Previous page", Category: "Navigation"},
			{Keys: "Backspace", Action: "page.previous", Description: "Previous page", Category: "Navigation"},
			{Keys: "Alt+Left", Action: "page.previous", Description: "Previous page", Category: "Navigation"},
			{Keys: "Home", Action: "page.first", Description: "First page", Category: "Navigation"},
			{Keys: "End", Action: "page.last", Description: "Last page", Category: "Navigation"},

			// Arrow-key scrolling.
			{Keys: "Down", Action: "scroll.down", Description: "Scroll down", Category: "Scrolling"},
			{Keys: "Up", Action: "scroll.up", Description: "Scroll up", Category: "Scrolling"},
			{Keys: "Right", Action: "scroll.right", Description: "Scroll right", Category: "Scrolling"},
			{Keys: "Left", Action: "scroll.left", Description: "Scroll left", Category: "Scrolling"},

			// Smart scrolling follows the reading flow.
			{Keys: "Space", Action: "scroll.smartDown", Description: "Smart scroll forward", Category: "Scrolling"},
			{Keys: "Shift+Space", Action: "scroll.smartUp", Description: "Smart scroll backward", Category: "Scrolling"},

			// Numpad aligns the view like the digits on the keypad.
			{Keys: "KP1", Action: "view.snap", Args: snapArgs("left", "bottom"), Description: "Align left bottom", Category: "Alignment"},
			{Keys: "KP2", Action: "view.snap", Args: snapArgs("middle", "bottom"), Description: "Align middle bottom", Category: "Alignment"},
			{Keys: "KP3", Action: "view.snap", Args: snapArgs("right", "bottom"), Description: "Align right bottom", Category: "Alignment"},
			{Keys: "KP4", Action: "view.snap", Args: snapArgs("left", "middle"), Description: "Align left middle", Category: "Alignment"},
			{Keys: "KP5", Action: "view.snap", Args: snapArgs("middle", "middle"), Description: "Center", Category: "Alignment"},
			{Keys: "KP6", Action: "view.snap", Args: snapArgs("right", "middle"), Description: "Align right middle", Category: "Alignment"},
			{Keys: "KP7", Action: "view.snap", Args: snapArgs("left", "top"), Description: "Align left top", Category: "Alignment"},
			{Keys: "KP8", Action: "view.snap", Args: snapArgs("middle", "top"), Description: "Align middle top", Category: "Alignment"},
			{Keys: "KP9", Action: "view.snap", Args: snapArgs("right", "top"), Description: "Align right top", Category: "Alignment"},

			// Window controls.
			{Keys: "Escape", Action: "app.escape", Description: "Quit or leave fullscreen", Category: "Window"},
			{Keys: "F11", Action: "view.toggleFullscreen", Description: "Toggle fullscreen", Category: "Window"},
			{Keys: "q", Action: "app.quit", Description: "Quit", Category: "Window"},
		},
	}
}
