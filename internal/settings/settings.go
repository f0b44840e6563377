package settings

import "slices"

// Ribbon describes the narrow "ribbon" window mode.
type Ribbon struct {
	Enabled bool  `json:"enabled"`
	Width   int32 `json:"width"`
	Height  int32 `json:"height"`
}

// Settings holds the shell's user preferences persisted to disk.
//
// JSON Schema:
//
//	{
//	  "lang": "ru",
//	  "showAddress": true,
//	  "showTabs": true,
//	  "onTop": false,
//	  "rememberSession": true,
//	  "borderPx": 3,
//	  "ribbon": {"enabled": false, "width": 480, "height": 120},
//	  "hud": false,
//	  "snap": false,
//	  "bookmarks": ["https://www.google.com"]
//	}
//
// Settings are stored at <data_dir>/settings.json and always written whole.
type Settings struct {
	// Lang is the UI language tag.
	Lang string `json:"lang"`

	// ShowAddress shows the address bar.
	ShowAddress bool `json:"showAddress"`

	// ShowTabs shows the tab strip.
	ShowTabs bool `json:"showTabs"`

	// OnTop keeps the window above all others.
	OnTop bool `json:"onTop"`

	// RememberSession reopens the last visited URL on start.
	RememberSession bool `json:"rememberSession"`

	// BorderPx is the window outline width in pixels.
	BorderPx uint8 `json:"borderPx"`

	Ribbon Ribbon `json:"ribbon"`

	// HUD makes the window click-through.
	HUD bool `json:"hud"`

	// Snap docks the window to the monitor edge.
	Snap bool `json:"snap"`

	// Bookmarks keeps user order; duplicates are allowed.
	Bookmarks []string `json:"bookmarks"`
}

// DefaultSettings returns settings with all default values.
func DefaultSettings() *Settings {
	return &Settings{
		Lang:            DefaultLanguage,
		ShowAddress:     true,
		ShowTabs:        true,
		OnTop:           false,
		RememberSession: true,
		BorderPx:        DefaultBorderPx,
		Ribbon: Ribbon{
			Enabled: false,
			Width:   DefaultRibbonWidth,
			Height:  DefaultRibbonHeight,
		},
		HUD:       false,
		Snap:      false,
		Bookmarks: []string{DefaultBookmark},
	}
}

// Clone returns a deep copy of s.
func (s *Settings) Clone() *Settings {
	if s == nil {
		return nil
	}
	c := *s
	c.Bookmarks = slices.Clone(s.Bookmarks)
	return &c
}
