// Package settings defines the browser shell user preferences record.
package settings

// Language tags offered by the shell UI.
const (
	LanguageEnglish = "en"
	LanguageRussian = "ru"
)

// Default values for a fresh installation.
const (
	DefaultLanguage     = LanguageRussian
	DefaultBorderPx     = 3
	DefaultRibbonWidth  = 480
	DefaultRibbonHeight = 120
	DefaultBookmark     = "https://www.google.com"
)

// Field keys, matching the persisted JSON names.
const (
	KeyLang            = "lang"
	KeyShowAddress     = "showAddress"
	KeyShowTabs        = "showTabs"
	KeyOnTop           = "onTop"
	KeyRememberSession = "rememberSession"
	KeyBorderPx        = "borderPx"
	KeyRibbonEnabled   = "ribbon.enabled"
	KeyRibbonWidth     = "ribbon.width"
	KeyRibbonHeight    = "ribbon.height"
	KeyHUD             = "hud"
	KeySnap            = "snap"
	KeyBookmarks       = "bookmarks"
)

// Keys lists every settable field in display order.
var Keys = []string{
	KeyLang,
	KeyShowAddress,
	KeyShowTabs,
	KeyOnTop,
	KeyRememberSession,
	KeyBorderPx,
	KeyRibbonEnabled,
	KeyRibbonWidth,
	KeyRibbonHeight,
	KeyHUD,
	KeySnap,
	KeyBookmarks,
}
