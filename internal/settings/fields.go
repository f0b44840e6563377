package settings

import (
	"fmt"
	"strconv"
	"strings"
)

// Set assigns the field named key from its textual form.
// Booleans accept 1/true/yes/on and 0/false/no/off. Bookmarks take a
// comma-separated list; an empty value clears them.
func (s *Settings) Set(key, value string) error {
	switch key {
	case KeyLang:
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: lang cannot be empty", ErrInvalid)
		}
		s.Lang = strings.TrimSpace(value)
	case KeyShowAddress:
		return setBool(&s.ShowAddress, key, value)
	case KeyShowTabs:
		return setBool(&s.ShowTabs, key, value)
	case KeyOnTop:
		return setBool(&s.OnTop, key, value)
	case KeyRememberSession:
		return setBool(&s.RememberSession, key, value)
	case KeyBorderPx:
		n, err := strconv.ParseUint(strings.TrimSpace(value), 10, 8)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer between 0 and 255: %q", ErrInvalid, key, value)
		}
		s.BorderPx = uint8(n)
	case KeyRibbonEnabled:
		return setBool(&s.Ribbon.Enabled, key, value)
	case KeyRibbonWidth:
		return setDimension(&s.Ribbon.Width, key, value)
	case KeyRibbonHeight:
		return setDimension(&s.Ribbon.Height, key, value)
	case KeyHUD:
		return setBool(&s.HUD, key, value)
	case KeySnap:
		return setBool(&s.Snap, key, value)
	case KeyBookmarks:
		s.Bookmarks = splitList(value)
	default:
		return fmt.Errorf("%w: unknown settings key: %s", ErrInvalid, key)
	}
	return nil
}

// Get returns the textual form of the field named key.
func (s *Settings) Get(key string) (string, error) {
	switch key {
	case KeyLang:
		return s.Lang, nil
	case KeyShowAddress:
		return strconv.FormatBool(s.ShowAddress), nil
	case KeyShowTabs:
		return strconv.FormatBool(s.ShowTabs), nil
	case KeyOnTop:
		return strconv.FormatBool(s.OnTop), nil
	case KeyRememberSession:
		return strconv.FormatBool(s.RememberSession), nil
	case KeyBorderPx:
		return strconv.Itoa(int(s.BorderPx)), nil
	case KeyRibbonEnabled:
		return strconv.FormatBool(s.Ribbon.Enabled), nil
	case KeyRibbonWidth:
		return strconv.Itoa(int(s.Ribbon.Width)), nil
	case KeyRibbonHeight:
		return strconv.Itoa(int(s.Ribbon.Height)), nil
	case KeyHUD:
		return strconv.FormatBool(s.HUD), nil
	case KeySnap:
		return strconv.FormatBool(s.Snap), nil
	case KeyBookmarks:
		return strings.Join(s.Bookmarks, ","), nil
	default:
		return "", fmt.Errorf("%w: unknown settings key: %s", ErrInvalid, key)
	}
}

func setBool(dst *bool, key, value string) error {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		*dst = true
	case "0", "false", "no", "off":
		*dst = false
	default:
		return fmt.Errorf("%w: invalid boolean value for %s: %q, must be one of: 1, true, yes, on, 0, false, no, off", ErrInvalid, key, value)
	}
	return nil
}

func setDimension(dst *int32, key, value string) error {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 32)
	if err != nil {
		return fmt.Errorf("%w: %s must be a 32-bit integer: %q", ErrInvalid, key, value)
	}
	*dst = int32(n)
	return nil
}

func splitList(value string) []string {
	items := []string{}
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
