package audio

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// LocatorScheme prefixes every local media locator
const LocatorScheme = "media://"

var (
	// ErrBadLocator is returned for locators that are not media:// paths
	ErrBadLocator = errors.New("bad media locator")

	// ErrUnsupportedDevice is returned when the output device cannot be selected
	ErrUnsupportedDevice = errors.New("unsupported output device")
)

// Locator turns a local file path into a media:// locator. Each path segment
// is escaped so spaces and '#' survive the round trip.
func Locator(path string) string {
	segments := strings.Split(filepath.ToSlash(path), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return LocatorScheme + strings.Join(segments, "/")
}

// ResolveLocator returns the local file path behind a media:// locator
func ResolveLocator(locator string) (string, error) {
	rest, ok := strings.CutPrefix(locator, LocatorScheme)
	if !ok || rest == "" {
		return "", fmt.Errorf("%w: %q", ErrBadLocator, locator)
	}
	path, err := url.PathUnescape(rest)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadLocator, err)
	}
	return filepath.FromSlash(path), nil
}
