package platform

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// AudioFormat is a container the audio backend can decode
type AudioFormat string

const (
	FormatUnknown AudioFormat = ""
	FormatMP3     AudioFormat = "mp3"
	FormatWAV     AudioFormat = "wav"
	FormatOgg     AudioFormat = "ogg"
)

// AudioExtensions are offered by the file picker
var AudioExtensions = []string{".mp3", ".wav", ".ogg", ".oga"}

// ImageExtensions are accepted for reaction images
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}

// IsAudioFile reports whether path holds audio the backend can decode
func IsAudioFile(path string) bool {
	return DetectFormat(path) != FormatUnknown
}

// DetectFormat returns the format of path, by extension first and then by
// sniffing the container when the extension is unknown
func DetectFormat(path string) AudioFormat {
	if format := FormatFromExtension(path); format != FormatUnknown {
		return format
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return FormatUnknown
	}

	f, err := os.Open(path)
	if err != nil {
		return FormatUnknown
	}
	defer f.Close()
	return SniffFormat(f)
}

// FormatFromExtension maps a known audio extension to its format
func FormatFromExtension(path string) AudioFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return FormatMP3
	case ".wav":
		return FormatWAV
	case ".ogg", ".oga":
		return FormatOgg
	default:
		return FormatUnknown
	}
}

// SniffFormat identifies the container from the content of r and leaves r
// at its original position. Containers that are recognized but cannot be
// decoded (FLAC, M4A) are unknown.
func SniffFormat(r io.ReadSeeker) AudioFormat {
	_, fileType, err := tag.Identify(r)
	if err != nil {
		return FormatUnknown
	}
	switch fileType {
	case tag.MP3:
		return FormatMP3
	case tag.OGG:
		return FormatOgg
	default:
		return FormatUnknown
	}
}

// FilterAudioFiles keeps the audio files of paths in order
func FilterAudioFiles(paths []string) []string {
	audio := make([]string, 0, len(paths))
	for _, p := range paths {
		if IsAudioFile(p) {
			audio = append(audio, p)
		}
	}
	return audio
}

// IsImageFile reports whether path has an image extension
func IsImageFile(path string) bool {
	return hasExtension(path, ImageExtensions)
}

func hasExtension(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
