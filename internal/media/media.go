// Package media bridges resource handlers to the external media host.
package media

import (
	"context"
	"io"
	"mime"
	"net/url"
	"path"
	"strings"
)

// Kind classifies an asset for storage and deletion.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
	KindAudio Kind = "audio"
)

var (
	videoExtensions = map[string]bool{".mp4": true, ".mov": true, ".avi": true, ".mkv": true, ".webm": true}
	audioExtensions = map[string]bool{".mp3": true, ".wav": true, ".ogg": true, ".flac": true}
)

// Classify maps a filename to an asset kind by extension. Unknown
// extensions are treated as images.
func Classify(filename string) Kind {
	ext := strings.ToLower(path.Ext(filename))
	switch {
	case videoExtensions[ext]:
		return KindVideo
	case audioExtensions[ext]:
		return KindAudio
	default:
		return KindImage
	}
}

// File is one uploaded asset handed to the host.
type File struct {
	Reader io.Reader
	Name   string
	Size   int64
}

// Host is the external media hosting API. Uploads return a durable public
// URL; deletes take the public identifier extracted from such a URL.
type Host interface {
	Upload(ctx context.Context, file File) (string, error)
	Delete(ctx context.Context, publicID string, kind Kind) error
}

// ExtractPublicID derives the host's public identifier from a previously
// returned URL: the final path segment with query string and extension
// stripped. Returns "" when the URL has no usable path.
func ExtractPublicID(fileURL string) string {
	trimmed := fileURL
	if parsed, err := url.Parse(fileURL); err == nil {
		trimmed = parsed.Path
	}
	segment := path.Base(trimmed)
	if segment == "." || segment == "/" {
		return ""
	}
	segment = strings.TrimSuffix(segment, path.Ext(segment))
	if decoded, err := url.PathUnescape(segment); err == nil {
		return decoded
	}
	return segment
}

func contentType(filename string) string {
	if t := mime.TypeByExtension(strings.ToLower(path.Ext(filename))); t != "" {
		return t
	}
	return "application/octet-stream"
}
