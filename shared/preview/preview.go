package preview

import (
	"slices"
	"strings"
)

const (
	thumbnailDir     = "/images/thumbnail/"
	DefaultThumbnail = thumbnailDir + "TXT.png"
)

// allowedFileTypes are the subtypes that have a dedicated thumbnail.
var allowedFileTypes = []string{
	"pdf",
	"doc",
	"ai",
	"avi",
	"docx",
	"csv",
	"ppt",
	"zip",
	"rar",
	"jpeg",
	"png",
	"jpg",
}

type Result struct {
	Preview string `json:"preview"`
	Type    string `json:"type"`
}

// ByType resolves the thumbnail for a MIME type without looking at the content.
func ByType(mime string) Result {
	return Result{Preview: Thumbnail(mime), Type: mime}
}

// ByTypeURL previews images with their own url and everything else with a thumbnail.
func ByTypeURL(url, mime string) Result {
	if IsImage(mime) || mime == "image" {
		return Result{Preview: url, Type: mime}
	}

	return ByType(mime)
}

// ByDataURL resolves a base64 data url; images preview themselves.
func ByDataURL(dataURL string) Result {
	mime := ContentType(dataURL)
	if IsImage(mime) {
		return Result{Preview: dataURL, Type: mime}
	}

	return ByType(mime)
}

// Thumbnail returns /images/thumbnail/<EXT>.png for allowed subtypes, TXT.png otherwise.
func Thumbnail(mime string) string {
	parts := strings.Split(mime, "/")
	if len(parts) < 2 || parts[1] == "" {
		return DefaultThumbnail
	}

	if !slices.Contains(allowedFileTypes, parts[1]) {
		return DefaultThumbnail
	}

	return thumbnailDir + strings.ToUpper(parts[1]) + ".png"
}

func IsImage(mime string) bool {
	return strings.Contains(mime, "image/")
}

// ContentType extracts the MIME type of a "data:<type>;base64,..." url, or "" when
// the value is not one.
func ContentType(dataURL string) string {
	if !strings.HasPrefix(dataURL, "data:") {
		return ""
	}

	start := len("data:")
	end := strings.Index(dataURL, ";base64,")

	if end == -1 || end < start {
		return ""
	}

	return dataURL[start:end]
}
