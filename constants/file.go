package constants

import "strings"

// Document formats supported by the extraction pipeline.
const (
	PDF   = "PDF"
	DOCX  = "DOCX"
	TXT   = "TXT"
	IMAGE = "IMAGE"
)

// FileTypes holds the allowed values for the format field in ParseJob.
var FileTypes = []string{PDF, DOCX, TXT, IMAGE}

// AllowedExtensions holds the default allowed file extensions for resume uploads.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"docx": {},
	"doc":  {},
	"txt":  {},
	"rtf":  {},
	"png":  {},
	"jpg":  {},
	"jpeg": {},
}

// MaxUploadBytes is the default size ceiling for a single upload (50 MB).
const MaxUploadBytes = 50 << 20

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsAllowedExt reports whether a normalized extension is in the allow-list.
func IsAllowedExt(ext string) bool {
	_, ok := AllowedExtensions[NormalizeExt(ext)]
	return ok
}

// MapExtToFormat maps a normalized extension to a pipeline format.
// Returns "" for extensions the pipeline does not handle.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "docx", "doc":
		return DOCX
	case "txt", "rtf", "text", "md":
		return TXT
	case "png", "jpg", "jpeg", "tif", "tiff", "bmp":
		return IMAGE
	default:
		return ""
	}
}
