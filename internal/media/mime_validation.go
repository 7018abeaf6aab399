package media

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var allowedImageTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
	"image/gif":  ".gif",
	"image/avif": ".avif",
}

var allowedImageDescription = buildImageDescription()

func buildImageDescription() string {
	names := make([]string, 0, len(allowedImageTypes))
	for mt := range allowedImageTypes {
		names = append(names, strings.TrimPrefix(mt, "image/"))
	}
	sort.Strings(names)
	return humanReadableList(names)
}

func humanReadableList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return fmt.Sprintf("%s or %s", items[0], items[1])
	default:
		return fmt.Sprintf("%s, or %s", strings.Join(items[:len(items)-1], ", "), items[len(items)-1])
	}
}

// sniffImage detects the content type from the bytes and rejects anything
// outside the image allow-list, whatever the client claimed.
func sniffImage(content []byte) (mimeType string, ext string, err error) {
	detected := mimetype.Detect(content)
	for mt := detected; mt != nil; mt = mt.Parent() {
		if ext, ok := allowedImageTypes[mt.String()]; ok {
			return mt.String(), ext, nil
		}
	}
	return "", "", fmt.Errorf("unsupported file type %s; allowed images are %s", detected.String(), allowedImageDescription)
}
