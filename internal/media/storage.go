package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/angelmondragon/tienda-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/tienda-backend/pkg/errors"
	"github.com/google/uuid"
)

// PublicPrefix is the route under which stored files are served.
const PublicPrefix = "/uploads/"

const maxNameLength = 80

// Upload is an image received from a client.
type Upload struct {
	Filename string
	Content  io.Reader
}

// StoredFile describes a persisted upload.
type StoredFile struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
}

// LocalStorage writes uploads to a directory served back under PublicPrefix.
type LocalStorage struct {
	dir        string
	publicBase string
	maxBytes   int64
	now        func() time.Time
}

// NewLocalStorage creates the upload directory if needed.
func NewLocalStorage(cfg config.MediaConfig, publicBase string) (*LocalStorage, error) {
	dir := strings.TrimSpace(cfg.UploadDir)
	if dir == "" {
		return nil, fmt.Errorf("upload dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %q: %w", dir, err)
	}
	return &LocalStorage{
		dir:        dir,
		publicBase: strings.TrimRight(strings.TrimSpace(publicBase), "/"),
		maxBytes:   cfg.MaxUploadBytes(),
		now:        time.Now,
	}, nil
}

// Dir returns the directory holding stored files.
func (s *LocalStorage) Dir() string {
	return s.dir
}

// MaxBytes is the largest accepted upload.
func (s *LocalStorage) MaxBytes() int64 {
	return s.maxBytes
}

// SaveImage validates and stores an image, returning its public URL.
func (s *LocalStorage) SaveImage(ctx context.Context, upload Upload) (*StoredFile, error) {
	if upload.Content == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "imagen is empty")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := io.ReadAll(io.LimitReader(upload.Content, s.maxBytes+1))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "read imagen")
	}
	if len(content) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "imagen is empty")
	}
	if int64(len(content)) > s.maxBytes {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("imagen exceeds %d bytes", s.maxBytes))
	}

	mimeType, ext, err := sniffImage(content)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, err.Error())
	}

	name := s.storedName(upload.Filename, ext)
	full := filepath.Join(s.dir, name)
	if err := writeExclusive(full, content); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store imagen")
	}

	return &StoredFile{
		Name:     name,
		URL:      s.PublicURL(name),
		MimeType: mimeType,
		Size:     int64(len(content)),
	}, nil
}

// PublicURL builds the address clients use to fetch a stored file.
func (s *LocalStorage) PublicURL(name string) string {
	return s.publicBase + path.Join(PublicPrefix, name)
}

// Remove deletes a stored file by name; missing files are ignored.
func (s *LocalStorage) Remove(name string) error {
	clean := filepath.Base(name)
	if clean == "." || clean == string(filepath.Separator) {
		return nil
	}
	if err := os.Remove(filepath.Join(s.dir, clean)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// storedName is <unix-millis>-<uuid>-<sanitized original>.
func (s *LocalStorage) storedName(original, ext string) string {
	clean := sanitizeFileName(original)
	if clean == "" {
		clean = "imagen" + ext
	}
	return fmt.Sprintf("%d-%s-%s", s.now().UnixMilli(), uuid.NewString(), clean)
}

func sanitizeFileName(name string) string {
	if name == "" {
		return ""
	}
	clean := path.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	if clean == "." || clean == "/" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(clean))
	for _, r := range clean {
		switch {
		case r == '/' || unicode.IsControl(r):
			continue
		case unicode.IsSpace(r):
			b.WriteRune('-')
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '-' || r == '_'):
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	result := strings.Trim(b.String(), "-_.")
	if len(result) > maxNameLength {
		result = result[len(result)-maxNameLength:]
	}
	return result
}

func writeExclusive(full string, content []byte) error {
	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, bytes.NewReader(content)); err != nil {
		_ = f.Close()
		_ = os.Remove(full)
		return err
	}
	return f.Close()
}
