package validators

import (
	"errors"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	pkgerrors "github.com/angelmondragon/tienda-backend/pkg/errors"
)

// multipartMemory is the in-memory budget before parts spill to temp files.
const multipartMemory = 8 << 20

// IsMultipart reports whether the request carries multipart/form-data.
func IsMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && strings.EqualFold(mediaType, "multipart/form-data")
}

// MultipartForm holds the text fields and at most one file of a multipart request.
type MultipartForm struct {
	Values url.Values
	File   multipart.File
	Header *multipart.FileHeader
}

// Close releases the uploaded file and any temp files.
func (f *MultipartForm) Close(r *http.Request) {
	if f.File != nil {
		_ = f.File.Close()
	}
	if r.MultipartForm != nil {
		_ = r.MultipartForm.RemoveAll()
	}
}

// ParseMultipart parses a multipart body capped at maxBytes and extracts fileField
// if present. A text value under fileField stays in Values.
func ParseMultipart(w http.ResponseWriter, r *http.Request, fileField string, maxBytes int64) (*MultipartForm, error) {
	if maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartMemory)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "request body too large").
				WithDetails(map[string]any{"max_bytes": maxBytes})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart body")
	}

	form := &MultipartForm{Values: url.Values(r.MultipartForm.Value)}
	file, header, err := r.FormFile(fileField)
	switch {
	case err == nil:
		form.File = file
		form.Header = header
	case errors.Is(err, http.ErrMissingFile):
	default:
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid file field").
			WithDetails(map[string]any{"field": fileField})
	}
	return form, nil
}
