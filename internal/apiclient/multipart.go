package apiclient

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"

	"github.com/noah-isme/unigov-client/internal/models"
)

type formField struct {
	name  string
	value string
}

type filePart struct {
	field      string
	attachment *models.Attachment
}

// multipartBody writes fields in order, then files, as multipart/form-data.
type multipartBody struct {
	fields []formField
	files  []filePart
}

func (b multipartBody) encode() (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for _, f := range b.fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", fmt.Errorf("write form field %s: %w", f.name, err)
		}
	}
	for _, f := range b.files {
		if f.attachment == nil || f.attachment.Content == nil {
			continue
		}
		part, err := w.CreateFormFile(f.field, filepath.Base(f.attachment.Filename))
		if err != nil {
			return nil, "", fmt.Errorf("create form file %s: %w", f.field, err)
		}
		if _, err := io.Copy(part, f.attachment.Content); err != nil {
			return nil, "", fmt.Errorf("copy form file %s: %w", f.field, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart body: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}
