package handler

import (
	"io"
	"mime/multipart"

	appErrors "github.com/noah-isme/unigov-client/pkg/errors"
)

type uploadStorage interface {
	SaveStream(original string, r io.Reader) (string, error)
	Delete(name string) error
}

func saveUpload(store uploadStorage, header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "unreadable upload")
	}
	defer file.Close() //nolint:errcheck

	name, err := store.SaveStream(header.Filename, file)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store upload")
	}
	return name, nil
}
