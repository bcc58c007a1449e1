package handler

import (
	"mime/multipart"

	"orgsite-backend/internal/services"
)

// openUploads opens every multipart file header and returns the upload
// descriptors plus a cleanup closing all opened files. On error the
// already-opened files are closed before returning.
func openUploads(headers []*multipart.FileHeader) ([]services.UploadedFile, func(), error) {
	var opened []multipart.File
	cleanup := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	files := make([]services.UploadedFile, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			cleanup()
			return nil, func() {}, err
		}
		opened = append(opened, f)
		files = append(files, services.UploadedFile{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Data:        f,
		})
	}
	return files, cleanup, nil
}

// openSingleUpload opens an optional single file field. Returns nil
// when the field is absent.
func openSingleUpload(fh *multipart.FileHeader) (*services.UploadedFile, func(), error) {
	if fh == nil {
		return nil, func() {}, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, func() {}, err
	}
	return &services.UploadedFile{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Data:        f,
	}, func() { f.Close() }, nil
}
