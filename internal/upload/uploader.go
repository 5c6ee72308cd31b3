package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// Uploader stores uploaded images under a single public directory. Filenames
// are the millisecond epoch timestamp plus the original extension, so a file
// is reachable at a predictable URL as soon as it is written.
type Uploader struct {
	dir string
}

func NewUploader(dir string) (*Uploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Uploader{dir: dir}, nil
}

func (u *Uploader) Dir() string {
	return u.dir
}

// Save writes the uploaded file to the upload directory and returns the
// generated filename. Two uploads in the same millisecond produce the same
// name and the later write wins.
func (u *Uploader) Save(fh *multipart.FileHeader) (string, error) {
	name := fmt.Sprintf("%d%s", time.Now().UnixMilli(), filepath.Ext(fh.Filename))

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return name, nil
}

// Remove deletes a stored file by its generated name.
func (u *Uploader) Remove(name string) error {
	return os.Remove(filepath.Join(u.dir, name))
}

// Path returns the on-disk path of a stored file.
func (u *Uploader) Path(name string) string {
	return filepath.Join(u.dir, name)
}
