package upload_test

import (
	"bytes"
	"mime/multipart"
	"os"
	"regexp"
	"testing"

	"eventboard/internal/upload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, fileName string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("eventImage", fileName)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	reader := multipart.NewReader(body, w.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["eventImage"]
	require.Len(t, files, 1)
	return files[0]
}

func TestUploader_Save(t *testing.T) {
	uploader, err := upload.NewUploader(t.TempDir())
	require.NoError(t, err)

	name, err := uploader.Save(fileHeader(t, "party.png", []byte("image-bytes")))
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^\d+\.png$`), name)

	data, err := os.ReadFile(uploader.Path(name))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))
}

func TestUploader_SaveKeepsExtensionOnly(t *testing.T) {
	uploader, err := upload.NewUploader(t.TempDir())
	require.NoError(t, err)

	name, err := uploader.Save(fileHeader(t, "vacation.photo.JPG", []byte("x")))
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^\d+\.JPG$`), name)
	assert.NotContains(t, name, "vacation")
}

func TestUploader_Remove(t *testing.T) {
	uploader, err := upload.NewUploader(t.TempDir())
	require.NoError(t, err)

	name, err := uploader.Save(fileHeader(t, "party.png", []byte("image-bytes")))
	require.NoError(t, err)

	require.NoError(t, uploader.Remove(name))
	_, err = os.Stat(uploader.Path(name))
	assert.True(t, os.IsNotExist(err))
}

func TestUploader_RemoveMissingFile(t *testing.T) {
	uploader, err := upload.NewUploader(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, uploader.Remove("missing.png"))
}
