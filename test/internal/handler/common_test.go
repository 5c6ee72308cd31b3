package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
)

// createFormRequest builds an application/x-www-form-urlencoded request.
func createFormRequest(method, target string, form url.Values) *http.Request {
	req, err := http.NewRequest(method, target, strings.NewReader(form.Encode()))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// createMultipartRequest builds a multipart/form-data request with the given
// fields and, when fileName is non-empty, one file under the eventImage field.
func createMultipartRequest(method, target string, fields map[string]string, fileName string, fileContent []byte) *http.Request {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		_ = w.WriteField(k, v)
	}
	if fileName != "" {
		fw, err := w.CreateFormFile("eventImage", fileName)
		if err != nil {
			return nil
		}
		if _, err := io.Copy(fw, bytes.NewReader(fileContent)); err != nil {
			return nil
		}
	}
	if err := w.Close(); err != nil {
		return nil
	}
	req, err := http.NewRequest(method, target, body)
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}
