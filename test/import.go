package test

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
)

// StatementFile is an in-memory file for upload tests.
type StatementFile struct {
	Name    string
	Content []byte
}

// UploadBody builds a multipart request body from in-memory statement
// files plus optional extra form fields.
//
// The body is returned as a buffer and a map for the HTTP request headers.
func UploadBody(t *testing.T, files []StatementFile, fields map[string]string) (*bytes.Buffer, map[string]string) {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	for _, file := range files {
		w, err := mw.CreateFormFile("files", file.Name)
		if err != nil {
			assert.FailNow(t, err.Error())
		}

		if _, err := w.Write(file.Content); err != nil {
			assert.FailNow(t, err.Error())
		}
	}

	for field, value := range fields {
		if err := mw.WriteField(field, value); err != nil {
			assert.FailNow(t, err.Error())
		}
	}

	mw.Close()

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}
