package test

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

// MultipartFile builds a multipart body with the content as form file "file"
// and all fields as additional form values.
//
// The body is returned as a buffer together with the HTTP request headers.
func MultipartFile(t *testing.T, fileName string, content []byte, fields map[string]string) (*bytes.Buffer, map[string]string) {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	w, err := mw.CreateFormFile("file", fileName)
	require.Nil(t, err)

	_, err = w.Write(content)
	require.Nil(t, err)

	for k, v := range fields {
		require.Nil(t, mw.WriteField(k, v))
	}

	require.Nil(t, mw.Close())

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}
