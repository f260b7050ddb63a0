package upload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c2fo/gdrive/options/upload"
)

func TestWithContentType(t *testing.T) {
	opt := upload.WithContentType("application/json")

	ct, ok := opt.(*upload.ContentType)
	require.Truef(t, ok, "expected `*upload.ContentType`, got %T", opt)
	assert.Equal(t, upload.ContentType("application/json"), *ct)
	assert.Equal(t, "uploadContentType", ct.UploadOptionName())
}
