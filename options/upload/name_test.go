package upload_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/c2fo/gdrive/options/upload"
)

func TestWithName(t *testing.T) {
	is := require.New(t)

	opt := upload.WithName("renamed.xspf")

	n, ok := opt.(*upload.Name)
	is.True(ok)
	is.Equal(upload.Name("renamed.xspf"), *n)
	is.Equal("uploadName", n.UploadOptionName())
}
