// Package upload provides options for uploading files to a Drive folder.
package upload

import "github.com/c2fo/gdrive/options"

const optionNameUploadContentType = "uploadContentType"

// WithContentType returns ContentType implementation of UploadOption
func WithContentType(contentType string) options.UploadOption {
	ct := ContentType(contentType)
	return &ct
}

// ContentType represents the UploadOption that is used to explicitly specify the MIME type of uploaded media.
// Without it the type is inferred from the file extension.
type ContentType string

// UploadOptionName returns the name of ContentType option
func (ct *ContentType) UploadOptionName() string {
	return optionNameUploadContentType
}
