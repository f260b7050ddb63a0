package upload

import "github.com/c2fo/gdrive/options"

const optionNameUploadName = "uploadName"

// WithName returns Name implementation of UploadOption
func WithName(name string) options.UploadOption {
	n := Name(name)
	return &n
}

// Name represents the UploadOption that sets the remote file name instead of the local base name.
type Name string

// UploadOptionName returns the name of Name option
func (n *Name) UploadOptionName() string {
	return optionNameUploadName
}
