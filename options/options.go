// Package options holds the option interfaces shared by gdrive constructors and operations.
package options

// NewServiceOption is applied to a *T while it is being constructed.
// Example:
// ```
//
//	type chunkSizeOpt struct{ size int64 }
//	func (o *chunkSizeOpt) Apply(s *gdrive.Service) {
//		s.options.ChunkSize = o.size
//	}
//	func (o *chunkSizeOpt) NewServiceOptionName() string {
//		return "chunkSize"
//	}
//
// ```
type NewServiceOption[T any] interface {
	Apply(*T)
	NewServiceOptionName() string
}

// ApplyOptions applies every non-nil option to target in order, so later options win.
func ApplyOptions[T any](target *T, opts ...NewServiceOption[T]) {
	for _, o := range opts {
		if o == nil {
			continue
		}
		o.Apply(target)
	}
}

// UploadOption interface contains function that should be implemented by any custom option to qualify as an upload
// option. Upload inspects the concrete option types it knows and ignores the rest.
type UploadOption interface {
	UploadOptionName() string
}
