package gdrive

import "fmt"

// Error is a type that allows for error constants below
type Error string

// Error returns a string representation of the error
func (e Error) Error() string { return string(e) }

const (
	// ErrIncompleteCredential - a mandatory credential field is missing or has an unsupported value
	ErrIncompleteCredential = Error("credential config is incomplete")

	// ErrInvalidPrivateKey - private key is not a PEM encoded PKCS#1 or PKCS#8 RSA key
	ErrInvalidPrivateKey = Error("private key is not a valid PEM encoded RSA key")

	// ErrCredentialsRequired - NewService was given neither credentials nor a client
	ErrCredentialsRequired = Error("credentials are required unless a client or client options are supplied")

	// ErrServiceRequired - operation called on a nil *Service
	ErrServiceRequired = Error("non-nil gdrive.Service pointer is required")

	// ErrFolderRequired - folder id is empty
	ErrFolderRequired = Error("non-empty folder id is required")

	// ErrUnsafeName - remote name cannot be used as a local file name
	ErrUnsafeName = Error("remote file name is not a single local path element")
)

// CredentialError is returned when a service account credential cannot be assembled.
type CredentialError struct {
	Err error
}

func (e *CredentialError) Error() string { return fmt.Sprintf("credential error: %v", e.Err) }

func (e *CredentialError) Unwrap() error { return e.Err }

// ServiceError is returned when the Drive service handle cannot be constructed.
type ServiceError struct {
	Err error
}

func (e *ServiceError) Error() string { return fmt.Sprintf("service error: %v", e.Err) }

func (e *ServiceError) Unwrap() error { return e.Err }

// TransferError is returned when a call to the Drive API fails. Op names the call, e.g. "files.list".
type TransferError struct {
	Op  string
	Err error
}

func (e *TransferError) Error() string { return fmt.Sprintf("transfer error: %s: %v", e.Op, e.Err) }

func (e *TransferError) Unwrap() error { return e.Err }

// IOError is returned when a local file cannot be read or written.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string { return fmt.Sprintf("io error: %s %s: %v", e.Op, e.Path, e.Err) }

func (e *IOError) Unwrap() error { return e.Err }

func wrapTransferError(op string, err error) error {
	return &TransferError{Op: op, Err: err}
}

func wrapIOError(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Err: err}
}
