package gdrive

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/c2fo/gdrive/options"
)

// DefaultChunkSize is the number of bytes requested per media download chunk.
const DefaultChunkSize = 100 * 1024 * 1024

// Options holds Service configuration.
type Options struct {
	// ChunkSize is the size of each ranged download request (default: 100MB).
	ChunkSize int64

	// DownloadDir is the directory downloaded files are written into. Empty means the current working directory.
	DownloadDir string

	// ClientOptions are passed to drive.NewService after the credentials option, so they can override it
	// (custom endpoint, HTTP client).
	ClientOptions []option.ClientOption
}

// NewOptions creates Options with default values.
func NewOptions() Options {
	return Options{
		ChunkSize: DefaultChunkSize,
	}
}

// Service is an authenticated handle to the Drive files resource. Build one with NewService and pass it to
// every operation; it holds no mutable state once constructed and is safe for concurrent use.
type Service struct {
	client  Client
	options Options
	logger  *zap.Logger
}

// NewService builds a Service bound to Scope from creds. creds may be nil when WithClient supplies a client or
// WithClientOptions supplies authentication. Construction failures are returned as *ServiceError.
func NewService(ctx context.Context, creds *google.Credentials, opts ...options.NewServiceOption[Service]) (*Service, error) {
	s := &Service{
		options: NewOptions(),
		logger:  zap.NewNop(),
	}

	options.ApplyOptions(s, opts...)

	if s.options.ChunkSize <= 0 {
		s.options.ChunkSize = DefaultChunkSize
	}

	if s.client != nil {
		return s, nil
	}

	if creds == nil && len(s.options.ClientOptions) == 0 {
		return nil, &ServiceError{Err: ErrCredentialsRequired}
	}

	var clientOpts []option.ClientOption
	if creds != nil {
		clientOpts = append(clientOpts, option.WithCredentials(creds))
	}
	clientOpts = append(clientOpts, s.options.ClientOptions...)

	svc, err := drive.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, &ServiceError{Err: err}
	}
	s.client = newDriveClient(svc)

	s.logger.Debug("drive service created")
	return s, nil
}

// NewServiceFromEnv loads a CredentialConfig from the environment, builds credentials from it and returns a
// Service. Credential failures are *CredentialError, construction failures *ServiceError.
func NewServiceFromEnv(ctx context.Context, opts ...options.NewServiceOption[Service]) (*Service, error) {
	cfg, err := LoadCredentialConfig()
	if err != nil {
		return nil, err
	}
	creds, err := NewCredentials(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewService(ctx, creds, opts...)
}

// Client returns the underlying Drive client.
func (s *Service) Client() Client {
	return s.client
}

// Options returns the options the Service was built with.
func (s *Service) Options() Options {
	return s.options
}
