package gdrive

import (
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/c2fo/gdrive/options"
)

const (
	optionNameClient        = "client"
	optionNameClientOptions = "clientOptions"
	optionNameLogger        = "logger"
	optionNameChunkSize     = "chunkSize"
	optionNameDownloadDir   = "downloadDir"
)

// WithClient returns clientOpt implementation of NewServiceOption
//
// WithClient is used to explicitly specify a Client to use for the service, for instance a mock in tests.
// Credentials and client options are ignored when a client is set.
func WithClient(c Client) options.NewServiceOption[Service] {
	return &clientOpt{client: c}
}

type clientOpt struct {
	client Client
}

func (o *clientOpt) Apply(s *Service) {
	s.client = o.client
}

func (o *clientOpt) NewServiceOptionName() string {
	return optionNameClient
}

// WithClientOptions returns clientOptionsOpt implementation of NewServiceOption
//
// WithClientOptions appends Google API client options, such as option.WithEndpoint or option.WithHTTPClient.
func WithClientOptions(opts ...option.ClientOption) options.NewServiceOption[Service] {
	return &clientOptionsOpt{opts: opts}
}

type clientOptionsOpt struct {
	opts []option.ClientOption
}

func (o *clientOptionsOpt) Apply(s *Service) {
	s.options.ClientOptions = append(s.options.ClientOptions, o.opts...)
}

func (o *clientOptionsOpt) NewServiceOptionName() string {
	return optionNameClientOptions
}

// WithLogger sets the logger operations report to. Default is a no-op logger.
func WithLogger(l *zap.Logger) options.NewServiceOption[Service] {
	return &loggerOpt{logger: l}
}

type loggerOpt struct {
	logger *zap.Logger
}

func (o *loggerOpt) Apply(s *Service) {
	if o.logger != nil {
		s.logger = o.logger
	}
}

func (o *loggerOpt) NewServiceOptionName() string {
	return optionNameLogger
}

// WithChunkSize sets the number of bytes fetched per download request.
// Default is 100MB.
func WithChunkSize(size int64) options.NewServiceOption[Service] {
	return &chunkSizeOpt{size: size}
}

type chunkSizeOpt struct {
	size int64
}

func (o *chunkSizeOpt) Apply(s *Service) {
	s.options.ChunkSize = o.size
}

func (o *chunkSizeOpt) NewServiceOptionName() string {
	return optionNameChunkSize
}

// WithDownloadDir sets the directory downloads are written into.
// Defaults to the current working directory.
func WithDownloadDir(dir string) options.NewServiceOption[Service] {
	return &downloadDirOpt{dir: dir}
}

type downloadDirOpt struct {
	dir string
}

func (o *downloadDirOpt) Apply(s *Service) {
	s.options.DownloadDir = o.dir
}

func (o *downloadDirOpt) NewServiceOptionName() string {
	return optionNameDownloadDir
}
