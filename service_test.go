package gdrive_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/c2fo/gdrive"
	"github.com/c2fo/gdrive/internal/fakedrive"
	"github.com/c2fo/gdrive/mocks"
)

type serviceSuite struct {
	suite.Suite
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(serviceSuite))
}

func (s *serviceSuite) TestNewServiceWithClient() {
	client := mocks.NewClient(s.T())

	svc, err := gdrive.NewService(context.Background(), nil, gdrive.WithClient(client))
	s.Require().NoError(err)
	s.Same(client, svc.Client())
	s.Equal(int64(gdrive.DefaultChunkSize), svc.Options().ChunkSize)
}

func (s *serviceSuite) TestNewServiceOptions() {
	svc, err := gdrive.NewService(context.Background(), nil,
		gdrive.WithClient(mocks.NewClient(s.T())),
		gdrive.WithChunkSize(1024),
		gdrive.WithDownloadDir("/tmp/downloads"),
		gdrive.WithLogger(zap.NewExample()),
	)
	s.Require().NoError(err)
	s.Equal(int64(1024), svc.Options().ChunkSize)
	s.Equal("/tmp/downloads", svc.Options().DownloadDir)

	svc, err = gdrive.NewService(context.Background(), nil,
		gdrive.WithClient(mocks.NewClient(s.T())),
		gdrive.WithChunkSize(0),
		gdrive.WithLogger(nil),
	)
	s.Require().NoError(err)
	s.Equal(int64(gdrive.DefaultChunkSize), svc.Options().ChunkSize, "non-positive chunk size falls back to default")
}

func (s *serviceSuite) TestNewServiceRequiresCredentials() {
	svc, err := gdrive.NewService(context.Background(), nil)
	s.Nil(svc)

	var svcErr *gdrive.ServiceError
	s.Require().ErrorAs(err, &svcErr)
	s.ErrorIs(err, gdrive.ErrCredentialsRequired)
}

func (s *serviceSuite) TestNewServiceWithClientOptions() {
	fake := fakedrive.New(s.T())

	svc, err := gdrive.NewService(context.Background(), nil, gdrive.WithClientOptions(fake.ClientOptions()...))
	s.Require().NoError(err)
	s.NotNil(svc.Client())
	s.Len(svc.Options().ClientOptions, 3)
}

func (s *serviceSuite) TestNilService() {
	var svc *gdrive.Service
	ctx := context.Background()

	_, err := svc.Download(ctx, "a", "F", false)
	s.ErrorIs(err, gdrive.ErrServiceRequired)

	_, err = svc.Upload(ctx, "a", "F")
	s.ErrorIs(err, gdrive.ErrServiceRequired)

	_, err = svc.SearchSuffix(ctx, "F")
	s.ErrorIs(err, gdrive.ErrServiceRequired)

	_, err = svc.SearchSubstringAll(ctx, "F", "a")
	s.ErrorIs(err, gdrive.ErrServiceRequired)
}
