package gdrive_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"github.com/c2fo/gdrive"
	"github.com/c2fo/gdrive/mocks"
)

type DownloadTestSuite struct {
	suite.Suite
	mockClient *mocks.Client
	svc        *gdrive.Service
	dir        string
}

func TestDownloadTestSuite(t *testing.T) {
	suite.Run(t, new(DownloadTestSuite))
}

func (s *DownloadTestSuite) SetupTest() {
	s.mockClient = mocks.NewClient(s.T())
	s.dir = s.T().TempDir()

	var err error
	s.svc, err = gdrive.NewService(context.Background(), nil,
		gdrive.WithClient(s.mockClient),
		gdrive.WithDownloadDir(s.dir),
		gdrive.WithChunkSize(4),
	)
	s.Require().NoError(err)
}

func (s *DownloadTestSuite) expectContent(fileID, body string) {
	s.mockClient.EXPECT().
		DownloadChunk(mock.Anything, fileID, mock.Anything, int64(4)).
		RunAndReturn(func(_ context.Context, _ string, offset, size int64) (gdrive.MediaChunk, error) {
			end := min(offset+size, int64(len(body)))
			return gdrive.MediaChunk{Data: []byte(body[offset:end]), Total: int64(len(body))}, nil
		})
}

func (s *DownloadTestSuite) TestByNameNotFound() {
	s.mockClient.EXPECT().
		List(mock.Anything, gdrive.ListRequest{
			Query:  `name='missing.xspf' and 'F' in parents`,
			Fields: "files(id)",
		}).
		Return(&drive.FileList{}, nil).
		Once()

	path, err := s.svc.Download(context.Background(), "missing.xspf", "F", false)

	s.NoError(err, "absence is not an error")
	s.Empty(path)
	entries, err := os.ReadDir(s.dir)
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *DownloadTestSuite) TestByNameUsesFirstMatch() {
	s.mockClient.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(req gdrive.ListRequest) bool {
			return req.Query == `name='mix.xspf' and 'F' in parents`
		})).
		Return(&drive.FileList{Files: []*drive.File{{Id: "first"}, {Id: "second"}}}, nil).
		Once()
	s.expectContent("first", "<playlist/>")

	path, err := s.svc.Download(context.Background(), "mix.xspf", "F", false)
	s.Require().NoError(err)

	s.Equal(filepath.Join(s.dir, "mix.xspf"), path)
	s.True(filepath.IsAbs(path))
	content, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.Equal("<playlist/>", string(content))
	s.mockClient.AssertNotCalled(s.T(), "DownloadChunk", mock.Anything, "second", mock.Anything, mock.Anything)
}

func (s *DownloadTestSuite) TestByIDUsesMetadataName() {
	s.mockClient.EXPECT().
		Get(mock.Anything, "abc123", googleapi.Field("id, name, parents")).
		Return(&drive.File{Id: "abc123", Name: "remote name.xspf", Parents: []string{"F"}}, nil).
		Once()
	s.expectContent("abc123", "0123456789")

	path, err := s.svc.Download(context.Background(), "abc123", "F", true)
	s.Require().NoError(err)

	s.Equal(filepath.Join(s.dir, "remote name.xspf"), path)
	_, err = os.Stat(filepath.Join(s.dir, "abc123"))
	s.True(os.IsNotExist(err), "file must not be saved under its id")
	content, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.Equal("0123456789", string(content))
}

func (s *DownloadTestSuite) TestByNameRequiresFolder() {
	_, err := s.svc.Download(context.Background(), "mix.xspf", "", false)
	s.ErrorIs(err, gdrive.ErrFolderRequired)
}

func (s *DownloadTestSuite) TestTransferErrors() {
	s.Run("list fails", func() {
		s.mockClient.EXPECT().List(mock.Anything, mock.Anything).Return(nil, errors.New("quota exceeded")).Once()

		_, err := s.svc.Download(context.Background(), "mix.xspf", "F", false)

		var transferErr *gdrive.TransferError
		s.Require().ErrorAs(err, &transferErr)
		s.Equal("files.list", transferErr.Op)
		s.ErrorContains(err, "quota exceeded")
	})

	s.Run("get fails", func() {
		s.mockClient.EXPECT().
			Get(mock.Anything, "gone", mock.Anything).
			Return(nil, &googleapi.Error{Code: 404, Message: "File not found"}).
			Once()

		_, err := s.svc.Download(context.Background(), "gone", "F", true)

		var transferErr *gdrive.TransferError
		s.Require().ErrorAs(err, &transferErr)
		var apiErr *googleapi.Error
		s.Require().ErrorAs(err, &apiErr)
		s.Equal(404, apiErr.Code)
	})

	s.Run("chunk fails", func() {
		s.mockClient.EXPECT().
			Get(mock.Anything, "flaky", mock.Anything).
			Return(&drive.File{Id: "flaky", Name: "flaky.xspf"}, nil).
			Once()
		s.mockClient.EXPECT().
			DownloadChunk(mock.Anything, "flaky", int64(0), int64(4)).
			Return(gdrive.MediaChunk{}, errors.New("connection reset")).
			Once()

		_, err := s.svc.Download(context.Background(), "flaky", "F", true)

		var transferErr *gdrive.TransferError
		s.Require().ErrorAs(err, &transferErr)
		s.Equal("files.get media", transferErr.Op)
		_, statErr := os.Stat(filepath.Join(s.dir, "flaky.xspf"))
		s.True(os.IsNotExist(statErr))
	})
}

func (s *DownloadTestSuite) TestIOErrors() {
	s.Run("unsafe remote name", func() {
		s.mockClient.EXPECT().
			Get(mock.Anything, "evil", mock.Anything).
			Return(&drive.File{Id: "evil", Name: "../escape.xspf"}, nil).
			Once()

		_, err := s.svc.Download(context.Background(), "evil", "F", true)

		var ioErr *gdrive.IOError
		s.Require().ErrorAs(err, &ioErr)
		s.ErrorIs(err, gdrive.ErrUnsafeName)
	})

	s.Run("missing download dir", func() {
		svc, err := gdrive.NewService(context.Background(), nil,
			gdrive.WithClient(s.mockClient),
			gdrive.WithDownloadDir(filepath.Join(s.dir, "does", "not", "exist")),
			gdrive.WithChunkSize(4),
		)
		s.Require().NoError(err)
		s.mockClient.EXPECT().
			Get(mock.Anything, "ok", mock.Anything).
			Return(&drive.File{Id: "ok", Name: "ok.xspf"}, nil).
			Once()
		s.expectContent("ok", "data")

		_, err = svc.Download(context.Background(), "ok", "F", true)

		var ioErr *gdrive.IOError
		s.Require().ErrorAs(err, &ioErr)
		s.Equal("write", ioErr.Op)
	})
}
