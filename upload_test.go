package gdrive_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"github.com/c2fo/gdrive"
	"github.com/c2fo/gdrive/mocks"
	"github.com/c2fo/gdrive/options/upload"
)

type UploadTestSuite struct {
	suite.Suite
	mockClient *mocks.Client
	svc        *gdrive.Service
	dir        string
}

func TestUploadTestSuite(t *testing.T) {
	suite.Run(t, new(UploadTestSuite))
}

func (s *UploadTestSuite) SetupTest() {
	s.mockClient = mocks.NewClient(s.T())
	s.dir = s.T().TempDir()

	var err error
	s.svc, err = gdrive.NewService(context.Background(), nil, gdrive.WithClient(s.mockClient))
	s.Require().NoError(err)
}

func (s *UploadTestSuite) writeLocal(name, body string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o600))
	return path
}

func (s *UploadTestSuite) TestUpload() {
	path := s.writeLocal("mix.xspf", "<playlist/>")

	s.mockClient.EXPECT().
		Create(mock.Anything,
			mock.MatchedBy(func(f *drive.File) bool {
				return f.Name == "mix.xspf" && len(f.Parents) == 1 && f.Parents[0] == "F"
			}),
			mock.Anything,
			"text/xml",
			googleapi.Field("id"),
		).
		RunAndReturn(func(_ context.Context, _ *drive.File, media io.Reader, _ string, _ ...googleapi.Field) (*drive.File, error) {
			body, err := io.ReadAll(media)
			s.Require().NoError(err)
			s.Equal("<playlist/>", string(body))
			return &drive.File{Id: "new-id"}, nil
		}).
		Once()

	id, err := s.svc.Upload(context.Background(), path, "F")
	s.Require().NoError(err)
	s.Equal("new-id", id)
}

func (s *UploadTestSuite) TestContentType() {
	testCases := []struct {
		name        string
		file        string
		expectedCT  string
		expectedNew string
	}{
		{name: "inferred json", file: "data.json", expectedCT: "application/json", expectedNew: "data.json"},
		{name: "unknown extension keeps xml default", file: "notes.zzz", expectedCT: "text/xml", expectedNew: "notes.zzz"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			path := s.writeLocal(tc.file, "{}")
			s.mockClient.EXPECT().
				Create(mock.Anything, mock.MatchedBy(func(f *drive.File) bool { return f.Name == tc.expectedNew }),
					mock.Anything, tc.expectedCT, googleapi.Field("id")).
				Return(&drive.File{Id: "id-" + tc.file}, nil).
				Once()

			id, err := s.svc.Upload(context.Background(), path, "F")
			s.Require().NoError(err)
			s.Equal("id-"+tc.file, id)
		})
	}
}

func (s *UploadTestSuite) TestUploadOptions() {
	path := s.writeLocal("local.bin", "payload")

	s.mockClient.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(f *drive.File) bool { return f.Name == "remote.xspf" }),
			mock.Anything, "application/xspf+xml", googleapi.Field("id")).
		Return(&drive.File{Id: "renamed"}, nil).
		Once()

	id, err := s.svc.Upload(context.Background(), path, "F",
		upload.WithName("remote.xspf"),
		upload.WithContentType("application/xspf+xml"),
	)
	s.Require().NoError(err)
	s.Equal("renamed", id)
}

func (s *UploadTestSuite) TestMissingLocalFile() {
	_, err := s.svc.Upload(context.Background(), filepath.Join(s.dir, "nope.xspf"), "F")

	var ioErr *gdrive.IOError
	s.Require().ErrorAs(err, &ioErr)
	s.Equal("open", ioErr.Op)
	s.True(errors.Is(err, os.ErrNotExist))
	s.mockClient.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *UploadTestSuite) TestRejected() {
	path := s.writeLocal("mix.xspf", "<playlist/>")
	s.mockClient.EXPECT().
		Create(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &googleapi.Error{Code: 403, Message: "insufficient permissions"}).
		Once()

	_, err := s.svc.Upload(context.Background(), path, "F")

	var transferErr *gdrive.TransferError
	s.Require().ErrorAs(err, &transferErr)
	s.Equal("files.create", transferErr.Op)
}

func (s *UploadTestSuite) TestRequiresFolder() {
	_, err := s.svc.Upload(context.Background(), "whatever", "")
	s.ErrorIs(err, gdrive.ErrFolderRequired)
}
