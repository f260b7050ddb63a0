/*
Package gdrive is a small helper layer over the Google Drive v3 API for working with a single Drive folder:
build an authenticated handle from service account credentials, then upload, download and search files in that
folder.

# Credentials

Service account fields are read from GOOGLE_CREDENTIALS_* environment variables (a .env file in the working
directory is honoured). Unset optional fields are dropped from the assembled key rather than sent empty, and a
private key stored on one line with literal \n escapes is normalized back to a PEM block.

	cfg, err := gdrive.LoadCredentialConfig()
	if err != nil {
		return err
	}
	creds, err := gdrive.NewCredentials(ctx, cfg)
	if err != nil {
		return err // *gdrive.CredentialError
	}

# Service

A Service is built once and passed to every operation. It is bound to the full Drive scope.

	svc, err := gdrive.NewService(ctx, creds,
		gdrive.WithLogger(logger),
		gdrive.WithDownloadDir("/tmp/playlists"),
	)

NewServiceFromEnv does both steps at once.

# Operations

	// by name inside the folder; "" and a nil error when nothing matches
	path, err := svc.Download(ctx, "mix.xspf", folderID, false)

	// by id; the local name comes from the file metadata
	path, err = svc.Download(ctx, fileID, folderID, true)

	id, err := svc.Upload(ctx, "/tmp/mix.xspf", folderID, upload.WithContentType("text/xml"))

	names, err := svc.SearchSuffix(ctx, folderID) // sorted *.xspf names

	it := svc.SearchSubstring(ctx, folderID, "mix")
	for {
		ref, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return err
		}
		fmt.Println(ref.ID, ref.Name)
	}

# Errors

Failures are typed: *CredentialError, *ServiceError, *TransferError for Drive calls and *IOError for local
files. All of them unwrap to the underlying cause.

See Also

See: https://developers.google.com/drive/api/reference/rest/v3/files
*/
package gdrive
