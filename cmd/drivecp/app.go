package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"

	"github.com/c2fo/gdrive"
	"github.com/c2fo/gdrive/internal/logger"
	"github.com/c2fo/gdrive/options"
	"github.com/c2fo/gdrive/options/upload"
)

type serviceFactory func(ctx context.Context, cmd *cli.Command, l *zap.Logger) (*gdrive.Service, error)

type app struct {
	out        io.Writer
	newService serviceFactory
}

func newApp(out io.Writer) *app {
	return &app{out: out, newService: serviceFromFlags}
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:  "drivecp",
		Usage: "Copies files between the local disk and a Google Drive folder",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "folder",
				Aliases: []string{"f"},
				Usage:   "Drive folder id every operation is scoped to",
				Sources: cli.EnvVars("GDRIVE_FOLDER_ID"),
			},
			&cli.StringFlag{
				Name:    "credentials-file",
				Usage:   "service account key file; GOOGLE_CREDENTIALS_* variables are used when empty",
				Sources: cli.EnvVars("GDRIVE_CREDENTIALS_FILE"),
			},
			&cli.StringFlag{
				Name:  "dir",
				Usage: "directory downloads are written into",
				Value: ".",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "debug, info, warn or error",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "console or json",
				Value:   "console",
				Sources: cli.EnvVars("LOG_FORMAT"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "download",
				Usage:     "Download a file from the folder by name, or by id with --by-id",
				ArgsUsage: "NAME|ID",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "by-id", Usage: "treat the argument as a file id"},
				},
				Action: a.download,
			},
			{
				Name:      "upload",
				Usage:     "Upload a local file into the folder",
				ArgsUsage: "PATH",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "content-type", Usage: "MIME type; inferred from the extension when empty"},
					&cli.StringFlag{Name: "name", Usage: "remote name; the local base name when empty"},
				},
				Action: a.upload,
			},
			{
				Name:   "playlists",
				Usage:  "List the .xspf playlists in the folder, sorted by name",
				Action: a.playlists,
			},
			{
				Name:      "search",
				Usage:     "List files in the folder whose name contains QUERY",
				ArgsUsage: "QUERY",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Usage: "stop after this many results; 0 means all"},
				},
				Action: a.search,
			},
		},
	}
}

func (a *app) service(ctx context.Context, cmd *cli.Command) (*gdrive.Service, *zap.Logger, error) {
	l, err := logger.New(logger.Config{Level: cmd.String("log-level"), Format: cmd.String("log-format")})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	svc, err := a.newService(ctx, cmd, l)
	if err != nil {
		return nil, nil, err
	}
	return svc, l, nil
}

func (a *app) download(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return errors.New("download requires exactly one NAME or ID argument")
	}
	svc, l, err := a.service(ctx, cmd)
	if err != nil {
		return err
	}
	defer func() { _ = l.Sync() }()

	identifier := cmd.Args().First()
	path, err := svc.Download(ctx, identifier, cmd.String("folder"), cmd.Bool("by-id"))
	if err != nil {
		return err
	}
	if path == "" {
		_, _ = color.New(color.FgYellow).Fprintf(a.out, "not found: %s\n", identifier)
		return nil
	}
	_, _ = color.New(color.FgGreen).Fprintf(a.out, "downloaded %s\n", path)
	return nil
}

func (a *app) upload(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return errors.New("upload requires exactly one PATH argument")
	}
	svc, l, err := a.service(ctx, cmd)
	if err != nil {
		return err
	}
	defer func() { _ = l.Sync() }()

	path, err := homedir.Expand(cmd.Args().First())
	if err != nil {
		return err
	}

	var opts []options.UploadOption
	if ct := cmd.String("content-type"); ct != "" {
		opts = append(opts, upload.WithContentType(ct))
	}
	if name := cmd.String("name"); name != "" {
		opts = append(opts, upload.WithName(name))
	}

	id, err := svc.Upload(ctx, path, cmd.String("folder"), opts...)
	if err != nil {
		return err
	}
	_, _ = color.New(color.FgGreen).Fprintf(a.out, "uploaded %s as %s\n", path, id)
	return nil
}

func (a *app) playlists(ctx context.Context, cmd *cli.Command) error {
	svc, l, err := a.service(ctx, cmd)
	if err != nil {
		return err
	}
	defer func() { _ = l.Sync() }()

	names, err := svc.SearchSuffix(ctx, cmd.String("folder"))
	if err != nil {
		return err
	}
	for _, name := range names {
		_, _ = fmt.Fprintln(a.out, name)
	}
	return nil
}

func (a *app) search(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return errors.New("search requires exactly one QUERY argument")
	}
	svc, l, err := a.service(ctx, cmd)
	if err != nil {
		return err
	}
	defer func() { _ = l.Sync() }()

	limit := int(cmd.Int("limit"))
	it := svc.SearchSubstring(ctx, cmd.String("folder"), cmd.Args().First())
	for count := 0; limit <= 0 || count < limit; count++ {
		ref, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(a.out, "%s\t%s\n", ref.ID, ref.Name)
	}
	return nil
}

// serviceFromFlags builds credentials from --credentials-file or the environment and returns a Service
// writing downloads into --dir.
func serviceFromFlags(ctx context.Context, cmd *cli.Command, l *zap.Logger) (*gdrive.Service, error) {
	var (
		cfg gdrive.CredentialConfig
		err error
	)
	if path := cmd.String("credentials-file"); path != "" {
		path, err = homedir.Expand(path)
		if err != nil {
			return nil, err
		}
		cfg, err = gdrive.LoadCredentialConfigFile(path)
	} else {
		cfg, err = gdrive.LoadCredentialConfig()
	}
	if err != nil {
		return nil, err
	}

	creds, err := gdrive.NewCredentials(ctx, cfg)
	if err != nil {
		return nil, err
	}

	dir, err := homedir.Expand(cmd.String("dir"))
	if err != nil {
		return nil, err
	}
	return gdrive.NewService(ctx, creds, gdrive.WithLogger(l), gdrive.WithDownloadDir(dir))
}
