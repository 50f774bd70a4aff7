package commands

import (
	"context"
	"io/fs"

	"github.com/thoreinstein/motd/internal/errors"
	"github.com/thoreinstein/motd/internal/logging"
	"github.com/thoreinstein/motd/internal/ordered"
	"github.com/thoreinstein/motd/internal/paths"
)

// resolveDocumentPath picks the dashboard document: --config, then the
// document setting, then the default search.
func resolveDocumentPath() (string, error) {
	if documentFlag != "" {
		return documentFlag, nil
	}
	if doc := currentSettings().Document; doc != "" {
		return doc, nil
	}
	path, err := paths.FindDocument()
	if err != nil {
		return "", errors.NewUserError(err, "Run: motd init")
	}
	return path, nil
}

// loadDashboard resolves and decodes the document. Unknown keys skipped
// in lenient mode are logged as warnings.
func loadDashboard(ctx context.Context, strict bool) (*ordered.Config, string, error) {
	path, err := resolveDocumentPath()
	if err != nil {
		return nil, "", err
	}

	var opts []ordered.Option
	if strict {
		opts = append(opts, ordered.WithStrict())
	}

	logger := logging.FromContext(ctx)
	logger.Debug("loading document", "path", path, "strict", strict)

	cfg, err := ordered.Load(path, opts...)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, path, errors.NewUserError(err, "Run: motd init")
		}
		return nil, path, errors.NewDocumentError(err)
	}

	for _, key := range cfg.Skipped {
		logger.Warn("skipping unknown section", "key", key, "document", path)
	}
	return cfg, path, nil
}
