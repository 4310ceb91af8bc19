package archive

import (
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/localsite/internal/foundation/errors"
	"git.home.luguber.info/inful/localsite/internal/site"
)

// WriteDir writes files below root, creating it if needed. Existing files
// are replaced. Names that are absolute or escape root are rejected before
// anything is written.
func WriteDir(root string, files []site.File) error {
	if root == "" {
		return errors.ValidationError("output directory is required").Build()
	}

	paths := make([]string, len(files))
	for i, f := range files {
		p, err := safeJoin(root, f.Name)
		if err != nil {
			return err
		}
		paths[i] = p
	}

	for i, f := range files {
		if err := os.MkdirAll(filepath.Dir(paths[i]), 0o750); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "create output directory").
				WithContext("path", filepath.Dir(paths[i])).
				Build()
		}
		if err := os.WriteFile(paths[i], []byte(f.Content), 0o600); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "write output file").
				WithContext("path", paths[i]).
				Build()
		}
	}
	return nil
}

func safeJoin(root, name string) (string, error) {
	if name == "" {
		return "", errors.ValidationError("output path is required").Build()
	}
	cleanRel := filepath.Clean(filepath.FromSlash(name))
	if filepath.IsAbs(cleanRel) || cleanRel == ".." || strings.HasPrefix(cleanRel, ".."+string(filepath.Separator)) {
		return "", errors.ValidationError("output path must be relative to the output directory").
			WithContext("path", name).
			Build()
	}

	full := filepath.Join(root, cleanRel)
	rel, err := filepath.Rel(root, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.ValidationError("output path escapes the output directory").
			WithContext("path", name).
			Build()
	}
	return full, nil
}
