// Package archive packages a generated site for download or writes it to
// disk.
package archive

import (
	"bytes"
	"time"
	"unicode/utf8"

	"github.com/klauspost/compress/zip"

	"git.home.luguber.info/inful/localsite/internal/foundation/errors"
	"git.home.luguber.info/inful/localsite/internal/site"
)

// ContentType is the MIME type of a packaged site.
const ContentType = "application/zip"

// epoch is the modification time stamped on every member so that identical
// input yields identical archives.
var epoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// Package compresses files into one zip archive, preserving names and order.
// Content that is not valid UTF-8 aborts the build and no bytes are returned.
func Package(files []site.File) ([]byte, error) {
	seen := make(map[string]struct{}, len(files))
	for _, f := range files {
		if !utf8.ValidString(f.Content) {
			return nil, errors.ArchiveEncodingFailure(f.Name)
		}
		if _, dup := seen[f.Name]; dup {
			return nil, errors.ArchiveError("duplicate archive member").
				WithContext("file", f.Name).
				Build()
		}
		seen[f.Name] = struct{}{}
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range files {
		hdr := &zip.FileHeader{
			Name:     f.Name,
			Method:   zip.Deflate,
			Modified: epoch,
		}
		hdr.SetMode(0o644)

		w, err := zw.CreateHeader(hdr)
		if err != nil {
			return nil, errors.WrapError(err, errors.CategoryArchive, "create archive member").
				WithContext("file", f.Name).
				Build()
		}
		if _, err := w.Write([]byte(f.Content)); err != nil {
			return nil, errors.WrapError(err, errors.CategoryArchive, "write archive member").
				WithContext("file", f.Name).
				Build()
		}
	}
	if err := zw.Close(); err != nil {
		return nil, errors.WrapError(err, errors.CategoryArchive, "finalize archive").Build()
	}
	return buf.Bytes(), nil
}
