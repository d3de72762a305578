package strandmatch

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/krolaw/zipstream"
)

// DefaultMemberSuffix is the naming convention for reference members inside
// an archive, e.g. HumanOmni2.5M-b37.strand.
const DefaultMemberSuffix = ".strand"

// ErrArchive tags containers that cannot be opened or walked. One bad
// archive never aborts the scan of the others.
var ErrArchive = errors.New("unreadable archive")

// Archive streams the members of one zip container in file order. Members
// are read in place; nothing is extracted to disk.
type Archive struct {
	Path string

	f  *os.File
	zr *zipstream.Reader
}

func OpenArchive(p string) (*Archive, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArchive, err)
	}

	return &Archive{Path: p, f: f, zr: zipstream.NewReader(f)}, nil
}

// Next advances to the next member and returns its name together with a
// reader over its raw bytes. The reader is only valid until the following
// Next call. io.EOF signals the end of the archive; directory entries are
// skipped.
func (a *Archive) Next() (string, io.Reader, error) {
	for {
		hdr, err := a.zr.Next()
		if err == io.EOF {
			return "", nil, io.EOF
		} else if err != nil {
			return "", nil, fmt.Errorf("%w: %v", ErrArchive, err)
		}

		if strings.HasSuffix(hdr.Name, "/") {
			continue
		}

		return hdr.Name, a.zr, nil
	}
}

func (a *Archive) Close() error {
	return a.f.Close()
}

// IsReferenceMember reports whether a member name follows the reference-file
// naming convention, allowing for a compression extension on top of the
// suffix.
func IsReferenceMember(name, suffix string) bool {
	base := path.Base(name)
	for _, ext := range []string{"", ".gz", ".xz", ".bz2"} {
		if strings.HasSuffix(base, suffix+ext) {
			return true
		}
	}

	return false
}
