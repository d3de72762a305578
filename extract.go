package strandmatch

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/carbocation/pfx"
)

// ExtractTop copies the first n ranked members' original bytes, unmodified,
// into dir. The scoring engine itself never calls this; it exists for
// callers that want the winning strand files on disk.
func ExtractTop(ranked []RankedResult, n int, dir string) error {
	if n > len(ranked) {
		n = len(ranked)
	}

	for _, r := range ranked[:n] {
		if err := extractMember(r.Archive, r.Candidate, dir); err != nil {
			return err
		}
	}

	return nil
}

func extractMember(archivePath, member, dir string) error {
	arch, err := OpenArchive(archivePath)
	if err != nil {
		return err
	}
	defer arch.Close()

	for {
		name, body, err := arch.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}

		if name != member {
			continue
		}

		// Zip member names always use forward slashes.
		dest := filepath.Join(dir, path.Base(name))
		out, err := os.Create(dest)
		if err != nil {
			return pfx.Err(err)
		}
		if _, err := io.Copy(out, body); err != nil {
			out.Close()
			return pfx.Err(err)
		}
		if err := out.Close(); err != nil {
			return pfx.Err(err)
		}

		return nil
	}

	return pfx.Err(fmt.Errorf("member %s not found in %s", member, archivePath))
}
