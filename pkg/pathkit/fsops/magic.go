package fsops

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/pathkit/pkg/pathkit"
)

// MaxMagicNumberLength bounds the leading byte count a format sniff may
// request. Asking for more is a caller defect, not a runtime condition.
const MaxMagicNumberLength = 1024

// MagicNumber reads exactly length raw bytes from the start of the file at
// p, for file-format identification. A short read is a failure, never a
// partial result. A length outside (0, MaxMagicNumberLength] panics.
func MagicNumber(p pathkit.Path, length int) ([]byte, error) {
	if length < 1 || length > MaxMagicNumberLength {
		panic(fmt.Sprintf("fsops: magic number length %d out of range (0, %d]", length, MaxMagicNumberLength))
	}
	f, err := os.Open(p.String())
	if err != nil {
		return nil, opErr("read magic number from", p.String(), err)
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, length)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, opErr("read magic number from", p.String(), err)
	}
	return buf, nil
}
