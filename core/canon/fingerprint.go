package canon

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// Fingerprint returns a stable hex digest of the canon bounds. Two builds
// that report the same fingerprint agree on every chapter and verse count,
// so positions computed by one are valid in the other.
func Fingerprint() string {
	var buf bytes.Buffer
	for b := Genesis; b <= Revelation; b++ {
		fmt.Fprintf(&buf, "%s:", books[b].osis)
		for _, n := range books[b].verses {
			fmt.Fprintf(&buf, " %d", n)
		}
		buf.WriteByte('\n')
	}
	sum := blake3.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:])
}
