// Package guid derives deterministic, UUID-shaped identifiers from names.
package guid

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// FromString returns a UUID-shaped token derived from data, formatted as
// {XXXXXXXX-XXXX-3XXX-AXXX-XXXXXXXXXXXX} in uppercase hex.
//
// The token is a pure function of the input: the same string produces the
// same token in every process. It conforms to no UUID standard; the
// version nibble is pinned to 3 to advertise a deterministic name hash,
// which is all the consuming document format requires. Distinct inputs
// can collide with probability bounded by the hash, and no registry
// guards against that.
func FromString(data string) string {
	sum := blake2b.Sum256([]byte(data))
	h := []byte(strings.ToUpper(hex.EncodeToString(sum[:16])))
	h[12] = '3' // version nibble
	h[16] = 'A' // variant nibble
	return fmt.Sprintf("{%s-%s-%s-%s-%s}", h[0:8], h[8:12], h[12:16], h[16:20], h[20:32])
}
