package idgen

import (
	"crypto/sha256"
	"fmt"
	"math/big"
	"time"
)

// base36Alphabet is the digit set used by EncodeBase36.
const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// base36NumBytes maps a desired output length to the number of leading
// hash bytes fed into EncodeBase36, matching the reference length table.
var base36NumBytes = map[int]int{3: 2, 4: 3, 5: 4, 6: 4, 7: 5, 8: 5}

// EncodeBase36 renders data as a base-36 string of exactly length
// characters: zero-padded on the left if short, truncated to the
// least-significant digits if long.
func EncodeBase36(data []byte, length int) string {
	num := new(big.Int).SetBytes(data)
	if num.Sign() == 0 {
		return zeroPad("", length)
	}

	var chars []byte
	base := big.NewInt(36)
	rem := new(big.Int)
	for num.Sign() > 0 {
		num.DivMod(num, base, rem)
		chars = append(chars, base36Alphabet[rem.Int64()])
	}
	for i, j := 0, len(chars)-1; i < j; i, j = i+1, j-1 {
		chars[i], chars[j] = chars[j], chars[i]
	}
	result := string(chars)
	if len(result) < length {
		return zeroPad(result, length)
	}
	if len(result) > length {
		return result[len(result)-length:]
	}
	return result
}

func zeroPad(s string, length int) string {
	if len(s) >= length {
		return s
	}
	pad := make([]byte, length-len(s))
	for i := range pad {
		pad[i] = '0'
	}
	return string(pad) + s
}

// GenerateBase36HashID is the alternate, cross-tool-compatible ID scheme.
// It is not used by the mainline creation path (idgen.GenerateHashID is);
// it exists so that a consumer speaking the base-36 dialect can still be
// served without forking the identifier format.
func GenerateBase36HashID(prefix, title, description, creator string, timestamp time.Time, length, nonce int) string {
	content := fmt.Sprintf("%s|%s|%s|%d|%d", title, description, creator, timestamp.UnixNano(), nonce)
	sum := sha256.Sum256([]byte(content))

	numBytes, ok := base36NumBytes[length]
	if !ok {
		numBytes = 3
	}
	if numBytes > len(sum) {
		numBytes = len(sum)
	}

	short := EncodeBase36(sum[:numBytes], length)
	return fmt.Sprintf("%s-%s", prefix, short)
}
