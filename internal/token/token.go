// Package token derives deterministic identity tokens for products.
//
// A token stands in for a scanned QR payload: it is never stored, only
// recomputed from a product's immutable attributes and compared against the
// scanned value.
package token

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Scheme prefixes every derived token.
const Scheme = "SS-"

const separator = "|"

// digestBytes is how much of the SHA-256 digest ends up in the token.
const digestBytes = 12

// Derive computes the identity token for the given immutable attributes.
// Same inputs always yield the same token; empty strings are legal.
func Derive(id, name, batchNumber string) string {
	sum := sha256.Sum256([]byte(id + separator + name + separator + batchNumber))
	return Scheme + strings.ToUpper(hex.EncodeToString(sum[:digestBytes]))
}

// Matches reports whether tok authenticates the given attributes by
// recompute-and-compare.
func Matches(tok, id, name, batchNumber string) bool {
	return tok == Derive(id, name, batchNumber)
}
