// Package gravatar derives avatar URLs from email addresses.
package gravatar

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	size       = "200"
	rating     = "pg"
	defaultImg = "mm"
)

// URL returns the Gravatar image URL for an email address. The address is
// trimmed and lowercased before hashing, per the Gravatar contract.
func URL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?s=%s&r=%s&d=%s",
		hex.EncodeToString(sum[:]), size, rating, defaultImg)
}
