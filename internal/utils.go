package internal

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
	"unicode"
)

// maxFilenameRunes caps sanitized names so long sentences stay usable as paths
const maxFilenameRunes = 64

// GenerateCardID creates a unique ID for a card based on timestamp and sentence
// Format: epochMillis_md5(sentence)[:8]
func GenerateCardID(sentence string) string {
	hash := md5.Sum([]byte(sentence))
	return fmt.Sprintf("%d_%s", time.Now().UnixMilli(), hex.EncodeToString(hash[:])[:8])
}

// SanitizeFilename creates a safe filename from a sentence. Letters (accented
// Spanish letters included) and digits are kept, runs of anything else
// collapse to a single underscore.
func SanitizeFilename(s string) string {
	var b strings.Builder
	n := 0
	underscore := false
	for _, r := range strings.ToLower(s) {
		if n >= maxFilenameRunes {
			break
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			b.WriteRune(r)
			underscore = false
			n++
			continue
		}
		if !underscore && b.Len() > 0 {
			b.WriteByte('_')
			underscore = true
			n++
		}
	}
	return strings.TrimRight(b.String(), "_")
}
