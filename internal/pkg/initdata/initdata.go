// Package initdata verifies Telegram Web App init-data assertions.
//
// The assertion is an ampersand-joined list of percent-encoded key=value
// pairs carrying a `hash` signature. Verification reconstructs the
// data-check string exactly as the platform signs it, so any deviation
// here breaks interoperability with Telegram's signer.
package initdata

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/url"
	"sort"
	"strings"
)

// signKeyLabel is the domain-separation constant of the Web App signing
// scheme: signing key = HMAC-SHA256(key=label, message=bot token).
const signKeyLabel = "WebAppData"

// ErrUnverified is returned for every rejection: malformed input,
// missing secret, signature mismatch, or an unusable user field.
// Callers branch on it; verification never panics on hostile input.
var ErrUnverified = errors.New("initdata: assertion not verified")

// User is the identity embedded in a verified assertion.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Verify checks the signature of a raw init-data string against the
// shared secret and returns the embedded user on success.
func Verify(raw, secret string) (*User, error) {
	if raw == "" || secret == "" {
		return nil, ErrUnverified
	}

	type pair struct{ key, val string }
	var (
		pairs   []pair
		gotHash string
	)
	for _, field := range strings.Split(raw, "&") {
		k, v, ok := strings.Cut(field, "=")
		if !ok {
			continue
		}
		if k == "hash" {
			gotHash = v
			continue
		}
		pairs = append(pairs, pair{key: k, val: v})
	}
	if gotHash == "" {
		return nil, ErrUnverified
	}

	// Data-check string: keys sorted by raw key, values percent-decoded,
	// joined as key=value lines.
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].key < pairs[j].key })

	var userJSON string
	lines := make([]string, 0, len(pairs))
	for _, p := range pairs {
		val, err := url.QueryUnescape(p.val)
		if err != nil {
			return nil, ErrUnverified
		}
		if p.key == "user" {
			userJSON = val
		}
		lines = append(lines, p.key+"="+val)
	}

	signingKey := hmacSHA256([]byte(signKeyLabel), []byte(secret))
	want := hex.EncodeToString(hmacSHA256(signingKey, []byte(strings.Join(lines, "\n"))))
	if !hmac.Equal([]byte(want), []byte(gotHash)) {
		return nil, ErrUnverified
	}

	if userJSON == "" {
		return nil, ErrUnverified
	}
	var u User
	if err := json.Unmarshal([]byte(userJSON), &u); err != nil || u.ID == 0 {
		return nil, ErrUnverified
	}
	return &u, nil
}

func hmacSHA256(key, msg []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(msg)
	return mac.Sum(nil)
}
