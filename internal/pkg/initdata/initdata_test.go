package initdata

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
	"testing"
)

const testSecret = "110201543:AAHdqTcvCH1vGWJxfSeofSAs0K5PALDsaw"

// signAssertion builds a correctly signed init-data string from decoded
// field values, the way the platform does it.
func signAssertion(secret string, fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+fields[k])
	}

	kd := hmac.New(sha256.New, []byte("WebAppData"))
	kd.Write([]byte(secret))
	mac := hmac.New(sha256.New, kd.Sum(nil))
	mac.Write([]byte(strings.Join(lines, "\n")))
	hash := hex.EncodeToString(mac.Sum(nil))

	parts := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		parts = append(parts, k+"="+url.QueryEscape(fields[k]))
	}
	parts = append(parts, "hash="+hash)
	return strings.Join(parts, "&")
}

func TestVerify_Valid(t *testing.T) {
	raw := signAssertion(testSecret, map[string]string{
		"user":      `{"id":42,"username":"alice"}`,
		"auth_date": "1700000000",
		"query_id":  "AAF9tp0UAAAAAH22nRRYEct0",
	})

	u, err := Verify(raw, testSecret)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if u.ID != 42 {
		t.Fatalf("expected id 42, got %d", u.ID)
	}
	if u.Username != "alice" {
		t.Fatalf("expected username alice, got %q", u.Username)
	}
}

func TestVerify_Deterministic(t *testing.T) {
	raw := signAssertion(testSecret, map[string]string{
		"user":      `{"id":7,"username":"bob"}`,
		"auth_date": "1700000000",
	})

	for i := 0; i < 3; i++ {
		u, err := Verify(raw, testSecret)
		if err != nil || u.ID != 7 {
			t.Fatalf("iteration %d: got (%v, %v)", i, u, err)
		}
	}
}

func TestVerify_TamperedHash(t *testing.T) {
	raw := signAssertion(testSecret, map[string]string{
		"user":      `{"id":42,"username":"alice"}`,
		"auth_date": "1700000000",
	})

	// Flip a character of the hash.
	last := raw[len(raw)-1]
	repl := byte('0')
	if last == '0' {
		repl = '1'
	}
	tampered := raw[:len(raw)-1] + string(repl)

	if _, err := Verify(tampered, testSecret); err == nil {
		t.Fatal("expected rejection for tampered hash")
	}
}

func TestVerify_TamperedPayload(t *testing.T) {
	raw := signAssertion(testSecret, map[string]string{
		"user":      `{"id":42,"username":"alice"}`,
		"auth_date": "1700000000",
	})
	tampered := strings.Replace(raw, "42", "43", 1)

	if _, err := Verify(tampered, testSecret); err == nil {
		t.Fatal("expected rejection for tampered payload")
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	raw := signAssertion(testSecret, map[string]string{
		"user": `{"id":42,"username":"alice"}`,
	})
	if _, err := Verify(raw, "other-secret"); err == nil {
		t.Fatal("expected rejection under a different secret")
	}
}

func TestVerify_MissingInputs(t *testing.T) {
	raw := signAssertion(testSecret, map[string]string{
		"user": `{"id":42,"username":"alice"}`,
	})

	if _, err := Verify("", testSecret); err == nil {
		t.Fatal("expected rejection for empty assertion")
	}
	if _, err := Verify(raw, ""); err == nil {
		t.Fatal("expected rejection when no secret is configured")
	}
	if _, err := Verify("auth_date=1700000000", testSecret); err == nil {
		t.Fatal("expected rejection when hash field is absent")
	}
}

func TestVerify_MissingOrBrokenUser(t *testing.T) {
	noUser := signAssertion(testSecret, map[string]string{
		"auth_date": "1700000000",
	})
	if _, err := Verify(noUser, testSecret); err == nil {
		t.Fatal("expected rejection when user field is absent")
	}

	badUser := signAssertion(testSecret, map[string]string{
		"user": `not-json`,
	})
	if _, err := Verify(badUser, testSecret); err == nil {
		t.Fatal("expected rejection for unparseable user field")
	}

	zeroID := signAssertion(testSecret, map[string]string{
		"user": `{"username":"ghost"}`,
	})
	if _, err := Verify(zeroID, testSecret); err == nil {
		t.Fatal("expected rejection when user id is missing")
	}
}

func TestVerify_IgnoresBareFields(t *testing.T) {
	// Fields without '=' must not participate in the check string.
	raw := signAssertion(testSecret, map[string]string{
		"user": `{"id":5,"username":"eve"}`,
	})
	withNoise := "noise&" + raw

	u, err := Verify(withNoise, testSecret)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if u.ID != 5 {
		t.Fatalf("expected id 5, got %d", u.ID)
	}
}

func TestVerify_MalformedEscape(t *testing.T) {
	if _, err := Verify("user=%zz&hash=abcd", testSecret); err == nil {
		t.Fatal("expected rejection for malformed percent-encoding")
	}
}
