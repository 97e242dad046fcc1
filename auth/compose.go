package auth

import (
	"encoding/base64"
	"errors"
	"sort"
)

// ErrMissingCredentials is returned when no credential source yields a
// usable Authorization value.
var ErrMissingCredentials = errors.New("auth: missing credentials")

// Source identifies where credential material came from. Lower values win;
// the ordering encodes the documented precedence, including the rule that
// an explicit key pair outranks an explicit raw header.
type Source int

const (
	// SourceExplicitKeyPair is a public/secret key pair set
	// programmatically on the builder.
	SourceExplicitKeyPair Source = iota

	// SourceExplicitHeader is an Authorization entry from a header map
	// set programmatically on the builder.
	SourceExplicitHeader

	// SourceBackendKeyPair is the LANGFUSE_PUBLIC_KEY and
	// LANGFUSE_SECRET_KEY environment variable pair.
	SourceBackendKeyPair

	// SourceGenericTracesHeader is an Authorization entry from
	// OTEL_EXPORTER_OTLP_TRACES_HEADERS.
	SourceGenericTracesHeader

	// SourceGenericHeader is an Authorization entry from the unscoped
	// OTEL_EXPORTER_OTLP_HEADERS.
	SourceGenericHeader
)

// Credentials is one candidate credential record tagged with its source.
// Either the key pair or Header carries the material, never both.
type Credentials struct {
	PublicKey string
	SecretKey string
	Header    string
	Source    Source
}

// usable reports whether the candidate actually carries complete material:
// a key pair needs both halves, a raw header needs a non-empty value.
func (c Credentials) usable() bool {
	if c.PublicKey != "" || c.SecretKey != "" {
		return c.PublicKey != "" && c.SecretKey != ""
	}
	return c.Header != ""
}

// BasicAuth builds an HTTP Basic Authorization value from a Langfuse key
// pair: "Basic " followed by the standard base64 encoding of
// "publicKey:secretKey".
func BasicAuth(publicKey, secretKey string) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(publicKey + ":" + secretKey))
	return "Basic " + encoded
}

// Compose selects the highest-precedence usable candidate and returns its
// effective Authorization header value. Key-pair candidates are encoded
// with BasicAuth; header candidates are used verbatim. When no candidate
// is usable, Compose fails with ErrMissingCredentials: the resolver fails
// closed rather than producing a config without authentication.
func Compose(candidates []Credentials) (string, error) {
	ordered := make([]Credentials, len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Source < ordered[j].Source
	})

	for _, c := range ordered {
		if !c.usable() {
			continue
		}
		if c.PublicKey != "" {
			return BasicAuth(c.PublicKey, c.SecretKey), nil
		}
		return c.Header, nil
	}
	return "", ErrMissingCredentials
}
