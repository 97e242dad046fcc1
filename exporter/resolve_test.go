package exporter

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable the resolver consumes so tests are
// isolated from the host environment. Empty values count as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvPublicKey, EnvSecretKey, EnvHost,
		EnvOTLPEndpoint, EnvOTLPTracesEndpoint,
		EnvOTLPHeaders, EnvOTLPTracesHeaders,
		EnvOTLPTimeout, EnvOTLPCompression,
	} {
		t.Setenv(key, "")
	}
}

func basic(public, secret string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(public+":"+secret))
}

func TestResolve_BackendEnvScenario(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvHost, "https://example.com")
	t.Setenv(EnvPublicKey, "pk")
	t.Setenv(EnvSecretKey, "sk")

	resolved, err := resolve(Config{})
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/api/public/otel/v1/traces", resolved.Endpoint)
	assert.Equal(t, basic("pk", "sk"), resolved.Authorization)
	assert.Equal(t, DefaultTimeout, resolved.Timeout)
	assert.Equal(t, CompressionNone, resolved.Compression)
}

func TestResolve_GenericBaseEndpointScenario(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvOTLPEndpoint, "https://h/api/public/otel")
	t.Setenv(EnvPublicKey, "pk")
	t.Setenv(EnvSecretKey, "sk")

	resolved, err := resolve(Config{})
	require.NoError(t, err)

	assert.Equal(t, "https://h/api/public/otel/v1/traces", resolved.Endpoint)
}

func TestResolve_BackendHostBeatsGenericBase(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvHost, "https://langfuse.internal")
	t.Setenv(EnvOTLPEndpoint, "https://collector.internal")
	t.Setenv(EnvPublicKey, "pk")
	t.Setenv(EnvSecretKey, "sk")

	resolved, err := resolve(Config{})
	require.NoError(t, err)

	assert.Equal(t, "https://langfuse.internal/api/public/otel/v1/traces", resolved.Endpoint)
}

func TestResolve_TracesEndpointBeatsBase(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvOTLPTracesEndpoint, "https://collector.internal/custom/path")
	t.Setenv(EnvOTLPEndpoint, "https://other.internal")
	t.Setenv(EnvPublicKey, "pk")
	t.Setenv(EnvSecretKey, "sk")

	resolved, err := resolve(Config{})
	require.NoError(t, err)

	// The traces-scoped endpoint is used verbatim.
	assert.Equal(t, "https://collector.internal/custom/path", resolved.Endpoint)
}

func TestResolve_DefaultEndpoint(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPublicKey, "pk")
	t.Setenv(EnvSecretKey, "sk")

	resolved, err := resolve(Config{})
	require.NoError(t, err)

	assert.Equal(t, "https://cloud.langfuse.com/api/public/otel/v1/traces", resolved.Endpoint)
}

func TestResolve_NoCredentials(t *testing.T) {
	clearEnv(t)

	_, err := resolve(Config{})
	assert.True(t, IsMissingCredentialsError(err), "expected MissingCredentials, got %v", err)
}

func TestResolve_ExplicitKeyPairBeatsExplicitHeader(t *testing.T) {
	clearEnv(t)

	resolved, err := resolve(Config{
		PublicKey: "pk",
		SecretKey: "sk",
		Headers:   map[string]string{"Authorization": "Bearer something"},
	})
	require.NoError(t, err)

	assert.Equal(t, basic("pk", "sk"), resolved.Authorization)
}

func TestResolve_GenericHeaderCredentials(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvOTLPHeaders, "Authorization=Basic%20dXNlcjpwYXNz,X-Tenant=acme")

	resolved, err := resolve(Config{})
	require.NoError(t, err)

	assert.Equal(t, "Basic dXNlcjpwYXNz", resolved.Authorization)
	assert.Equal(t, "acme", resolved.Headers["X-Tenant"])
	assert.NotContains(t, resolved.Headers, "Authorization")
}

func TestResolve_TracesHeadersOverrideGeneric(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPublicKey, "pk")
	t.Setenv(EnvSecretKey, "sk")
	t.Setenv(EnvOTLPHeaders, "X-Tenant=generic,X-Extra=kept")
	t.Setenv(EnvOTLPTracesHeaders, "X-Tenant=traces")

	resolved, err := resolve(Config{})
	require.NoError(t, err)

	assert.Equal(t, "traces", resolved.Headers["X-Tenant"])
	assert.Equal(t, "kept", resolved.Headers["X-Extra"])
}

func TestResolve_BackendKeyPairBeatsGenericHeader(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPublicKey, "pk")
	t.Setenv(EnvSecretKey, "sk")
	t.Setenv(EnvOTLPHeaders, "Authorization=Basic%20other")

	resolved, err := resolve(Config{})
	require.NoError(t, err)

	assert.Equal(t, basic("pk", "sk"), resolved.Authorization)
}

func TestResolve_EnvValuesTrimmed(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvHost, "  https://example.com  ")
	t.Setenv(EnvPublicKey, " pk ")
	t.Setenv(EnvSecretKey, "\tsk\n")

	resolved, err := resolve(Config{})
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/api/public/otel/v1/traces", resolved.Endpoint)
	assert.Equal(t, basic("pk", "sk"), resolved.Authorization)
}

func TestResolve_TimeoutFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPublicKey, "pk")
	t.Setenv(EnvSecretKey, "sk")
	t.Setenv(EnvOTLPTimeout, "2500")

	resolved, err := resolve(Config{})
	require.NoError(t, err)

	assert.Equal(t, 2500*time.Millisecond, resolved.Timeout)
}

func TestResolve_InvalidTimeout(t *testing.T) {
	for _, value := range []string{"abc", "-5", "0", "10s"} {
		t.Run(value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(EnvPublicKey, "pk")
			t.Setenv(EnvSecretKey, "sk")
			t.Setenv(EnvOTLPTimeout, value)

			_, err := resolve(Config{})
			assert.True(t, IsInvalidTimeoutError(err), "value %q: expected InvalidTimeout, got %v", value, err)
		})
	}
}

func TestResolve_ExplicitTimeoutBeatsEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPublicKey, "pk")
	t.Setenv(EnvSecretKey, "sk")
	t.Setenv(EnvOTLPTimeout, "2500")

	resolved, err := resolve(Config{Timeout: 3 * time.Second})
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, resolved.Timeout)
}

func TestResolve_CompressionGzip(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPublicKey, "pk")
	t.Setenv(EnvSecretKey, "sk")
	t.Setenv(EnvOTLPCompression, "gzip")

	resolved, err := resolve(Config{})
	require.NoError(t, err)

	assert.Equal(t, CompressionGzip, resolved.Compression)
}

func TestResolve_UnsupportedCompressionRejected(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPublicKey, "pk")
	t.Setenv(EnvSecretKey, "sk")
	t.Setenv(EnvOTLPCompression, "br")

	_, err := resolve(Config{})
	assert.ErrorIs(t, err, ErrUnsupportedCompression)
}

func TestResolve_InvalidEndpoint(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPublicKey, "pk")
	t.Setenv(EnvSecretKey, "sk")

	_, err := resolve(Config{Host: "not a url\x7f"})
	assert.True(t, IsInvalidEndpointError(err), "expected InvalidEndpoint, got %v", err)
}

func TestParseHeaderList(t *testing.T) {
	headers := parseHeaderList("a=1, b = 2 ,malformed,=nokey,x-lower=v")

	assert.Equal(t, "1", headers["A"])
	assert.Equal(t, "2", headers["B"])
	assert.Equal(t, "v", headers["X-Lower"])
	assert.NotContains(t, headers, "Malformed")
	assert.Len(t, headers, 3)
}
