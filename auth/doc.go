// Package auth derives the Authorization header for the Langfuse OTLP
// receiver.
//
// Langfuse authenticates OTLP requests with HTTP Basic auth built from a
// public/secret key pair, but credentials can also arrive as a pre-built
// header through the generic OTEL_EXPORTER_OTLP_HEADERS variables. Compose
// merges all available credential material by source precedence into a
// single header value; a key pair always beats a raw header supplied at the
// same tier, so an explicitly configured key pair is never silently
// overridden by a generic header map.
package auth
