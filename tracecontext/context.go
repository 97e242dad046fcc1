package tracecontext

import (
	"fmt"
	"sort"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Aleph-Alpha/langfuse-otel/attributes"
)

// Context holds the Langfuse attributes of one logical trace. The zero
// value is usable; New is provided for symmetry with the rest of the
// library. All setters mutate the receiver and return it for chaining.
type Context struct {
	sessionID string
	userID    string
	tags      []string
	metadata  map[string]interface{}
}

// New creates an empty trace attribute context.
func New() *Context {
	return &Context{}
}

// WithSessionID sets the session id the trace belongs to.
func (c *Context) WithSessionID(id string) *Context {
	c.sessionID = id
	return c
}

// WithUserID sets the end-user id the trace belongs to.
func (c *Context) WithUserID(id string) *Context {
	c.userID = id
	return c
}

// AddTags appends tags to the ordered tag list. Tags are kept in insertion
// order and are not deduplicated.
func (c *Context) AddTags(tags ...string) *Context {
	c.tags = append(c.tags, tags...)
	return c
}

// WithMetadata records one metadata entry. Values may be strings, ints,
// int64s, float64s or booleans; other types are converted to strings when
// emitted.
func (c *Context) WithMetadata(key string, value interface{}) *Context {
	if c.metadata == nil {
		c.metadata = make(map[string]interface{})
	}
	c.metadata[key] = value
	return c
}

// Emit produces the ordered attribute list for the fields actually set:
// session id, user id, tags, then metadata entries by sorted key. Unset
// fields contribute nothing. Emit does not consume the context; calling it
// twice without intervening mutation yields identical output.
func (c *Context) Emit() []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, 3+len(c.metadata))

	if c.sessionID != "" {
		attrs = append(attrs, attribute.String(attributes.TraceSessionID, c.sessionID))
	}
	if c.userID != "" {
		attrs = append(attrs, attribute.String(attributes.TraceUserID, c.userID))
	}
	if len(c.tags) > 0 {
		attrs = append(attrs, attribute.StringSlice(attributes.TraceTags, c.tags))
	}

	keys := make([]string, 0, len(c.metadata))
	for k := range c.metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		name := attributes.TraceMetadata + "." + k
		attrs = append(attrs, toKeyValue(name, c.metadata[k]))
	}
	return attrs
}

// toKeyValue converts a metadata value into a typed attribute, falling
// back to its string form for unsupported types.
func toKeyValue(key string, value interface{}) attribute.KeyValue {
	switch v := value.(type) {
	case string:
		return attribute.String(key, v)
	case int:
		return attribute.Int(key, v)
	case int64:
		return attribute.Int64(key, v)
	case float64:
		return attribute.Float64(key, v)
	case bool:
		return attribute.Bool(key, v)
	default:
		return attribute.String(key, fmt.Sprint(v))
	}
}
