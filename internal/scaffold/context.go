package scaffold

import (
	"sort"
	"time"
)

// dateFormat is the timestamp layout written into the rendering
// context's date key.
const dateFormat = "2006-01-02 15:04"

// Context is an insertion-ordered rendering context. Later insertions
// override earlier values for the same key without changing the key's
// original position, so precedence follows construction order.
type Context struct {
	keys   []string
	values map[string]any
}

// NewContext creates an empty Context.
func NewContext() *Context {
	return &Context{values: make(map[string]any)}
}

// Put binds key to value, overriding any earlier binding.
func (c *Context) Put(key string, value any) {
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
}

// PutAll binds every entry of m in sorted key order, keeping the
// context deterministic regardless of map iteration order.
func (c *Context) PutAll(m map[string]any) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		c.Put(k, m[k])
	}
}

// PutDateParams binds the formatted timestamp under date plus the
// derived year, month and day parts, zero-padded.
func (c *Context) PutDateParams(t time.Time) {
	c.Put("date", t.Format(dateFormat))
	c.Put("year", t.Format("2006"))
	c.Put("month", t.Format("01"))
	c.Put("day", t.Format("02"))
}

// Get returns the value bound to key.
func (c *Context) Get(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (c *Context) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Values returns a snapshot of the context as a plain map for the
// renderer.
func (c *Context) Values() map[string]any {
	out := make(map[string]any, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}
