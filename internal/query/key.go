package query

import "net/url"

// Key identifies a cache entry: a resource tag, the kind of read within
// that resource, and the serialized filter. Invalidation works on tags, so
// every key under a tag is dropped together.
type Key struct {
	Tag    string
	Scope  string
	Params string
}

// NewKey builds a key from a tag and optional parameters. url.Values.Encode
// sorts by name, which keeps equal filters on the same key.
func NewKey(tag string, params url.Values) Key {
	if len(params) == 0 {
		return Key{Tag: tag}
	}
	return Key{Tag: tag, Params: params.Encode()}
}

// WithScope returns a copy of k for a different read of the same resource.
func (k Key) WithScope(scope string) Key {
	k.Scope = scope
	return k
}

func (k Key) String() string {
	s := k.Tag
	if k.Scope != "" {
		s += "/" + k.Scope
	}
	if k.Params != "" {
		s += "?" + k.Params
	}
	return s
}
