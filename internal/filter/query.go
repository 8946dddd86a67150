package filter

import (
	"net/url"
	"strings"
)

// Param is one query parameter.
type Param struct {
	Key   string
	Value string
}

// Query is an ordered, duplicate-free set of query parameters.
type Query []Param

// Build combines the base dropdown values with the optional override. The
// result is always date_range, unit, then the override pair if set.
func Build(base Base, ov Override) Query {
	q := Query{
		{Key: KeyDateRange, Value: base.DateRange},
		{Key: KeyUnit, Value: base.Unit},
	}
	if ov.IsZero() {
		return q
	}
	for i := range q {
		if q[i].Key == ov.Key {
			q[i].Value = ov.Value
			return q
		}
	}
	return append(q, Param{Key: ov.Key, Value: ov.Value})
}

// Get returns the value for key and whether it is present.
func (q Query) Get(key string) (string, bool) {
	for _, p := range q {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Keys returns the parameter keys in order.
func (q Query) Keys() []string {
	keys := make([]string, len(q))
	for i, p := range q {
		keys[i] = p.Key
	}
	return keys
}

// Encode returns the URL-encoded query string, preserving parameter order.
func (q Query) Encode() string {
	var b strings.Builder
	for i, p := range q {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// String implements fmt.Stringer for logging.
func (q Query) String() string { return q.Encode() }
