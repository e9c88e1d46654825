package uri

import (
	"slices"
	"sync"
)

// Query is a URL query.
//
// It holds either the raw query string or structured [Params].
// The raw string is parsed on the first structured access, the result is cached and
// the raw string is discarded; rendering always goes through the structured form.
// Zero value is an empty query. Query values are immutable and safe for concurrent use.
type Query struct {
	st *queryState
}

type queryState struct {
	once   sync.Once
	raw    string
	params *Params
}

// NewQuery returns a query holding the raw query string, a leading '?' is ignored.
func NewQuery(raw string) Query {
	if len(raw) > 0 && raw[0] == '?' {
		raw = raw[1:]
	}
	if raw == "" {
		return Query{}
	}
	return Query{st: &queryState{raw: raw}}
}

// QueryFrom returns a query holding a copy of params.
func QueryFrom(params *Params) Query {
	if params.Len() == 0 {
		return Query{}
	}
	return structuredQuery(params.Clone())
}

func structuredQuery(params *Params) Query {
	st := &queryState{params: params}
	st.once.Do(func() {})
	return Query{st: st}
}

func (q Query) params() *Params {
	if q.st == nil {
		return nil
	}
	q.st.once.Do(func() {
		q.st.params = ParseParams(q.st.raw)
		q.st.raw = ""
	})
	return q.st.params
}

// All returns a copy of the structured query.
func (q Query) All() *Params {
	if p := q.params(); p != nil {
		return p.Clone()
	}
	return NewParams()
}

// IsEmpty reports whether the query renders to an empty string.
func (q Query) IsEmpty() bool { return q.String() == "" }

// Has reports whether the top-level param is set.
func (q Query) Has(param string) bool { return q.params().Has(param) }

// Get returns a copy of the top-level param value.
func (q Query) Get(param string) (Value, bool) {
	v, ok := q.params().Get(param)
	if !ok {
		return Value{}, false
	}
	return v.Clone(), true
}

// GetOr returns the top-level param value or def if the param is not set or is null.
func (q Query) GetOr(param string, def Value) Value {
	if v, ok := q.Get(param); ok && !v.IsNull() {
		return v
	}
	return def
}

// GetOrElse returns the top-level param value or the result of def if the param is not set or is null.
// def is called only on a miss.
func (q Query) GetOrElse(param string, def func() Value) Value {
	if v, ok := q.Get(param); ok && !v.IsNull() {
		return v
	}
	if def == nil {
		return Value{}
	}
	return def()
}

// WithQueryParam returns a new query with the param set to [ValueOf](value).
func (q Query) WithQueryParam(param string, value any) Query {
	p := q.All()
	p.Set(param, ValueOf(value))
	return structuredQuery(p)
}

// WithoutQueryParams returns a new query without the given top-level params.
func (q Query) WithoutQueryParams(params ...string) Query {
	p := q.All()
	for _, k := range params {
		p.Del(k)
	}
	return structuredQuery(p)
}

// WithOnlyQueryParams returns a new query holding only the given top-level params.
func (q Query) WithOnlyQueryParams(params ...string) Query {
	p := q.All()
	for _, k := range p.Keys() {
		if !slices.Contains(params, k) {
			p.Del(k)
		}
	}
	return structuredQuery(p)
}

// String renders the query without the leading '?'.
func (q Query) String() string { return q.params().String() }

// Equal reports whether the query equals the given Query, *Query or raw string.
func (q Query) Equal(val any) bool {
	var other Query
	switch v := val.(type) {
	case Query:
		other = v
	case *Query:
		if v == nil {
			return false
		}
		other = *v
	case string:
		other = NewQuery(v)
	default:
		return false
	}
	return q.params().Equal(other.params())
}

// MarshalText implements [encoding.TextMarshaler].
func (q Query) MarshalText() ([]byte, error) { return []byte(q.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (q *Query) UnmarshalText(text []byte) error {
	*q = NewQuery(string(text))
	return nil
}
