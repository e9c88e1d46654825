package uri

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/ghettovoice/urlkit/internal/constraints"
	"github.com/ghettovoice/urlkit/internal/grammar"
	"github.com/ghettovoice/urlkit/internal/util"
)

// ValueKind is a kind of a query [Value].
type ValueKind uint8

const (
	NullKind ValueKind = iota
	StringKind
	MapKind
)

func (k ValueKind) String() string {
	switch k {
	case NullKind:
		return "null"
	case StringKind:
		return "string"
	case MapKind:
		return "map"
	default:
		return "ValueKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a query parameter value: null, a string or a nested [Params] map.
// Zero value is null. Null values are kept in [Params] but skipped on rendering.
type Value struct {
	kind ValueKind
	str  string
	m    *Params
}

// NullValue returns a null value.
func NullValue() Value { return Value{} }

// StringValue returns a string value.
func StringValue(s string) Value { return Value{kind: StringKind, str: s} }

// MapValue returns a nested value holding a copy of p.
func MapValue(p *Params) Value {
	if p == nil {
		return Value{kind: MapKind, m: NewParams()}
	}
	return Value{kind: MapKind, m: p.Clone()}
}

// ValueOf converts v into a [Value].
//
// Supported types:
//   - nil returns null value;
//   - [Value], *[Params];
//   - string, bool ("1" or "0"), integers, floats, [fmt.Stringer];
//   - []string, []any, map[string]string, map[string]any (lists get integer keys starting from 0).
//
// Any other type is formatted with "%v".
func ValueOf(v any) Value {
	switch v := v.(type) {
	case nil:
		return NullValue()
	case Value:
		return v.Clone()
	case *Params:
		if v == nil {
			return NullValue()
		}
		return MapValue(v)
	case string:
		return StringValue(v)
	case bool:
		if v {
			return StringValue("1")
		}
		return StringValue("0")
	case int:
		return signedValue(v)
	case int8:
		return signedValue(v)
	case int16:
		return signedValue(v)
	case int32:
		return signedValue(v)
	case int64:
		return signedValue(v)
	case uint:
		return unsignedValue(v)
	case uint8:
		return unsignedValue(v)
	case uint16:
		return unsignedValue(v)
	case uint32:
		return unsignedValue(v)
	case uint64:
		return unsignedValue(v)
	case float32:
		return StringValue(strconv.FormatFloat(float64(v), 'f', -1, 32))
	case float64:
		return StringValue(strconv.FormatFloat(v, 'f', -1, 64))
	case []string:
		p := NewParams()
		for i, s := range v {
			p.Set(strconv.Itoa(i), StringValue(s))
		}
		return Value{kind: MapKind, m: p}
	case []any:
		p := NewParams()
		for i, s := range v {
			p.Set(strconv.Itoa(i), ValueOf(s))
		}
		return Value{kind: MapKind, m: p}
	case map[string]string:
		p := NewParams()
		for _, k := range sortedKeys(v) {
			p.Set(k, StringValue(v[k]))
		}
		return Value{kind: MapKind, m: p}
	case map[string]any:
		p := NewParams()
		for _, k := range sortedKeys(v) {
			p.Set(k, ValueOf(v[k]))
		}
		return Value{kind: MapKind, m: p}
	case fmt.Stringer:
		return StringValue(v.String())
	default:
		return StringValue(fmt.Sprintf("%v", v))
	}
}

func signedValue[T constraints.Signed](v T) Value {
	return StringValue(strconv.FormatInt(int64(v), 10))
}

func unsignedValue[T constraints.Unsigned](v T) Value {
	return StringValue(strconv.FormatUint(uint64(v), 10))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Kind returns the value kind.
func (v Value) Kind() ValueKind { return v.kind }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == NullKind }

// Str returns the string value and reports whether the value is a string.
func (v Value) Str() (string, bool) { return v.str, v.kind == StringKind }

// Map returns a copy of the nested params and reports whether the value is a map.
func (v Value) Map() (*Params, bool) {
	if v.kind != MapKind {
		return nil, false
	}
	return v.m.Clone(), true
}

// String returns the string value, nested maps are rendered as a query string.
func (v Value) String() string {
	switch v.kind {
	case StringKind:
		return v.str
	case MapKind:
		return v.m.String()
	default:
		return ""
	}
}

// Clone returns a deep copy of the value.
func (v Value) Clone() Value {
	if v.kind == MapKind {
		v.m = v.m.Clone()
	}
	return v
}

// Equal reports whether both values have the same kind and content.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case StringKind:
		return v.str == other.str
	case MapKind:
		return v.m.Equal(other.m)
	default:
		return true
	}
}

// Params is an ordered map of query parameters.
// Setting an existing key keeps its original position.
type Params struct {
	keys []string
	vals map[string]Value
}

// NewParams returns an empty [Params].
func NewParams() *Params {
	return &Params{vals: make(map[string]Value)}
}

// Len returns the number of keys.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns keys in insertion order.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	return slices.Clone(p.keys)
}

// Has reports whether the key is set, even to a null value.
func (p *Params) Has(key string) bool {
	if p == nil {
		return false
	}
	_, ok := p.vals[key]
	return ok
}

// Get returns the value of the key.
func (p *Params) Get(key string) (Value, bool) {
	if p == nil {
		return Value{}, false
	}
	v, ok := p.vals[key]
	return v, ok
}

// Set sets the key to the value.
func (p *Params) Set(key string, val Value) *Params {
	if p.vals == nil {
		p.vals = make(map[string]Value)
	}
	if _, ok := p.vals[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.vals[key] = val
	return p
}

// Del deletes the key.
func (p *Params) Del(key string) *Params {
	if _, ok := p.vals[key]; !ok {
		return p
	}
	delete(p.vals, key)
	p.keys = slices.DeleteFunc(p.keys, func(k string) bool { return k == key })
	return p
}

// Clone returns a deep copy.
func (p *Params) Clone() *Params {
	if p == nil {
		return nil
	}
	p2 := &Params{
		keys: slices.Clone(p.keys),
		vals: make(map[string]Value, len(p.vals)),
	}
	for k, v := range p.vals {
		p2.vals[k] = v.Clone()
	}
	return p2
}

// Equal reports whether both maps hold the same keys in the same order with equal values.
func (p *Params) Equal(other *Params) bool {
	if p.Len() != other.Len() {
		return false
	}
	for i, k := range p.Keys() {
		if other.keys[i] != k || !p.vals[k].Equal(other.vals[k]) {
			return false
		}
	}
	return true
}

// String renders params as a query string.
// Keys and values are escaped per RFC 3986 (space is "%20"), nested keys use bracket notation,
// null values are skipped.
func (p *Params) String() string {
	if p.Len() == 0 {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	p.render(sb, "")
	return sb.String()
}

func (p *Params) render(sb *strings.Builder, prefix string) {
	for _, k := range p.keys {
		name := k
		if prefix != "" {
			name = prefix + "[" + k + "]"
		}
		switch v := p.vals[k]; v.kind {
		case StringKind:
			if sb.Len() > 0 {
				sb.WriteByte('&')
			}
			sb.WriteString(grammar.Escape(name, grammar.ShouldEscapeChar))
			sb.WriteByte('=')
			sb.WriteString(grammar.Escape(v.str, grammar.ShouldEscapeChar))
		case MapKind:
			v.m.render(sb, name)
		}
	}
}

// ParseParams parses a query string into [Params].
//
// Pairs are split by '&', keys and values are unescaped with '+' as space.
// Bracket notation builds nested maps: "a[b]=c" gives {"a": {"b": "c"}},
// "a[]=x" appends x under the next integer key.
// A later pair overwrites the value of an earlier one.
// Pairs with an empty key are skipped, a key with an unclosed bracket is taken literally.
func ParseParams(raw string) *Params {
	p := NewParams()
	for pair := range strings.SplitSeq(raw, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		path := splitParamKey(grammar.UnescapeQuery(k))
		if len(path) == 0 {
			continue
		}
		p.assign(path, grammar.UnescapeQuery(v))
	}
	return p
}

// splitParamKey splits "a[b][]" into ["a", "b", ""].
// It returns nil if the base key is empty.
func splitParamKey(k string) []string {
	i := strings.IndexByte(k, '[')
	switch {
	case k == "" || i == 0:
		return nil
	case i < 0:
		return []string{k}
	}

	path := []string{k[:i]}
	rest := k[i:]
	for len(rest) > 0 && rest[0] == '[' {
		j := strings.IndexByte(rest, ']')
		if j < 0 {
			if len(path) == 1 {
				return []string{k}
			}
			break
		}
		path = append(path, rest[1:j])
		rest = rest[j+1:]
	}
	return path
}

func (p *Params) assign(path []string, val string) {
	key := path[0]
	if key == "" {
		key = p.nextIndex()
	}
	if len(path) == 1 {
		p.Set(key, StringValue(val))
		return
	}

	cur, ok := p.vals[key]
	if !ok || cur.kind != MapKind {
		cur = Value{kind: MapKind, m: NewParams()}
	}
	cur.m.assign(path[1:], val)
	p.Set(key, cur)
}

// nextIndex returns the next integer key for list appends.
func (p *Params) nextIndex() string {
	next := 0
	for _, k := range p.keys {
		if n, err := strconv.Atoi(k); err == nil && n >= next {
			next = n + 1
		}
	}
	return strconv.Itoa(next)
}
