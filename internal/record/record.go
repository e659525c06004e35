package record

// Record is an ordered string-keyed mapping to Values. Insertion order is
// preserved on iteration; equality ignores order.
type Record struct {
	keys   []string
	values map[string]Value
}

// New returns an empty Record.
func New() *Record {
	return &Record{values: make(map[string]Value)}
}

// Set inserts or overwrites the value at key, preserving the position of
// an existing key and appending new keys in call order.
func (r *Record) Set(key string, v Value) *Record {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
	return r
}

// Get returns the value at key and whether it was present.
func (r *Record) Get(key string) (Value, bool) {
	if r == nil {
		return Value{}, false
	}
	v, ok := r.values[key]
	return v, ok
}

// Delete removes key, if present.
func (r *Record) Delete(key string) {
	if _, ok := r.values[key]; !ok {
		return
	}
	delete(r.values, key)
	for i, k := range r.keys {
		if k == key {
			r.keys = append(r.keys[:i], r.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the key names in insertion order.
func (r *Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of keys.
func (r *Record) Len() int { return len(r.keys) }

// Clone returns a shallow copy (values are immutable, so this is a full
// logical copy) with independent key ordering.
func (r *Record) Clone() *Record {
	out := New()
	for _, k := range r.keys {
		out.Set(k, r.values[k])
	}
	return out
}

// Equal reports whether r and o have identical key sets and per-key
// values, ignoring insertion order.
func (r *Record) Equal(o *Record) bool {
	if r == nil || o == nil {
		return r == o
	}
	if len(r.keys) != len(o.keys) {
		return false
	}
	for _, k := range r.keys {
		v1, ok := r.values[k]
		if !ok {
			return false
		}
		v2, ok := o.values[k]
		if !ok || !Equal(v1, v2) {
			return false
		}
	}
	return true
}

// SameSchema reports whether r and o share an identical ordered key list,
// the definition of "homogeneous" used by the renderer and by
// stages that promise homogeneous output.
func (r *Record) SameSchema(o *Record) bool {
	if len(r.keys) != len(o.keys) {
		return false
	}
	for i, k := range r.keys {
		if o.keys[i] != k {
			return false
		}
	}
	return true
}

// Resolve walks a dotted path against r. Every intermediate value must be
// a Record to continue; otherwise the reference is missing.
func Resolve(r *Record, path []string) (Value, bool) {
	if len(path) == 0 || r == nil {
		return Value{}, false
	}
	cur := r
	for i, key := range path {
		v, ok := cur.Get(key)
		if !ok {
			return Value{}, false
		}
		if i == len(path)-1 {
			return v, true
		}
		if v.Kind() != KindRecord {
			return Value{}, false
		}
		cur = v.Record()
	}
	return Value{}, false
}

// Stream is a finite ordered sequence of Records materialised in full
// between pipeline stages.
type Stream []*Record
