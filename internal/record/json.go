package record

import (
	"bytes"
	"fmt"

	"github.com/segmentio/encoding/json"
)

// Decode parses a single JSON document into a Value tree, applying the
// numeric-literal and null rules:
//   - a JSON number with no fractional/exponent part becomes Int, falling
//     back to Float if it overflows signed 64-bit;
//   - a JSON number with a fractional or exponent part becomes Float;
//   - JSON null becomes absence of the enclosing key (handled by the
//     caller when decoding object members) or the Null sentinel when it
//     is a bare top-level value.
func Decode(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, fmt.Errorf("decode json: %w", err)
	}
	return v, nil
}

// decodeValue and its helpers walk the token stream directly rather than
// decoding into map[string]interface{}: a Go map's iteration order is
// unspecified, and Record key order must match the order keys appeared
// in the source document.
func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return valueFromToken(dec, tok)
}

func valueFromToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return fromNumber(t), nil
	case string:
		return String(t), nil
	case json.Delim:
		switch rune(t) {
		case '[':
			return decodeArray(dec)
		case '{':
			return decodeObject(dec)
		}
	}
	return Value{}, fmt.Errorf("unexpected json token %v", tok)
}

func decodeArray(dec *json.Decoder) (Value, error) {
	var vs []Value
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		if v.IsNull() {
			continue // null list elements simply vanish: there is no "absent index"
		}
		vs = append(vs, v)
	}
	if _, err := dec.Token(); err != nil { // consume closing ]
		return Value{}, err
	}
	return List(vs), nil
}

func decodeObject(dec *json.Decoder) (Value, error) {
	rec := New()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key is not a string")
		}
		v, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		if v.IsNull() {
			continue // null becomes absence of the enclosing key
		}
		rec.Set(key, v)
	}
	if _, err := dec.Token(); err != nil { // consume closing }
		return Value{}, err
	}
	return Nested(rec), nil
}

func fromNumber(n json.Number) Value {
	s := string(n)
	if isIntegral(s) {
		if i, err := n.Int64(); err == nil {
			return Int(i)
		}
		// Overflows signed 64-bit: fall back to Float.
	}
	f, err := n.Float64()
	if err != nil {
		return Int(0)
	}
	return Float(f)
}

// isIntegral reports whether s (a JSON number's literal text) has no
// fractional or exponent part.
func isIntegral(s string) bool {
	for _, c := range s {
		if c == '.' || c == 'e' || c == 'E' {
			return false
		}
	}
	return true
}

// Marshal encodes v as compact JSON, preserving Record insertion order.
func Marshal(v Value) ([]byte, error) {
	return json.Marshal(toAny(v))
}

func toAny(v Value) interface{} {
	switch v.Kind() {
	case KindNull:
		return nil
	case KindBool:
		return v.Bool()
	case KindInt:
		return v.Int()
	case KindFloat:
		return v.Float()
	case KindString:
		return v.Str()
	case KindList:
		list := v.List()
		out := make([]interface{}, len(list))
		for i, e := range list {
			out[i] = toAny(e)
		}
		return out
	case KindRecord:
		return recordToOrderedMap(v.Record())
	default:
		return nil
	}
}

// orderedMap preserves Record key order through segmentio/encoding/json,
// which (like encoding/json) marshals map[string]any with sorted keys;
// a key slice plus a value map, marshalled by hand in key-slice order,
// keeps insertion order on the wire, matching the ordering invariant.
type orderedMap struct {
	keys   []string
	values map[string]interface{}
}

func recordToOrderedMap(r *Record) *orderedMap {
	om := &orderedMap{values: make(map[string]interface{})}
	for _, k := range r.Keys() {
		v, _ := r.Get(k)
		om.keys = append(om.keys, k)
		om.values[k] = toAny(v)
	}
	return om
}

func (om *orderedMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range om.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(om.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// RecordToJSON encodes a *Record as a compact JSON object (used by the
// renderer's JSON-lines mode and the RPC wire encoders).
func RecordToJSON(r *Record) ([]byte, error) {
	return json.Marshal(recordToOrderedMap(r))
}

// DecodeRecord decodes a single JSON object into a *Record. Returns an
// error if the top-level value is not an object.
func DecodeRecord(data []byte) (*Record, error) {
	v, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if v.Kind() != KindRecord {
		return nil, fmt.Errorf("top-level JSON value is not an object")
	}
	return v.Record(), nil
}
