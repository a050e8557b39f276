package result

import (
	"bytes"
	"encoding/json"
	"reflect"

	"github.com/arthur-debert/kbcomponent/pkg/errors"
)

var syncActionResultType = reflect.TypeOf((*SyncActionResult)(nil)).Elem()

// Encode converts a handler's return value into its canonical JSON text.
//
//   - nil encodes as {"status":"success"}
//   - a SyncActionResult encodes as an object of its non-nil fields, status last
//   - a slice of results encodes as an array of the same objects, in order
//   - anything else is handed to encoding/json unchanged
//
// The output is compact and deterministic.
func Encode(v any) ([]byte, error) {
	if isNil(v) {
		return encodeResult(Base{})
	}

	switch r := v.(type) {
	case SyncActionResult:
		return encodeResult(r)
	case Results:
		return encodeSequence(r)
	case []SyncActionResult:
		return encodeSequence(r)
	}

	if seq, ok := asResultSlice(v); ok {
		return encodeSequence(seq)
	}

	data, err := marshal(v)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrEncode, "cannot encode sync action result of type %T", v)
	}
	return data, nil
}

// Fields is empty for a bare Base, which encodes to its status alone
func (b Base) Fields() []Field { return nil }

func (b Base) MarshalJSON() ([]byte, error) {
	return encodeResult(b)
}

func encodeResult(r SyncActionResult) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	first := true
	writeField := func(name string, value any) error {
		key, err := marshal(name)
		if err != nil {
			return err
		}
		val, err := marshal(value)
		if err != nil {
			return errors.Wrapf(err, errors.ErrEncode, "cannot encode field %q", name)
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
		return nil
	}

	for _, f := range r.Fields() {
		// status is always written last, from ResultStatus
		if f.Name == "status" || isNil(f.Value) {
			continue
		}
		if err := writeField(f.Name, tokenValue(f.Value)); err != nil {
			return nil, err
		}
	}
	if status := r.ResultStatus(); status != "" {
		if err := writeField("status", status); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeSequence(rs []SyncActionResult) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, r := range rs {
		if i > 0 {
			buf.WriteByte(',')
		}
		data, err := Encode(r)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrEncode, "cannot encode element %d", i)
		}
		buf.Write(data)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// tokenValue converts Token implementers that have no text encoding of
// their own. MessageType encodes through MarshalText.
func tokenValue(v any) any {
	if t, ok := v.(Token); ok {
		return t.Token()
	}
	return v
}

// asResultSlice converts slices of concrete result types, such as
// []*SelectElement, into a sequence.
func asResultSlice(v any) ([]SyncActionResult, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice || !rv.Type().Elem().Implements(syncActionResultType) {
		return nil, false
	}
	seq := make([]SyncActionResult, rv.Len())
	for i := range seq {
		seq[i] = rv.Index(i).Interface().(SyncActionResult)
	}
	return seq, true
}

func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
