package graph

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
	"runtime"
	"sort"
	"strings"
	"time"
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

// Tokenizer is implemented by values which carry their own deterministic identity,
// such as lazy collections (identified by name) and materialized partitions.
type Tokenizer interface {
	Token() string
}

// value tags for the canonical encoding
const (
	tagNil      byte = 'n'
	tagToken    byte = 't'
	tagBool     byte = 'b'
	tagInt      byte = 'i'
	tagUint     byte = 'u'
	tagFloat    byte = 'f'
	tagString   byte = 's'
	tagTime     byte = 'T'
	tagDuration byte = 'd'
	tagKey      byte = 'k'
	tagList     byte = 'l'
	tagMap      byte = 'm'
	tagFunc     byte = 'F'
	tagStruct   byte = 'r'
	tagOther    byte = 'x'
)

type tokenWriter struct {
	h   *xxhash.Digest
	buf [8]byte
}

func (w *tokenWriter) writeUint(v uint64) {
	binary.LittleEndian.PutUint64(w.buf[:], v)
	w.h.Write(w.buf[:])
}

// writeField writes a length-prefixed, tagged field so that adjacent values can never collide
func (w *tokenWriter) writeField(tag byte, data string) {
	w.h.Write([]byte{tag})
	w.writeUint(uint64(len(data)))
	w.h.WriteString(data)
}

func (w *tokenWriter) writeScalar(tag byte, v uint64) {
	w.h.Write([]byte{tag})
	w.writeUint(v)
}

func (w *tokenWriter) writeValue(v interface{}) {
	if !w.writeKnown(v) {
		w.writeReflect(reflect.ValueOf(v), 0)
	}
}

// writeKnown encodes the types with a fixed canonical form, returning false for anything else
func (w *tokenWriter) writeKnown(v interface{}) bool {
	switch tv := v.(type) {
	case nil:
		w.h.Write([]byte{tagNil})
	case Tokenizer:
		if rv := reflect.ValueOf(tv); rv.Kind() == reflect.Ptr && rv.IsNil() {
			w.h.Write([]byte{tagNil})
		} else {
			w.writeField(tagToken, tv.Token())
		}
	case Key:
		w.writeField(tagKey, tv.Name)
		w.writeUint(uint64(tv.Index))
	case bool:
		if tv {
			w.writeScalar(tagBool, 1)
		} else {
			w.writeScalar(tagBool, 0)
		}
	case int:
		w.writeScalar(tagInt, uint64(tv))
	case int8:
		w.writeScalar(tagInt, uint64(tv))
	case int16:
		w.writeScalar(tagInt, uint64(tv))
	case int32:
		w.writeScalar(tagInt, uint64(tv))
	case int64:
		w.writeScalar(tagInt, uint64(tv))
	case uint:
		w.writeScalar(tagUint, uint64(tv))
	case uint8:
		w.writeScalar(tagUint, uint64(tv))
	case uint16:
		w.writeScalar(tagUint, uint64(tv))
	case uint32:
		w.writeScalar(tagUint, uint64(tv))
	case uint64:
		w.writeScalar(tagUint, tv)
	case float32:
		w.writeScalar(tagFloat, math.Float64bits(float64(tv)))
	case float64:
		w.writeScalar(tagFloat, math.Float64bits(tv))
	case string:
		w.writeField(tagString, tv)
	case time.Duration:
		w.writeScalar(tagDuration, uint64(tv))
	case time.Time:
		w.writeField(tagTime, tv.UTC().Format(time.RFC3339Nano))
	case []interface{}:
		w.writeScalar(tagList, uint64(len(tv)))
		for _, e := range tv {
			w.writeValue(e)
		}
	case []string:
		w.writeScalar(tagList, uint64(len(tv)))
		for _, e := range tv {
			w.writeField(tagString, e)
		}
	case []int64:
		w.writeScalar(tagList, uint64(len(tv)))
		for _, e := range tv {
			w.writeScalar(tagInt, uint64(e))
		}
	case []float64:
		w.writeScalar(tagList, uint64(len(tv)))
		for _, e := range tv {
			w.writeScalar(tagFloat, math.Float64bits(e))
		}
	case map[string]interface{}:
		keys := make([]string, 0, len(tv))
		for k := range tv {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		w.writeScalar(tagMap, uint64(len(keys)))
		for _, k := range keys {
			w.writeField(tagString, k)
			w.writeValue(tv[k])
		}
	default:
		return false
	}
	return true
}

// maxDepth bounds pointer chasing, so that cyclic values terminate
const maxDepth = 64

// writeReflect encodes any other value by walking it: pointers and interfaces by
// what they point to, structs field by field (unexported fields included), and
// named scalars by type and value.
func (w *tokenWriter) writeReflect(rv reflect.Value, depth int) {
	if !rv.IsValid() {
		w.h.Write([]byte{tagNil})
		return
	}
	if rv.CanInterface() && w.writeKnown(rv.Interface()) {
		return
	}
	if depth > maxDepth {
		w.writeField(tagOther, rv.Type().String())
		return
	}
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			w.h.Write([]byte{tagNil})
			return
		}
		w.writeReflect(rv.Elem(), depth+1)
	case reflect.Func:
		w.writeFunc(rv)
	case reflect.Struct:
		if !rv.CanAddr() && rv.CanInterface() {
			// an addressable copy lets closures in unexported fields be told apart
			cp := reflect.New(rv.Type()).Elem()
			cp.Set(rv)
			rv = cp
		}
		w.writeField(tagStruct, rv.Type().String())
		w.writeUint(uint64(rv.NumField()))
		for i := 0; i < rv.NumField(); i++ {
			w.writeReflect(rv.Field(i), depth+1)
		}
	case reflect.Slice, reflect.Array:
		w.writeScalar(tagList, uint64(rv.Len()))
		for i := 0; i < rv.Len(); i++ {
			w.writeReflect(rv.Index(i), depth+1)
		}
	case reflect.Map:
		type entry struct {
			key string
			val reflect.Value
		}
		entries := make([]entry, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			kw := &tokenWriter{h: xxhash.New()}
			kw.writeReflect(iter.Key(), depth+1)
			entries = append(entries, entry{fmt.Sprintf("%016x", kw.h.Sum64()), iter.Value()})
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
		w.writeScalar(tagMap, uint64(len(entries)))
		for _, e := range entries {
			w.writeField(tagString, e.key)
			w.writeReflect(e.val, depth+1)
		}
	case reflect.Bool:
		w.writeField(tagOther, rv.Type().String())
		if rv.Bool() {
			w.writeScalar(tagBool, 1)
		} else {
			w.writeScalar(tagBool, 0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		w.writeField(tagOther, rv.Type().String())
		w.writeScalar(tagInt, uint64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		w.writeField(tagOther, rv.Type().String())
		w.writeScalar(tagUint, rv.Uint())
	case reflect.Float32, reflect.Float64:
		w.writeField(tagOther, rv.Type().String())
		w.writeScalar(tagFloat, math.Float64bits(rv.Float()))
	case reflect.Complex64, reflect.Complex128:
		w.writeField(tagOther, rv.Type().String())
		c := rv.Complex()
		w.writeScalar(tagFloat, math.Float64bits(real(c)))
		w.writeScalar(tagFloat, math.Float64bits(imag(c)))
	case reflect.String:
		w.writeField(tagOther, rv.Type().String())
		w.writeField(tagString, rv.String())
	default:
		// channels and unsafe pointers only have an identity
		w.writeField(tagOther, fmt.Sprintf("%s@%x", rv.Type(), rv.Pointer()))
	}
}

// writeFunc identifies a function by its qualified name. Closures and method values
// carry state the name cannot see, so they are further identified by their instance.
func (w *tokenWriter) writeFunc(rv reflect.Value) {
	if rv.IsNil() {
		w.h.Write([]byte{tagNil})
		return
	}
	name := funcName(rv)
	w.writeField(tagFunc, name)
	if isClosure(name) {
		w.writeUint(uint64(closureInstance(rv)))
	}
}

// isClosure reports whether a runtime function name belongs to a function literal or a
// bound method value
func isClosure(name string) bool {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return strings.Contains(name, ".func") || strings.HasSuffix(name, "-fm")
}

// closureInstance returns the address of a func value's closure record, which is shared
// by copies of one closure and distinct between closures holding different state. The
// record stays reachable, and so unique, for as long as a Task refers to the func.
func closureInstance(rv reflect.Value) uintptr {
	if rv.CanAddr() {
		return uintptr(*(*unsafe.Pointer)(unsafe.Pointer(rv.UnsafeAddr())))
	}
	if rv.CanInterface() {
		fn := rv.Interface()
		return uintptr((*[2]unsafe.Pointer)(unsafe.Pointer(&fn))[1])
	}
	return rv.Pointer()
}

// Tokenize produces a deterministic hex token from an arbitrary sequence of values.
// Values are compared by content: Tokenizers by Token, pointers by what they point
// to, and top-level functions by qualified name. Closures and method values are
// compared by instance, so two closures built by one factory never share a token.
func Tokenize(values ...interface{}) string {
	w := &tokenWriter{h: xxhash.New()}
	w.writeValue(values)
	return fmt.Sprintf("%016x", w.h.Sum64())
}

// FuncName returns the name of a function without its package qualifier, e.g.
// "addOne" or "(*Series).Add-fm". Non-function values are named by their type.
func FuncName(fn interface{}) string {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return fmt.Sprintf("%T", fn)
	}
	name := funcName(rv)
	if name == "" {
		return fmt.Sprintf("%T", fn)
	}
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// funcName returns the fully qualified runtime name of a non-nil func value
func funcName(rv reflect.Value) string {
	f := runtime.FuncForPC(rv.Pointer())
	if f == nil {
		return ""
	}
	return f.Name()
}
