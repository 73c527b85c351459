package partition

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/go-sif/lazyframe/types"
	"github.com/pierrec/lz4"
)

// wireArray is the serialized form of an Array
type wireArray struct {
	DType      string
	Ints       []int64
	Floats     []float64
	Bools      []bool
	Strings    []string
	Times      []time.Time
	Codes      []int32
	Categories []string
	Ordered    bool
	Format     string
}

// wirePartition is the serialized form of a Partition
type wirePartition struct {
	Kind      Kind
	Name      string
	Names     []string
	Columns   []wireArray
	IndexName string
	Index     wireArray
}

func toWireArray(a Array) (wireArray, error) {
	w := wireArray{DType: a.DType().Name()}
	switch ta := a.(type) {
	case Int64Array:
		w.Ints = ta
	case Float64Array:
		w.Floats = ta
	case BoolArray:
		w.Bools = ta
	case StringArray:
		w.Strings = ta
	case *TimeArray:
		w.Times = ta.Values
		w.Format = ta.Type.Format
	case *CategoricalArray:
		w.Codes = ta.Codes
		w.Categories = ta.Type.Categories
		w.Ordered = ta.Type.Ordered
	default:
		return w, fmt.Errorf("unsupported array type %T", a)
	}
	return w, nil
}

func fromWireArray(w wireArray) (Array, error) {
	switch w.DType {
	case "int64":
		return Int64Array(w.Ints), nil
	case "float64":
		return Float64Array(w.Floats), nil
	case "bool":
		return BoolArray(w.Bools), nil
	case "str":
		return StringArray(w.Strings), nil
	case "datetime":
		return &TimeArray{Values: w.Times, Type: &types.TimeColumnType{Format: w.Format}}, nil
	case "category":
		return &CategoricalArray{Codes: w.Codes, Type: &types.CategoricalColumnType{Categories: w.Categories, Ordered: w.Ordered}}, nil
	}
	return nil, fmt.Errorf("unsupported dtype %s", w.DType)
}

func toWire(p Partition) (*wirePartition, error) {
	idx, err := IndexOf(p)
	if err != nil {
		return nil, err
	}
	w := &wirePartition{Kind: p.Kind(), IndexName: idx.name}
	if w.Index, err = toWireArray(idx.values); err != nil {
		return nil, err
	}
	switch tp := p.(type) {
	case *Series:
		w.Name = tp.name
		w.Columns = make([]wireArray, 1)
		if w.Columns[0], err = toWireArray(tp.values); err != nil {
			return nil, err
		}
	case *Table:
		w.Names = tp.names
		w.Columns = make([]wireArray, len(tp.columns))
		for i, c := range tp.columns {
			if w.Columns[i], err = toWireArray(c); err != nil {
				return nil, err
			}
		}
	}
	return w, nil
}

func fromWire(w *wirePartition) (Partition, error) {
	indexValues, err := fromWireArray(w.Index)
	if err != nil {
		return nil, err
	}
	index := NewIndex(w.IndexName, indexValues)
	columns := make([]Array, len(w.Columns))
	for i, c := range w.Columns {
		if columns[i], err = fromWireArray(c); err != nil {
			return nil, err
		}
	}
	switch w.Kind {
	case KindIndex:
		return index, nil
	case KindSeries:
		if len(columns) != 1 {
			return nil, fmt.Errorf("serialized Series has %d columns", len(columns))
		}
		return NewSeries(w.Name, columns[0], index)
	case KindTable:
		return NewTable(w.Names, columns, index)
	}
	return nil, fmt.Errorf("unsupported partition kind %s", w.Kind)
}

// LZ4Serializer is a partition serializer which uses the lz4 compression algorithm
type LZ4Serializer struct {
	lock               sync.Mutex
	compressor         *lz4.Writer
	decompressor       *lz4.Reader
	reusableReadBuffer *bytes.Buffer
}

// NewLZ4Serializer instantiates a new LZ4Serializer
func NewLZ4Serializer() *LZ4Serializer {
	return &LZ4Serializer{
		compressor:         lz4.NewWriter(new(bytes.Buffer)),
		decompressor:       lz4.NewReader(new(bytes.Buffer)),
		reusableReadBuffer: new(bytes.Buffer),
	}
}

// Compress serializes and compresses partition data to a write stream
func (s *LZ4Serializer) Compress(w io.Writer, p Partition) error {
	wp, err := toWire(p)
	if err != nil {
		return err
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.compressor.Reset(w)
	if err := gob.NewEncoder(s.compressor).Encode(wp); err != nil {
		return fmt.Errorf("unable to serialize partition data: %w", err)
	}
	return s.compressor.Close()
}

// Decompress decompresses and deserializes partition data from a read stream
func (s *LZ4Serializer) Decompress(r io.Reader) (Partition, error) {
	s.lock.Lock()
	s.decompressor.Reset(r)
	s.reusableReadBuffer.Reset()
	_, err := s.reusableReadBuffer.ReadFrom(s.decompressor)
	var wp wirePartition
	if err == nil {
		err = gob.NewDecoder(s.reusableReadBuffer).Decode(&wp)
	}
	s.lock.Unlock()
	if err != nil {
		return nil, fmt.Errorf("unable to decompress partition data: %w", err)
	}
	return fromWire(&wp)
}
