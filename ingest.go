package lazyframe

import (
	"encoding/hex"
	"fmt"

	"github.com/gofrs/uuid"

	"github.com/go-sif/lazyframe/errors"
	"github.com/go-sif/lazyframe/graph"
	"github.com/go-sif/lazyframe/logging"
	"github.com/go-sif/lazyframe/partition"
)

type sourceOptions struct {
	npartitions int
	chunksize   int
	sort        bool
	name        string
}

// SourceOption configures FromSource
type SourceOption func(*sourceOptions)

// WithNPartitions splits the source into (at most) n partitions
func WithNPartitions(n int) SourceOption {
	return func(o *sourceOptions) {
		o.npartitions = n
	}
}

// WithChunkSize splits the source into partitions of (roughly) n rows each
func WithChunkSize(n int) SourceOption {
	return func(o *sourceOptions) {
		o.chunksize = n
	}
}

// WithSort controls whether the source is sorted by index before it is split.
// Sorted sources have known divisions. Defaults to true.
func WithSort(sort bool) SourceOption {
	return func(o *sourceOptions) {
		o.sort = sort
	}
}

// WithName names the partitions of the resulting Collection. Defaults to a random name.
func WithName(name string) SourceOption {
	return func(o *sourceOptions) {
		o.name = name
	}
}

// FromSource partitions an in-memory Table or Series along its index. Exactly one of
// WithNPartitions and WithChunkSize must be given. Depending on the index, a sorted
// source may yield fewer partitions than requested, since rows sharing an index
// label are never split across partitions.
func FromSource(data interface{}, opts ...SourceOption) (Collection, error) {
	o := &sourceOptions{sort: true}
	for _, opt := range opts {
		opt(o)
	}
	var src partition.Partition
	switch td := data.(type) {
	case *partition.Table:
		src = td
	case *partition.Series:
		src = td
	default:
		return nil, errors.ConfigurationError{Reason: fmt.Sprintf("Input must be a Table or Series, not %T", data)}
	}
	if (o.npartitions == 0) == (o.chunksize == 0) {
		return nil, errors.ConfigurationError{Reason: "Exactly one of npartitions and chunksize must be specified"}
	}
	if o.npartitions < 0 || o.chunksize < 0 {
		return nil, errors.ConfigurationError{Reason: "npartitions and chunksize must be positive"}
	}
	if o.name == "" {
		id, err := uuid.NewV4()
		if err != nil {
			return nil, err
		}
		o.name = "from-source-" + hex.EncodeToString(id.Bytes())
	}

	nrows := src.Len()
	chunksize := o.chunksize
	if chunksize == 0 {
		chunksize = (nrows + o.npartitions - 1) / o.npartitions
	}

	var splits []int
	var divisions Divisions
	switch {
	case nrows == 0:
		splits = []int{0, 0}
		divisions = UnknownDivisions(1)
	case o.sort:
		sorted, err := partition.SortIndex(src)
		if err != nil {
			return nil, err
		}
		src = sorted
		idx, err := partition.IndexOf(src)
		if err != nil {
			return nil, err
		}
		splits, divisions = SortedSplits(idx.Values(), chunksize)
	default:
		for start := 0; start < nrows; start += chunksize {
			splits = append(splits, start)
		}
		splits = append(splits, nrows)
		divisions = UnknownDivisions(len(splits) - 1)
	}

	nodes := make(map[graph.Key]interface{}, len(splits)-1)
	for i := 0; i < len(splits)-1; i++ {
		nodes[graph.Key{Name: o.name, Index: i}] = src.Slice(splits[i], splits[i+1])
	}
	log := logging.Default()
	log.Debug().
		Str("name", o.name).
		Int("rows", nrows).
		Int("chunksize", chunksize).
		Bool("sorted", o.sort).
		Ints("splits", splits).
		Msg("Partitioned source")
	return New(graph.New(nodes), o.name, src, divisions)
}

// SortedSplits computes the row positions at which a sorted index is cut into
// partitions of at least chunksize rows, never separating equal labels. The last
// split is one past the final row, and divisions holds the label at each cut.
// index must be non-empty and sorted.
func SortedSplits(index partition.Array, chunksize int) (splits []int, divisions Divisions) {
	n := index.Len()
	segments := append(partition.FindSegments(index), n-1)
	splits = []int{0}
	last, size := 0, 0
	for _, s := range segments {
		size += s - last
		last = s
		if size >= chunksize {
			splits = append(splits, s)
			size = 0
		}
	}
	if splits[len(splits)-1] != segments[len(segments)-1] || len(splits) == 1 {
		splits = append(splits, segments[len(segments)-1])
	}
	divisions = make(Divisions, len(splits))
	for i, s := range splits {
		divisions[i] = index.Value(s)
	}
	splits[len(splits)-1]++
	return splits, divisions
}
