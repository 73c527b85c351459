package partition

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, s *LZ4Serializer, p Partition) Partition {
	var buf bytes.Buffer
	require.Nil(t, s.Compress(&buf, p))
	res, err := s.Decompress(&buf)
	require.Nil(t, err)
	return res
}

func TestLZ4SerializerRoundTrip(t *testing.T) {
	s := NewLZ4Serializer()
	tbl := testTable(t)
	cats, err := NewCategoricalArray([]string{"a", "b", "a", "a"}, []string{"a", "b"}, true)
	require.Nil(t, err)
	tbl, err = tbl.Assign("cat", cats)
	require.Nil(t, err)
	tbl, err = tbl.Assign("flag", true)
	require.Nil(t, err)

	res := roundTrip(t, s, tbl)
	require.Equal(t, KindTable, res.Kind())
	require.Equal(t, tbl.Token(), res.Token())

	col, err := tbl.Column("cat")
	require.Nil(t, err)
	require.Equal(t, col.Token(), roundTrip(t, s, col).Token())
	require.Equal(t, tbl.Index().Token(), roundTrip(t, s, tbl.Index()).Token())

	// serializer is reusable across empty partitions
	require.Equal(t, 0, roundTrip(t, s, tbl.Empty()).Len())
}
