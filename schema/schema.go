package schema

import (
	"fmt"
	"sort"

	"github.com/go-sif/lazyframe/types"
)

// column describes the position and dtype of a field within a Schema
type column struct {
	idx     int
	colType types.ColumnType
}

// Clone returns a copy of this Column
func (c *column) Clone() types.Column {
	return &column{c.idx, c.colType}
}

// Index returns the index of this Column within a Schema
func (c *column) Index() int {
	return c.idx
}

// SetIndex modifies the index of this Column within a Schema
func (c *column) SetIndex(newIndex int) {
	c.idx = newIndex
}

// Type returns the ColumnType of this Column
func (c *column) Type() types.ColumnType {
	return c.colType
}

// schema is an ordered mapping from column names to dtypes.
type schema struct {
	schema map[string]types.Column
}

// CreateSchema is a factory for Schemas
func CreateSchema() types.Schema {
	return &schema{
		schema: make(map[string]types.Column),
	}
}

// Equals returns nil iff this and another Schema are equivalent: same names, same order, same dtypes
func (s *schema) Equals(otherSchema types.Schema) error {
	if s.NumColumns() != otherSchema.NumColumns() {
		return fmt.Errorf("Schemas have unequal numbers of columns")
	}
	return s.ForEachColumn(func(name string, col types.Column) error {
		otherCol, err := otherSchema.GetColumn(name)
		if err != nil {
			return err
		}
		if col.Index() != otherCol.Index() {
			return fmt.Errorf("Column %s indices do not match", name)
		}
		if err := types.SameType(col.Type(), otherCol.Type()); err != nil {
			return fmt.Errorf("Column %s types do not match: %w", name, err)
		}
		return nil
	})
}

// Clone returns a copy of this Schema
func (s *schema) Clone() types.Schema {
	newSchema := make(map[string]types.Column, len(s.schema))
	for k, v := range s.schema {
		newSchema[k] = v.Clone()
	}
	return &schema{schema: newSchema}
}

// NumColumns returns the number of columns in this Schema
func (s *schema) NumColumns() int {
	return len(s.schema)
}

// GetColumn returns the Column with a particular name
func (s *schema) GetColumn(colName string) (col types.Column, err error) {
	col, ok := s.schema[colName]
	if !ok {
		err = fmt.Errorf("Schema does not contain column with name %s", colName)
	}
	return
}

// HasColumn returns true iff this schema contains a column with the given name
func (s *schema) HasColumn(colName string) bool {
	_, err := s.GetColumn(colName)
	return err == nil
}

// CreateColumn defines a new column at the end of the Schema
func (s *schema) CreateColumn(colName string, columnType types.ColumnType) (newSchema types.Schema, err error) {
	_, containsColumn := s.schema[colName]
	if containsColumn {
		err = fmt.Errorf("Schema already contains column with name %s", colName)
	} else {
		s.schema[colName] = &column{len(s.schema), columnType}
		newSchema = s
	}
	return
}

// RenameColumn renames a column within the Schema, keeping its position
func (s *schema) RenameColumn(oldName string, newName string) (newSchema types.Schema, err error) {
	if oldName == newName {
		return s, nil
	}
	if s.HasColumn(newName) {
		return nil, fmt.Errorf("Schema already contains column with name %s", newName)
	}
	_, err = s.GetColumn(oldName)
	if err == nil {
		s.schema[newName] = s.schema[oldName]
		delete(s.schema, oldName)
		newSchema = s
	}
	return
}

// RemoveColumn removes a column from the Schema, shifting later columns down
func (s *schema) RemoveColumn(colName string) (types.Schema, bool) {
	removed, ok := s.schema[colName]
	if !ok {
		return s, false
	}
	delete(s.schema, colName)
	for _, col := range s.schema {
		if col.Index() > removed.Index() {
			col.SetIndex(col.Index() - 1)
		}
	}
	return s, true
}

// ColumnNames returns the names in the schema, in index order
func (s *schema) ColumnNames() []string {
	names := make([]string, len(s.schema))
	for k, v := range s.schema {
		names[v.Index()] = k
	}
	return names
}

// ColumnTypes returns the types in the schema, in index order
func (s *schema) ColumnTypes() []types.ColumnType {
	colTypes := make([]types.ColumnType, len(s.schema))
	for _, v := range s.schema {
		colTypes[v.Index()] = v.Type()
	}
	return colTypes
}

// ForEachColumn iterates over the columns in this Schema, in index order
func (s *schema) ForEachColumn(fn func(name string, col types.Column) error) error {
	names := make([]string, 0, len(s.schema))
	for k := range s.schema {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		return s.schema[names[i]].Index() < s.schema[names[j]].Index()
	})
	for _, k := range names {
		err := fn(k, s.schema[k])
		if err != nil {
			return err
		}
	}
	return nil
}
