package database

import (
	"fmt"
	"sync"

	"gorm.io/gorm/schema"

	"github.com/lightbnb/lightbnb/internal/model"
)

// Table describes one table of the LightBnB schema as the models declare it.
type Table struct {
	Name    string
	Columns []Column
}

// Column is a single column of a Table.
type Column struct {
	Name       string
	Type       string
	PrimaryKey bool
	NotNull    bool
	Unique     bool
}

// Describe parses the model definitions into their tables and columns, in
// creation order.
func Describe() ([]Table, error) {
	cache := &sync.Map{}
	tables := make([]Table, 0, len(model.Tables))
	for _, m := range model.Tables {
		s, err := schema.Parse(m, cache, schema.NamingStrategy{})
		if err != nil {
			return nil, fmt.Errorf("failed to parse model %T: %w", m, err)
		}

		table := Table{Name: s.Table}
		for _, f := range s.Fields {
			if f.DBName == "" {
				continue
			}
			typ := string(f.DataType)
			if t, ok := f.TagSettings["TYPE"]; ok {
				typ = t
			}
			table.Columns = append(table.Columns, Column{
				Name:       f.DBName,
				Type:       typ,
				PrimaryKey: f.PrimaryKey,
				NotNull:    f.NotNull,
				Unique:     f.Unique,
			})
		}
		tables = append(tables, table)
	}
	return tables, nil
}
