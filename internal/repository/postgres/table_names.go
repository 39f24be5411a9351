package postgres

import "fmt"

// TableNames holds dynamically prefixed table names
type TableNames struct {
	Sessions string
	Tasks    string
	Ideas    string
	Activity string
}

// NewTableNames creates table names with the given prefix
func NewTableNames(prefix string) *TableNames {
	return &TableNames{
		Sessions: fmt.Sprintf("%ssessions", prefix),
		Tasks:    fmt.Sprintf("%stasks", prefix),
		Ideas:    fmt.Sprintf("%sideas", prefix),
		Activity: fmt.Sprintf("%sactivity", prefix),
	}
}
