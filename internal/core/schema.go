package core

// ColumnKind is the declared type of a persisted column.
type ColumnKind int

const (
	KindDate ColumnKind = iota
	KindBool
)

// Column describes one persisted column: its header name and type.
type Column struct {
	Name string
	Kind ColumnKind
}

// Schema is the ordered column layout of the persisted table. Loading
// reconciles whatever is on disk against this descriptor: missing boolean
// columns are synthesized, values are coerced to the declared kind.
type Schema []Column

// DateColumn is the header name of the date column.
const DateColumn = "Date"

// DefaultSchema returns the canonical schema: the date column followed by
// one boolean column per recognized symptom.
func DefaultSchema() Schema {
	s := make(Schema, 0, len(Symptoms)+1)
	s = append(s, Column{Name: DateColumn, Kind: KindDate})
	for _, name := range Symptoms {
		s = append(s, Column{Name: name, Kind: KindBool})
	}
	return s
}

// Header returns the column names in order.
func (s Schema) Header() []string {
	names := make([]string, len(s))
	for i, c := range s {
		names[i] = c.Name
	}
	return names
}
