package properties

import "strings"

// Value is the parsed value of one page property. It is a sealed union: one
// concrete type per property Type, so the mapper can switch exhaustively
// instead of digging through untyped dictionaries.
type Value interface {
	// Type returns the tag of the concrete value.
	Type() Type
}

// Title is the value of a title property.
type Title struct {
	Text string
}

// Type implements Value.
func (Title) Type() Type { return TypeTitle }

// Select is the value of a select property. An empty Option means unset.
type Select struct {
	Option string
}

// Type implements Value.
func (Select) Type() Type { return TypeSelect }

// Status is the value of a status property. An empty Option means unset.
type Status struct {
	Option string
}

// Type implements Value.
func (Status) Type() Type { return TypeStatus }

// MultiSelect is the value of a multi_select property.
type MultiSelect struct {
	Options []string
}

// Type implements Value.
func (MultiSelect) Type() Type { return TypeMultiSelect }

// Date is the value of a date property. Start and End are the store's own
// ISO 8601 strings, passed through untouched; an empty Start means unset.
type Date struct {
	Start string
	End   string
}

// Type implements Value.
func (Date) Type() Type { return TypeDate }

// Empty reports whether the date carries no value.
func (d Date) Empty() bool { return d.Start == "" && d.End == "" }

// Person is one identity in a people property.
type Person struct {
	ID   string
	Name string
}

// Label returns the person's display label: the human name when the store
// exposes one, the opaque ID otherwise.
func (p Person) Label() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}

// People is the value of a people property.
type People struct {
	People []Person
}

// Type implements Value.
func (People) Type() Type { return TypePeople }

// Page is one remote record: an opaque identifier plus its parsed property
// values keyed by property name.
type Page struct {
	ID         string
	Properties map[string]Value
}

// Title returns the trimmed text of the page's title property, scanning by
// type rather than by name so Master and Mirror may name it differently.
func (p Page) Title() string {
	for _, v := range p.Properties {
		if t, ok := v.(Title); ok {
			return strings.TrimSpace(t.Text)
		}
	}
	return ""
}
