// Package properties defines the property model shared by the sync engine:
// property type tags, per-type value and write-payload shapes, and the
// destination schema they are validated against.
package properties

// Type identifies how a property's value is structured in a database.
// The set is closed; anything else a schema declares is ignored by the sync.
type Type string

// Property types recognized by the sync engine.
const (
	// TypeTitle is rich text used as the page's display name and natural key.
	TypeTitle Type = "title"

	// TypeSelect is a single choice from a vocabulary the store extends on write.
	TypeSelect Type = "select"

	// TypeMultiSelect is a list of choices from a vocabulary the store extends on write.
	TypeMultiSelect Type = "multi_select"

	// TypeStatus is a single choice from a system-managed vocabulary that
	// writes cannot extend. Unknown options are rejected by the store.
	TypeStatus Type = "status"

	// TypeDate is a start/end date pair, end optional.
	TypeDate Type = "date"

	// TypePeople is a list of externally-managed identities.
	TypePeople Type = "people"
)

// ChoiceLike reports whether values of this type are drawn from an option
// vocabulary.
func (t Type) ChoiceLike() bool {
	switch t {
	case TypeSelect, TypeMultiSelect, TypeStatus:
		return true
	}
	return false
}

// Known reports whether the type is one the sync engine understands.
func (t Type) Known() bool {
	switch t {
	case TypeTitle, TypeSelect, TypeMultiSelect, TypeStatus, TypeDate, TypePeople:
		return true
	}
	return false
}

// Property is one declared property of a database schema: its type and, for
// choice-like types, the option names currently legal in the store.
type Property struct {
	Type    Type
	Options []string
}

// AllowsOption reports whether name is in the property's declared vocabulary.
func (p Property) AllowsOption(name string) bool {
	for _, o := range p.Options {
		if o == name {
			return true
		}
	}
	return false
}

// Schema maps property names to their declarations. It is built fresh from
// the destination database on every run; schemas are never cached across runs.
type Schema map[string]Property

// TitleProperty returns the name of the schema's title property.
// Notion databases declare exactly one.
func (s Schema) TitleProperty() (string, bool) {
	for name, p := range s {
		if p.Type == TypeTitle {
			return name, true
		}
	}
	return "", false
}
