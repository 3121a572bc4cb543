// Package mapper translates a source page's property values into write
// fragments legal for the destination database's declared property types.
// The destination type always wins over the source type; anything the rules
// below don't cover degrades to an omission, never an error, so destination
// writes cannot fail solely because of incomplete source data.
package mapper

import "github.com/agentstation/mirrorsync/pkg/properties"

// Mapper maps one source value at a time against a destination property
// declaration. It is stateless apart from the run-scoped warning accumulator.
type Mapper struct {
	rules    Rules
	warnings *Warnings
}

// New creates a Mapper with the given translation rules, recording unmappable
// status options into warnings.
func New(rules Rules, warnings *Warnings) *Mapper {
	if warnings == nil {
		warnings = NewWarnings()
	}
	return &Mapper{rules: rules, warnings: warnings}
}

// Map produces the destination write fragment for one property. The second
// return value is false when the property must be omitted from the payload:
// the source has no value, or the type combination has no translation rule.
func (m *Mapper) Map(v properties.Value, target properties.Property) (properties.Fragment, bool) {
	if v == nil {
		return nil, false
	}

	switch target.Type {
	case properties.TypeStatus:
		return m.mapStatus(v, target)
	case properties.TypeSelect:
		return m.mapSelect(v)
	case properties.TypeMultiSelect:
		return m.mapMultiSelect(v)
	case properties.TypeDate:
		return m.mapDate(v)
	}

	// Title is written by the orchestrator on create only; people and any
	// unknown destination type have no translation rule.
	return nil, false
}

// mapStatus validates against the destination vocabulary: status options are
// system-managed, so an unknown name would fail the whole write. Renames are
// tried first, then the configured fallback; otherwise the value is cleared
// and the offending option recorded.
func (m *Mapper) mapStatus(v properties.Value, target properties.Property) (properties.Fragment, bool) {
	label, ok := choiceLabel(v)
	if !ok {
		return nil, false
	}
	if label == "" {
		return properties.StatusFragment{}, true
	}
	if target.AllowsOption(label) {
		return properties.StatusFragment{Status: &properties.Option{Name: label}}, true
	}
	if renamed := m.rules.Rename(label); renamed != label && target.AllowsOption(renamed) {
		return properties.StatusFragment{Status: &properties.Option{Name: renamed}}, true
	}
	if m.rules.StatusFallback != "" && target.AllowsOption(m.rules.StatusFallback) {
		return properties.StatusFragment{Status: &properties.Option{Name: m.rules.StatusFallback}}, true
	}
	m.warnings.Add(label)
	return properties.StatusFragment{}, true
}

// mapSelect needs no vocabulary validation: the store auto-creates unseen
// options on write. Renames still apply so both stores converge on one name.
func (m *Mapper) mapSelect(v properties.Value) (properties.Fragment, bool) {
	switch src := v.(type) {
	case properties.Select, properties.Status:
		label, _ := choiceLabel(v)
		if label == "" {
			return properties.SelectFragment{}, true
		}
		return properties.SelectFragment{Select: &properties.Option{Name: m.rules.Rename(label)}}, true
	case properties.People:
		if len(src.People) == 0 {
			return properties.SelectFragment{}, true
		}
		return properties.SelectFragment{Select: &properties.Option{Name: src.People[0].Label()}}, true
	}
	return nil, false
}

func (m *Mapper) mapMultiSelect(v properties.Value) (properties.Fragment, bool) {
	switch src := v.(type) {
	case properties.Select, properties.Status:
		label, _ := choiceLabel(v)
		if label == "" {
			return properties.NewMultiSelectFragment(), true
		}
		return properties.NewMultiSelectFragment(label), true
	case properties.People:
		names := make([]string, 0, len(src.People))
		for _, person := range src.People {
			if label := person.Label(); label != "" {
				names = append(names, label)
			}
		}
		return properties.NewMultiSelectFragment(names...), true
	}
	return nil, false
}

func (m *Mapper) mapDate(v properties.Value) (properties.Fragment, bool) {
	d, ok := v.(properties.Date)
	if !ok || d.Empty() {
		return nil, false
	}
	return properties.NewDateFragment(d), true
}

// choiceLabel extracts the single option name from a select or status value.
func choiceLabel(v properties.Value) (string, bool) {
	switch src := v.(type) {
	case properties.Select:
		return src.Option, true
	case properties.Status:
		return src.Option, true
	}
	return "", false
}
