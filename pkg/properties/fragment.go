package properties

// Fragment is the destination-shaped write value of one property, ready to be
// merged into a page create/update request. Like Value it is a sealed union,
// one concrete shape per property type; each shape marshals to the exact JSON
// the store expects for that type.
type Fragment interface {
	fragment()
}

// Payload is a full write request body: property name to fragment.
type Payload map[string]Fragment

// Option is a choice option reference by name.
type Option struct {
	Name string `json:"name"`
}

// RichText is one segment of a title value.
type RichText struct {
	Type string   `json:"type"`
	Text TextSpan `json:"text"`
}

// TextSpan is the literal content of a rich text segment.
type TextSpan struct {
	Content string `json:"content"`
}

// TitleFragment writes a title property.
type TitleFragment struct {
	Title []RichText `json:"title"`
}

func (TitleFragment) fragment() {}

// NewTitleFragment builds a single-segment title fragment from plain text.
func NewTitleFragment(text string) TitleFragment {
	return TitleFragment{
		Title: []RichText{{Type: "text", Text: TextSpan{Content: text}}},
	}
}

// SelectFragment writes a select property. A nil Select clears the value.
type SelectFragment struct {
	Select *Option `json:"select"`
}

func (SelectFragment) fragment() {}

// StatusFragment writes a status property. A nil Status clears the value.
type StatusFragment struct {
	Status *Option `json:"status"`
}

func (StatusFragment) fragment() {}

// MultiSelectFragment writes a multi_select property. The slice is never nil
// so an empty value marshals as [] rather than null.
type MultiSelectFragment struct {
	MultiSelect []Option `json:"multi_select"`
}

func (MultiSelectFragment) fragment() {}

// NewMultiSelectFragment builds a multi_select fragment from option names.
func NewMultiSelectFragment(names ...string) MultiSelectFragment {
	options := make([]Option, 0, len(names))
	for _, n := range names {
		options = append(options, Option{Name: n})
	}
	return MultiSelectFragment{MultiSelect: options}
}

// DateSpan is the wire shape of a date value.
type DateSpan struct {
	Start string  `json:"start"`
	End   *string `json:"end,omitempty"`
}

// DateFragment writes a date property.
type DateFragment struct {
	Date *DateSpan `json:"date"`
}

func (DateFragment) fragment() {}

// NewDateFragment builds a date fragment from a parsed Date value.
func NewDateFragment(d Date) DateFragment {
	span := &DateSpan{Start: d.Start}
	if d.End != "" {
		end := d.End
		span.End = &end
	}
	return DateFragment{Date: span}
}
