package notion

import (
	"strings"

	"github.com/agentstation/mirrorsync/pkg/properties"
)

// Wire shapes of the Notion API objects the sync reads. Only the property
// types the engine understands are decoded; everything else is ignored.

type databaseResponse struct {
	Title      []richText              `json:"title"`
	Properties map[string]propertyMeta `json:"properties"`
}

func (db *databaseResponse) title() string {
	return plainText(db.Title)
}

type propertyMeta struct {
	Type        string      `json:"type"`
	Select      *optionList `json:"select"`
	MultiSelect *optionList `json:"multi_select"`
	Status      *optionList `json:"status"`
}

// toProperty converts a schema declaration, collecting the option vocabulary
// for choice-like types. A store reporting no options yields an empty set.
func (m propertyMeta) toProperty() properties.Property {
	p := properties.Property{Type: properties.Type(m.Type)}
	if !p.Type.ChoiceLike() {
		return p
	}

	var list *optionList
	switch p.Type {
	case properties.TypeSelect:
		list = m.Select
	case properties.TypeMultiSelect:
		list = m.MultiSelect
	case properties.TypeStatus:
		list = m.Status
	}
	p.Options = []string{}
	if list != nil {
		for _, o := range list.Options {
			p.Options = append(p.Options, o.Name)
		}
	}
	return p
}

type optionList struct {
	Options []option `json:"options"`
}

type option struct {
	Name string `json:"name"`
}

type richText struct {
	PlainText string `json:"plain_text"`
}

func plainText(segments []richText) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.PlainText)
	}
	return b.String()
}

type queryRequest struct {
	PageSize    int    `json:"page_size"`
	StartCursor string `json:"start_cursor,omitempty"`
}

type queryResponse struct {
	Results    []pageResponse `json:"results"`
	HasMore    bool           `json:"has_more"`
	NextCursor string         `json:"next_cursor"`
}

type pageResponse struct {
	ID         string                   `json:"id"`
	Properties map[string]propertyValue `json:"properties"`
}

type propertyValue struct {
	Type        string     `json:"type"`
	Title       []richText `json:"title"`
	Select      *option    `json:"select"`
	Status      *option    `json:"status"`
	MultiSelect []option   `json:"multi_select"`
	Date        *dateSpan  `json:"date"`
	People      []person   `json:"people"`
}

type dateSpan struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type person struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// toPage converts one page object into the engine's model, dropping
// properties of types the engine does not understand.
func (p pageResponse) toPage() properties.Page {
	page := properties.Page{
		ID:         p.ID,
		Properties: make(map[string]properties.Value, len(p.Properties)),
	}
	for name, v := range p.Properties {
		if value, ok := v.toValue(); ok {
			page.Properties[name] = value
		}
	}
	return page
}

func (v propertyValue) toValue() (properties.Value, bool) {
	switch properties.Type(v.Type) {
	case properties.TypeTitle:
		return properties.Title{Text: plainText(v.Title)}, true
	case properties.TypeSelect:
		return properties.Select{Option: optionName(v.Select)}, true
	case properties.TypeStatus:
		return properties.Status{Option: optionName(v.Status)}, true
	case properties.TypeMultiSelect:
		names := make([]string, 0, len(v.MultiSelect))
		for _, o := range v.MultiSelect {
			names = append(names, o.Name)
		}
		return properties.MultiSelect{Options: names}, true
	case properties.TypeDate:
		if v.Date == nil {
			return properties.Date{}, true
		}
		return properties.Date{Start: v.Date.Start, End: v.Date.End}, true
	case properties.TypePeople:
		people := make([]properties.Person, 0, len(v.People))
		for _, u := range v.People {
			people = append(people, properties.Person{ID: u.ID, Name: u.Name})
		}
		return properties.People{People: people}, true
	}
	return nil, false
}

func optionName(o *option) string {
	if o == nil {
		return ""
	}
	return o.Name
}
