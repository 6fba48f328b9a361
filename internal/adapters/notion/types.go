package notion

import (
	"github.com/example/waypoint/internal/ports/secondary"
)

// Wire shapes for the typed property unions. Each property kind has
// its own JSON encoding; the port-level descriptors in
// ports/secondary are translated here and nowhere else.

type richText struct {
	Type      string    `json:"type,omitempty"`
	Text      *textBody `json:"text,omitempty"`
	PlainText string    `json:"plain_text,omitempty"`
}

type textBody struct {
	Content string `json:"content"`
}

func makeRichText(content string) []richText {
	return []richText{{Type: "text", Text: &textBody{Content: content}}}
}

func flattenRichText(items []richText) string {
	var out string
	for _, item := range items {
		if item.PlainText != "" {
			out += item.PlainText
		} else if item.Text != nil {
			out += item.Text.Content
		}
	}
	return out
}

type selectOption struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type selectSchema struct {
	Options []selectOption `json:"options,omitempty"`
}

type emptyObject struct{}

// propertySchema is a column definition as the API encodes it: the
// type name doubles as the key of the typed payload.
type propertySchema struct {
	Type     string        `json:"type,omitempty"`
	Title    *emptyObject  `json:"title,omitempty"`
	RichText *emptyObject  `json:"rich_text,omitempty"`
	Number   *emptyObject  `json:"number,omitempty"`
	URL      *emptyObject  `json:"url,omitempty"`
	Select   *selectSchema `json:"select,omitempty"`
	Status   *selectSchema `json:"status,omitempty"`
}

func encodeSpec(spec secondary.PropertySpec) propertySchema {
	switch spec.Type {
	case secondary.PropertyTitle:
		return propertySchema{Title: &emptyObject{}}
	case secondary.PropertyRichText:
		return propertySchema{RichText: &emptyObject{}}
	case secondary.PropertyNumber:
		return propertySchema{Number: &emptyObject{}}
	case secondary.PropertyURL:
		return propertySchema{URL: &emptyObject{}}
	case secondary.PropertySelect:
		return propertySchema{Select: &selectSchema{Options: encodeOptions(spec.Options)}}
	case secondary.PropertyStatus:
		return propertySchema{Status: &selectSchema{Options: encodeOptions(spec.Options)}}
	default:
		return propertySchema{}
	}
}

func decodeSpec(schema propertySchema) secondary.PropertySpec {
	switch {
	case schema.Title != nil:
		return secondary.PropertySpec{Type: secondary.PropertyTitle}
	case schema.RichText != nil:
		return secondary.PropertySpec{Type: secondary.PropertyRichText}
	case schema.Number != nil:
		return secondary.PropertySpec{Type: secondary.PropertyNumber}
	case schema.URL != nil:
		return secondary.PropertySpec{Type: secondary.PropertyURL}
	case schema.Select != nil:
		return secondary.PropertySpec{Type: secondary.PropertySelect, Options: decodeOptions(schema.Select.Options)}
	case schema.Status != nil:
		return secondary.PropertySpec{Type: secondary.PropertyStatus, Options: decodeOptions(schema.Status.Options)}
	default:
		return secondary.PropertySpec{Type: schema.Type}
	}
}

func encodeOptions(options []secondary.SelectOption) []selectOption {
	out := make([]selectOption, len(options))
	for i, o := range options {
		out[i] = selectOption{Name: o.Name, Color: o.Color}
	}
	return out
}

func decodeOptions(options []selectOption) []secondary.SelectOption {
	out := make([]secondary.SelectOption, len(options))
	for i, o := range options {
		out[i] = secondary.SelectOption{Name: o.Name, Color: o.Color}
	}
	return out
}

// propertyValue is a cell as the API encodes it.
type propertyValue struct {
	Type     string        `json:"type,omitempty"`
	Title    []richText    `json:"title,omitempty"`
	RichText []richText    `json:"rich_text,omitempty"`
	Select   *selectOption `json:"select,omitempty"`
	Status   *selectOption `json:"status,omitempty"`
	Number   *float64      `json:"number,omitempty"`
	URL      string        `json:"url,omitempty"`
}

func encodeValue(value secondary.PropertyValue) propertyValue {
	switch value.Type {
	case secondary.PropertyTitle:
		return propertyValue{Title: makeRichText(value.Text)}
	case secondary.PropertyRichText:
		return propertyValue{RichText: makeRichText(value.Text)}
	case secondary.PropertySelect:
		return propertyValue{Select: &selectOption{Name: value.Select}}
	case secondary.PropertyStatus:
		return propertyValue{Status: &selectOption{Name: value.Select}}
	case secondary.PropertyNumber:
		return propertyValue{Number: value.Number}
	case secondary.PropertyURL:
		return propertyValue{URL: value.URL}
	default:
		return propertyValue{}
	}
}

func decodeValue(value propertyValue) secondary.PropertyValue {
	switch {
	case value.Title != nil:
		return secondary.PropertyValue{Type: secondary.PropertyTitle, Text: flattenRichText(value.Title)}
	case value.RichText != nil:
		return secondary.PropertyValue{Type: secondary.PropertyRichText, Text: flattenRichText(value.RichText)}
	case value.Select != nil:
		return secondary.PropertyValue{Type: secondary.PropertySelect, Select: value.Select.Name}
	case value.Status != nil:
		return secondary.PropertyValue{Type: secondary.PropertyStatus, Select: value.Status.Name}
	case value.Number != nil:
		return secondary.PropertyValue{Type: secondary.PropertyNumber, Number: value.Number}
	case value.URL != "":
		return secondary.PropertyValue{Type: secondary.PropertyURL, URL: value.URL}
	default:
		return secondary.PropertyValue{Type: value.Type}
	}
}

func encodeValues(values map[string]secondary.PropertyValue) map[string]propertyValue {
	out := make(map[string]propertyValue, len(values))
	for name, v := range values {
		out[name] = encodeValue(v)
	}
	return out
}

func encodeSpecs(specs map[string]secondary.PropertySpec) map[string]propertySchema {
	out := make(map[string]propertySchema, len(specs))
	for name, s := range specs {
		out[name] = encodeSpec(s)
	}
	return out
}

// databaseObject is the wire shape of a database.
type databaseObject struct {
	ID             string                    `json:"id"`
	Title          []richText                `json:"title"`
	Properties     map[string]propertySchema `json:"properties"`
	CreatedTime    string                    `json:"created_time"`
	LastEditedTime string                    `json:"last_edited_time"`
}

func decodeDatabase(obj databaseObject) *secondary.Database {
	props := make(map[string]secondary.PropertySpec, len(obj.Properties))
	for name, schema := range obj.Properties {
		props[name] = decodeSpec(schema)
	}
	return &secondary.Database{
		ID:             obj.ID,
		Title:          flattenRichText(obj.Title),
		Properties:     props,
		CreatedTime:    obj.CreatedTime,
		LastEditedTime: obj.LastEditedTime,
	}
}

// pageObject is the wire shape of a row.
type pageObject struct {
	ID         string                   `json:"id"`
	Properties map[string]propertyValue `json:"properties"`
}

func decodePage(obj pageObject) *secondary.Page {
	props := make(map[string]secondary.PropertyValue, len(obj.Properties))
	for name, value := range obj.Properties {
		props[name] = decodeValue(value)
	}
	return &secondary.Page{ID: obj.ID, Properties: props}
}
