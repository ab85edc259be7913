package checklist

import (
	"encoding/json"
	"fmt"
)

// Item is either a plain text line or a structured entry with a label,
// description and optional format hint. On the wire a plain item is a bare
// JSON string and a structured one is {"item", "description", "format"},
// matching what the upstream generator emits.
type Item struct {
	Plain       string
	Label       string
	Description string
	Format      string
}

func PlainItem(text string) Item {
	return Item{Plain: text}
}

func StructuredItem(label, description, format string) Item {
	return Item{Label: label, Description: description, Format: format}
}

func (i Item) IsPlain() bool {
	return i.Label == ""
}

func (i Item) MarshalJSON() ([]byte, error) {
	if i.IsPlain() {
		return json.Marshal(i.Plain)
	}
	type structured struct {
		Label       string `json:"item"`
		Description string `json:"description"`
		Format      string `json:"format,omitempty"`
	}
	return json.Marshal(structured{
		Label:       i.Label,
		Description: i.Description,
		Format:      i.Format,
	})
}

func (i *Item) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		*i = Item{Plain: plain}
		return nil
	}

	var structured struct {
		Label       string `json:"item"`
		Description string `json:"description"`
		Format      string `json:"format"`
	}
	if err := json.Unmarshal(data, &structured); err != nil {
		return fmt.Errorf("checklist item is neither string nor object: %w", err)
	}
	*i = Item{
		Label:       structured.Label,
		Description: structured.Description,
		Format:      structured.Format,
	}
	return nil
}

// Checklist is the structured filing checklist for a cybercrime complaint.
type Checklist struct {
	Title     string `json:"title"`
	Mandatory []Item `json:"mandatory"`
	Optional  []Item `json:"optional"`
	Financial []Item `json:"financial"`
	Tips      []Item `json:"specific_tips,omitempty"`
}
