package model

import (
	"bytes"
	"encoding/json"
)

// Response types a dialog engine can attach to a generic element.
const (
	ResponseTypeText   = "text"
	ResponseTypeImage  = "image"
	ResponseTypeAudio  = "audio"
	ResponseTypeVideo  = "video"
	ResponseTypeOption = "option"
	ResponseTypePause  = "pause"
)

// Conversation is the typed view of the dialog-engine result. Only Output is
// examined; the full object travels through the normalizer untouched.
type Conversation struct {
	Output *ConversationOutput `json:"output"`
}

// ConversationOutput holds one turn's response in up to three
// representations. The normalizer picks exactly one, in priority order:
// Slack (raw platform override), Generic (typed elements), Text.
// A nil member means the representation was absent from the input.
type ConversationOutput struct {
	Slack   map[string]interface{} `json:"slack"`
	Generic GenericList            `json:"generic"`
	Text    []string               `json:"text"`
}

// GenericList accepts either a single generic element or a list of them;
// dialog engines emit both shapes.
type GenericList []GenericElement

// UnmarshalJSON wraps a bare element into a one-element list.
func (l *GenericList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var elems []GenericElement
		if err := json.Unmarshal(data, &elems); err != nil {
			return err
		}
		*l = elems
		return nil
	}
	var elem GenericElement
	if err := json.Unmarshal(data, &elem); err != nil {
		return err
	}
	*l = GenericList{elem}
	return nil
}

// GenericElement is one platform-agnostic unit of conversational output,
// discriminated by ResponseType. Only the fields relevant to the declared
// type are populated; the raw bytes are retained so pause elements can be
// forwarded unchanged.
type GenericElement struct {
	ResponseType string   `json:"response_type"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Source       string   `json:"source"`
	Options      []Option `json:"options"`
	Text         string   `json:"text"`

	raw json.RawMessage
}

// UnmarshalJSON decodes the element and keeps a copy of the wire bytes.
func (e *GenericElement) UnmarshalJSON(data []byte) error {
	type alias GenericElement
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*e = GenericElement(a)
	e.raw = append(json.RawMessage(nil), data...)
	return nil
}

// Raw returns the element exactly as it appeared on the wire.
func (e *GenericElement) Raw() json.RawMessage { return e.raw }

// Option is one selectable choice of an option element. Value is either a
// plain string or a structured value carrying input.text; it stays raw until
// button generation normalizes it.
type Option struct {
	Label string          `json:"label"`
	Value json.RawMessage `json:"value"`
}
