package model

import "encoding/json"

// NormalizeRequest is the invocation body handed to the normalizer by the
// pipeline orchestrator: one dialog-engine turn result plus the unmodified
// inbound channel event that triggered it. Both members are kept raw so they
// can be passed through verbatim into the outbound message.
type NormalizeRequest struct {
	Conversation json.RawMessage `json:"conversation"`
	RawInputData json.RawMessage `json:"raw_input_data"`
}

// RawInputData is the typed view of the inbound event. The slack member is
// examined to resolve the destination; the conversation member is only
// checked for existence.
type RawInputData struct {
	Slack        *SlackInput     `json:"slack"`
	Conversation json.RawMessage `json:"conversation"`
}

// SlackInput carries one of two mutually exclusive inbound shapes: a pushed
// message notification (Event), or an interactive callback (Payload, a
// JSON-encoded string exactly as Slack delivers it).
type SlackInput struct {
	Event   *InboundEvent `json:"event"`
	Payload *string       `json:"payload"`
}

// InboundEvent is the subset of a pushed Slack event the normalizer reads.
// Edited-message notifications nest the edited message one level down.
type InboundEvent struct {
	Channel string        `json:"channel"`
	TS      string        `json:"ts"`
	Message *EventMessage `json:"message"`
}

// EventMessage is the nested message of an edited-message notification.
type EventMessage struct {
	TS string `json:"ts"`
}

// OutboundMessage is the chat-platform message body produced by the
// normalizer. It is a plain JSON object rather than a fixed struct: the
// platform-override path copies arbitrary caller-supplied keys onto the top
// level of the result.
type OutboundMessage map[string]interface{}

// Message is one outbound sub-message produced from a generic element.
type Message struct {
	Text        string       `json:"text,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
	UnfurlLinks bool         `json:"unfurl_links,omitempty"`
	UnfurlMedia bool         `json:"unfurl_media,omitempty"`
}

// Attachment mirrors the legacy Slack attachment fields the connector emits.
type Attachment struct {
	Title      string             `json:"title,omitempty"`
	Pretext    string             `json:"pretext,omitempty"`
	ImageURL   string             `json:"image_url,omitempty"`
	Text       string             `json:"text,omitempty"`
	CallbackID string             `json:"callback_id,omitempty"`
	Actions    []AttachmentAction `json:"actions,omitempty"`
}

// AttachmentAction is a single interactive button on an attachment.
type AttachmentAction struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Text  string `json:"text"`
	Value string `json:"value"`
}
