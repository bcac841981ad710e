// Package normalize maps one dialog-engine turn plus the inbound Slack event
// that triggered it into the message body a delivery stage posts back to
// Slack. The transform is pure: no I/O, no state, and identical inputs yield
// identical outputs.
package normalize

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/slack-go/slack"

	"github.com/fatmagorgulu/conversation-connector/internal/config"
	"github.com/fatmagorgulu/conversation-connector/internal/model"
)

// input is the fully validated invocation body. Exactly one of event and
// payload is set; channel and url are always resolved.
type input struct {
	conversationRaw json.RawMessage
	rawInputRaw     json.RawMessage
	output          *model.ConversationOutput
	event           *model.InboundEvent
	payload         *slack.InteractionCallback
	channel         string
	url             string
}

// Normalize converts the dialog-engine result carried by req into the
// outbound Slack message body. It returns a *ValidationError when a required
// piece of the input is missing or malformed; no output is produced in that
// case.
func Normalize(req *model.NormalizeRequest) (model.OutboundMessage, error) {
	in, err := parse(req)
	if err != nil {
		return nil, err
	}

	msg := model.OutboundMessage{
		"channel":        in.channel,
		"url":            in.url,
		"raw_input_data": in.rawInputRaw,
		"raw_output_data": map[string]interface{}{
			"conversation": in.conversationRaw,
		},
	}

	out := in.output
	switch {
	case out.Slack != nil:
		// Raw platform override: every caller key lands on the result as-is,
		// clobbering channel/url when the override defines them. No timestamp
		// injection on this path.
		for k, v := range out.Slack {
			msg[k] = v
		}
	case out.Generic != nil:
		if ts := in.previousTS(); ts != "" {
			msg["ts"] = ts
		}
		list, err := generateMessages(out.Generic)
		if err != nil {
			return nil, err
		}
		msg["message"] = list
	default:
		if ts := in.previousTS(); ts != "" {
			msg["ts"] = ts
		}
		text := strings.Join(out.Text, " ")
		if in.payload != nil {
			// Interactive callbacks echo the message the user acted on, and
			// Slack expects it mirrored into attachments as well.
			if orig := in.payload.OriginalMessage.Text; orig != "" {
				text = orig
			}
			msg["attachments"] = []model.Attachment{{Text: text}}
		}
		msg["text"] = text
	}

	return msg, nil
}

// parse runs the single validation pass over the invocation body and
// resolves the destination channel and delivery endpoint.
func parse(req *model.NormalizeRequest) (*input, error) {
	if req == nil || !present(req.Conversation) {
		return nil, validationErr("conversation", "missing dialog-engine result")
	}

	var conv model.Conversation
	if err := json.Unmarshal(req.Conversation, &conv); err != nil {
		return nil, validationErr("conversation", "not a JSON object")
	}
	if conv.Output == nil {
		return nil, validationErr("conversation.output", "missing")
	}
	out := conv.Output
	if out.Slack == nil && out.Generic == nil && out.Text == nil {
		return nil, validationErr("conversation.output", "no slack, generic, or text message")
	}

	if !present(req.RawInputData) {
		return nil, validationErr("raw_input_data", "missing inbound event data")
	}
	var raw model.RawInputData
	if err := json.Unmarshal(req.RawInputData, &raw); err != nil {
		return nil, validationErr("raw_input_data", "not a JSON object")
	}
	if raw.Slack == nil {
		return nil, validationErr("raw_input_data.slack", "missing")
	}
	if !present(raw.Conversation) {
		return nil, validationErr("raw_input_data.conversation", "missing")
	}

	in := &input{
		conversationRaw: req.Conversation,
		rawInputRaw:     req.RawInputData,
		output:          out,
	}

	switch {
	case raw.Slack.Event != nil:
		in.event = raw.Slack.Event
		in.channel = raw.Slack.Event.Channel
		in.url = config.PostMessageURL
	case raw.Slack.Payload != nil:
		var cb slack.InteractionCallback
		if err := json.Unmarshal([]byte(*raw.Slack.Payload), &cb); err != nil {
			return nil, validationErr("raw_input_data.slack.payload", "unparseable JSON string")
		}
		in.payload = &cb
		in.channel = cb.Channel.ID
		if cb.ResponseURL != "" {
			in.url = cb.ResponseURL
		} else {
			in.url = config.UpdateMessageURL
		}
	}

	if in.channel == "" {
		return nil, validationErr("raw_input_data.slack", "no destination channel")
	}
	return in, nil
}

// previousTS resolves the timestamp of the message this turn responds to:
// the nested message timestamp of an edited-message event, the event's own
// timestamp, or the acted-on message of an interactive callback. Empty when
// none applies; the caller then emits no ts field at all.
func (in *input) previousTS() string {
	if in.event != nil {
		if in.event.Message != nil && in.event.Message.TS != "" {
			return in.event.Message.TS
		}
		return in.event.TS
	}
	return in.payload.OriginalMessage.Timestamp
}

// present reports whether a raw JSON member exists and is not null.
func present(raw json.RawMessage) bool {
	return len(raw) > 0 && !bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
