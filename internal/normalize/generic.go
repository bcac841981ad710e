package normalize

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/fatmagorgulu/conversation-connector/internal/logger"
	"github.com/fatmagorgulu/conversation-connector/internal/model"
)

// generateMessages maps each generic element to its Slack sub-message,
// preserving input order. Elements with an unrecognized response_type
// contribute nothing; existing callers rely on that tolerance.
func generateMessages(elements model.GenericList) ([]interface{}, error) {
	list := make([]interface{}, 0, len(elements))
	for _, el := range elements {
		sub, ok, err := generateMessage(el)
		if err != nil {
			return nil, err
		}
		if ok {
			list = append(list, sub)
		}
	}
	return list, nil
}

func generateMessage(el model.GenericElement) (interface{}, bool, error) {
	switch el.ResponseType {
	case model.ResponseTypeText:
		return model.Message{Text: el.Text}, true, nil
	case model.ResponseTypeImage:
		return model.Message{
			Attachments: []model.Attachment{{
				Title:    el.Title,
				Pretext:  el.Description,
				ImageURL: el.Source,
			}},
		}, true, nil
	case model.ResponseTypeAudio, model.ResponseTypeVideo:
		// Slack has no native audio/video message; a hyperlink with media
		// unfurling enabled renders an inline player.
		return model.Message{
			Text:        fmt.Sprintf("<%s|%s>", el.Source, el.Title),
			UnfurlLinks: true,
			UnfurlMedia: true,
		}, true, nil
	case model.ResponseTypeOption:
		att, err := optionAttachment(el)
		if err != nil {
			return nil, false, err
		}
		return model.Message{Attachments: []model.Attachment{att}}, true, nil
	case model.ResponseTypePause:
		// Placeholder: forwarded unchanged until typing-indicator delivery
		// exists downstream.
		return el.Raw(), true, nil
	default:
		logger.GetLogger().Debug("dropping generic element with unrecognized response type",
			zap.String("response_type", el.ResponseType))
		return nil, false, nil
	}
}

// optionAttachment renders an option element as one attachment carrying a
// button per choice.
func optionAttachment(el model.GenericElement) (model.Attachment, error) {
	actions := make([]model.AttachmentAction, 0, len(el.Options))
	for _, opt := range el.Options {
		value, err := buttonValue(opt.Value)
		if err != nil {
			return model.Attachment{}, err
		}
		actions = append(actions, model.AttachmentAction{
			Name:  opt.Label,
			Type:  "button",
			Text:  opt.Label,
			Value: value,
		})
	}
	return model.Attachment{
		Text:       el.Title,
		CallbackID: el.Title,
		Actions:    actions,
	}, nil
}

// buttonValue coerces an option value into the string Slack requires on a
// button. Plain strings pass through; structured values must carry a
// non-empty input.text string.
func buttonValue(raw json.RawMessage) (string, error) {
	if !present(raw) {
		return "", validationErr("options.value", "missing")
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", validationErr("options.value", "not valid JSON")
	}
	switch value := v.(type) {
	case string:
		return value, nil
	case map[string]interface{}:
		inputField, ok := value["input"].(map[string]interface{})
		if !ok {
			return "", validationErr("options.value", "structured value has no input object")
		}
		text, ok := inputField["text"].(string)
		if !ok || text == "" {
			return "", validationErr("options.value", "structured value has no input.text string")
		}
		return text, nil
	default:
		return "", validationErr("options.value", "must be a string or an object with input.text")
	}
}
