package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang-stock-sentiment/internal/dashboard/dto"
	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/common"
	"golang-stock-sentiment/pkg/logger"
)

const defaultClarification = "Please provide more details."

// ChatRepository runs one copilot chat turn against the backend.
type ChatRepository interface {
	Chat(ctx context.Context, turns []entity.Message) (entity.ChatReply, error)
}

type chatRepository struct {
	client *BackendClient
	logger *logger.Logger
}

// NewChatRepository creates a new instance of ChatRepository.
func NewChatRepository(client *BackendClient, log *logger.Logger) ChatRepository {
	return &chatRepository{client: client, logger: log}
}

// Chat sends turns to the chat endpoint and decodes the reply. Transport
// and decoding failures are returned as errors; callers turn them into a
// Failed reply.
func (r *chatRepository) Chat(ctx context.Context, turns []entity.Message) (entity.ChatReply, error) {
	req := dto.ChatRequest{Messages: make([]dto.ChatTurn, 0, len(turns))}
	for _, t := range turns {
		req.Messages = append(req.Messages, dto.ChatTurn{Role: string(t.Role), Content: t.Content})
	}

	var envelope dto.ChatEnvelope
	if err := r.client.postJSON(ctx, common.EndpointChat, req, &envelope); err != nil {
		return nil, err
	}

	reply, err := DecodeChatReply(envelope.Response)
	if err != nil {
		r.logger.Error("Failed to decode chat reply", logger.ErrorField(err), logger.StringField("response", string(envelope.Response)))
		return nil, err
	}
	return reply, nil
}

// DecodeChatReply turns the envelope's response field into a ChatReply.
// The field may be the reply object or a string holding its JSON encoding;
// either way it is decoded exactly once here.
//
// specify=true asks for clarification and specify=false completes the
// instruction. Without a specify flag, the "specify_needed" id or a missing
// action/target means clarification.
func DecodeChatReply(raw json.RawMessage) (entity.ChatReply, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, fmt.Errorf("%w: empty chat response", ErrMalformedResponse)
	}

	if raw[0] == '"' {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		text = strings.TrimSpace(text)
		text = strings.TrimPrefix(text, "```json")
		text = strings.Trim(text, "`\n ")
		raw = json.RawMessage(text)
	}

	var payload dto.ChatReplyPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	instruction := entity.Instruction{
		Action:    payload.Action.String(),
		Target:    payload.Target.String(),
		Condition: payload.Condition.String(),
		Quantity:  payload.Quantity.String(),
		TimeFrame: payload.TimeFrame.String(),
	}

	var complete bool
	switch {
	case payload.Specify != nil:
		complete = !*payload.Specify
	case payload.ID == common.ChatSpecifyNeededID:
	default:
		complete = instruction.Action != "" && instruction.Target != ""
	}

	if !complete {
		msg := payload.Message
		if msg == "" {
			msg = defaultClarification
		}
		return entity.NeedsClarification{Message: msg}, nil
	}

	msg := payload.Message
	if msg == "" {
		msg = "Job created: " + instruction.Summary()
	}
	return entity.Complete{Message: msg, Instruction: instruction}, nil
}
