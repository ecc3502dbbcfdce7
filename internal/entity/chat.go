package entity

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one transcript entry.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
	// Specify is set on assistant replies: true when the copilot asked for
	// clarification, false when it produced a job. Nil for user turns and
	// error replies.
	Specify   *bool     `json:"specify,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatReply is the decoded outcome of one chat round trip. It is one of
// NeedsClarification, Complete or Failed.
type ChatReply interface {
	chatReply()
}

// NeedsClarification means the instruction is incomplete.
type NeedsClarification struct {
	Message string
}

// Complete carries a fully specified instruction.
type Complete struct {
	Message     string
	Instruction Instruction
}

// Failed means the round trip could not produce a usable reply.
type Failed struct {
	Reason string
}

func (NeedsClarification) chatReply() {}
func (Complete) chatReply()           {}
func (Failed) chatReply()             {}
