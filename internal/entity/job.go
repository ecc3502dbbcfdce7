package entity

import (
	"fmt"
	"strings"
	"time"
)

type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusSubmitted JobStatus = "submitted"
	JobStatusCancelled JobStatus = "cancelled"
)

// Instruction is a structured trading instruction extracted from chat.
type Instruction struct {
	Action    string `json:"action"`
	Target    string `json:"target"`
	Condition string `json:"condition"`
	Quantity  string `json:"quantity"`
	TimeFrame string `json:"timeFrame"`
}

// Summary renders the instruction as one line of text.
func (i Instruction) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s", strings.ToUpper(i.Action))
	if i.Quantity != "" {
		fmt.Fprintf(&b, " %s", i.Quantity)
	}
	fmt.Fprintf(&b, " %s", i.Target)
	if i.Condition != "" {
		fmt.Fprintf(&b, " when %s", i.Condition)
	}
	if i.TimeFrame != "" {
		fmt.Fprintf(&b, " (%s)", i.TimeFrame)
	}
	return b.String()
}

// Job is an instruction the copilot judged complete.
type Job struct {
	ID             string      `json:"id"`
	ConversationID string      `json:"conversation_id"`
	Instruction    Instruction `json:"instruction"`
	Status         JobStatus   `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
}
