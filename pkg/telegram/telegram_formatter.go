package telegram

import (
	"fmt"
	"strings"

	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/utils"
)

// FormatJobCreated formats a newly created copilot job into a Markdown
// string for Telegram.
func FormatJobCreated(job entity.Job) string {
	var builder strings.Builder

	var actionIcon string
	switch strings.ToLower(job.Instruction.Action) {
	case "buy":
		actionIcon = "🟢"
	case "sell":
		actionIcon = "🔴"
	default:
		actionIcon = "🟡"
	}

	builder.WriteString("🤖 *Job is created!*\n\n")
	builder.WriteString(fmt.Sprintf("📈 *Target:* `%s`\n", job.Instruction.Target))
	builder.WriteString(fmt.Sprintf("%s *Action:* %s\n", actionIcon, strings.ToUpper(job.Instruction.Action)))
	if job.Instruction.Quantity != "" {
		builder.WriteString(fmt.Sprintf("🔢 *Quantity:* %s\n", job.Instruction.Quantity))
	}
	if job.Instruction.Condition != "" {
		builder.WriteString(fmt.Sprintf("🎯 *Condition:* %s\n", job.Instruction.Condition))
	}
	if job.Instruction.TimeFrame != "" {
		builder.WriteString(fmt.Sprintf("⏱ *Time Frame:* %s\n", job.Instruction.TimeFrame))
	}
	builder.WriteString(fmt.Sprintf("\n🆔 `%s`\n", job.ID))
	builder.WriteString(utils.PrettyDate(job.CreatedAt))
	return builder.String()
}
