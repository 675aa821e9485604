package services

import (
	"fmt"
	"path/filepath"
	"strings"

	"ticketgen/models"
)

// PerfTargetPlaceholder は性能目標が空の場合に出力される値です
const PerfTargetPlaceholder = "TBD"

// FormatTicket は1行分の受け入れ基準からチケットを作成します
// 副作用は無く、同じ入力からは常に同じ結果を返します
func FormatTicket(row models.AcceptanceRow, rowNumber int, sourcePath string, labels []string) models.TicketDocument {
	anchor := fmt.Sprintf("%s:%d", filepath.ToSlash(sourcePath), rowNumber)

	perf := row.PerfTarget
	if perf == "" {
		perf = PerfTargetPlaceholder
	}

	body := []string{
		fmt.Sprintf("## Scope\n- Traceability: `%s`\n- Labels: %s", anchor, strings.Join(labels, ", ")),
		"",
		"## Acceptance Snapshot",
		"- Given: " + row.Given,
		"- When: " + row.When,
		"- Then: " + row.Then,
		"- Perf target: " + perf,
	}
	if row.Notes != "" {
		body = append(body, "- Notes: "+row.Notes)
	}

	return models.TicketDocument{
		ID:     row.ID,
		Title:  row.ID + " — " + row.UserStory,
		Anchor: anchor,
		Labels: append([]string(nil), labels...),
		Body:   strings.Join(body, "\n"),
	}
}
