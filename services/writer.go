package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ticketgen/models"
)

// EmptyPlaceholder はデータ行が無い場合に出力される内容です
const EmptyPlaceholder = "<!-- No acceptance criteria rows present. Populate the CSV then rerun. -->\n"

// AssembleDocument はチケットを入力順に連結して1つのMarkdownにします
func AssembleDocument(tickets []models.TicketDocument) string {
	if len(tickets) == 0 {
		return EmptyPlaceholder
	}

	parts := make([]string, 0, len(tickets)*3)
	for _, ticket := range tickets {
		parts = append(parts, "# "+ticket.Title+"\n")
		parts = append(parts, ticket.Body)
		parts = append(parts, "\n---\n")
	}
	return strings.Join(parts, "\n")
}

// WriteDocument は出力ファイルを内容で上書きします
// 一時ファイルを使わないため、書き込み失敗時のファイル内容は保証されません
func WriteDocument(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("出力ディレクトリ作成エラー: %w", err)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("Markdown書き込みエラー: %w", err)
	}
	return nil
}
