package services

import (
	"fmt"
	"io"
	"time"

	"ticketgen/config"
	"ticketgen/markdown"
	"ticketgen/models"
	"ticketgen/utils"
)

// TicketGenerator は受け入れ基準CSVからチケットMarkdownを生成します
type TicketGenerator struct {
	config *config.Config
}

// NewTicketGenerator は新しいチケットジェネレーターを作成します
func NewTicketGenerator(cfg *config.Config) *TicketGenerator {
	return &TicketGenerator{
		config: cfg,
	}
}

// Generate は入力CSVを読み込み、出力Markdownを上書きします
// 生成したチケット数を返します。出力ファイルへの書き込みは全行の変換が成功した後に1回だけ行います
func (g *TicketGenerator) Generate() (int, error) {
	defer utils.TrackTime(time.Now(), "チケット生成")

	tickets, err := g.BuildTickets()
	if err != nil {
		return 0, err
	}

	content := AssembleDocument(tickets)
	if len(tickets) == 0 {
		utils.LogWarn("受け入れ基準の行がありません。プレースホルダーを出力します")
	} else {
		ids := make([]string, len(tickets))
		for i, ticket := range tickets {
			ids[i] = ticket.ID
		}
		if err := markdown.VerifyTickets(content, ids); err != nil {
			return 0, err
		}
	}

	utils.LogInfo("チケットMarkdownを書き込みます: %s", g.config.OutputMarkdown)
	if err := WriteDocument(g.config.OutputMarkdown, content); err != nil {
		return 0, err
	}

	utils.LogInfo("チケット生成完了: %d 件", len(tickets))
	return len(tickets), nil
}

// BuildTickets は入力CSVの全行をファイル順にチケットへ変換します
func (g *TicketGenerator) BuildTickets() ([]models.TicketDocument, error) {
	utils.LogInfo("受け入れ基準CSV '%s' を読み込みます", g.config.InputCSV)

	reader, err := OpenRowReader(g.config.InputCSV)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	var tickets []models.TicketDocument
	for {
		row, rowNumber, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV読み込みエラー: %w", err)
		}
		tickets = append(tickets, FormatTicket(row, rowNumber, g.config.InputCSV, g.config.Labels))
	}

	utils.LogInfo("受け入れ基準CSVを読み込みました: %d 行", len(tickets))
	return tickets, nil
}
