package main

import (
	"os"

	"ticketgen/config"
	"ticketgen/services"
	"ticketgen/utils"
)

func main() {
	utils.LogInfo("受け入れ基準CSV → チケットMarkdown 生成ツール")

	// 設定の読み込み
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("設定の読み込みに失敗しました: %v", err)
		os.Exit(1)
	}

	generator := services.NewTicketGenerator(cfg)
	if _, err := generator.Generate(); err != nil {
		utils.LogError("チケット生成に失敗しました: %v", err)
		os.Exit(1)
	}
}
