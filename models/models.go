package models

// CSVRecord はCSVの1行を表します (ヘッダー名→値のマップ)
type CSVRecord map[string]string

// AcceptanceRow は受け入れ基準CSVの1データ行を表します
// 各フィールドは前後の空白を除去済みです
type AcceptanceRow struct {
	ID         string
	UserStory  string
	Given      string
	When       string
	Then       string
	PerfTarget string
	Notes      string
}

// TicketDocument は1行から生成されるチケットのMarkdownです
type TicketDocument struct {
	ID     string
	Title  string // "<ID> — <User Story>"
	Anchor string // "<入力CSVパス>:<行番号>"
	Labels []string
	Body   string
}
