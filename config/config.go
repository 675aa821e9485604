package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config はチケット生成ツール全体の設定を保持します
type Config struct {
	// ファイルパス
	InputCSV       string `env:"TICKETGEN_INPUT_CSV" envDefault:"docs/prd/acceptance_criteria_matrix.csv"`
	OutputMarkdown string `env:"TICKETGEN_OUTPUT" envDefault:"tracker/issues/generated_phase1_tickets.md"`

	// 全チケット共通のラベル
	Labels     []string `env:"TICKETGEN_LABELS" envSeparator:","`
	LabelsFile string   `env:"TICKETGEN_LABELS_FILE"`
}

// DefaultLabels は全チケットに付与される既定のラベルです
var DefaultLabels = []string{
	"frontend/*",
	"backend/*",
	"qa",
	"security",
	"devops",
	"docs",
}

// RequiredColumns は入力CSVのヘッダーに必須のカラム名です（大文字小文字を区別）
var RequiredColumns = []string{
	"ID",
	"User Story",
	"Given",
	"When",
	"Then",
	"Perf Target",
	"Notes",
}

// labelsFile はラベル定義YAMLの構造です
type labelsFile struct {
	Labels []string `yaml:"labels"`
}

// LoadConfig は環境変数から設定を読み込みます
func LoadConfig() (*Config, error) {
	// .envファイルを読み込む
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("環境変数解析エラー: %w", err)
	}

	if cfg.LabelsFile != "" {
		labels, err := loadLabelsFile(cfg.LabelsFile)
		if err != nil {
			return nil, err
		}
		cfg.Labels = labels
	}

	cfg.Labels = cleanLabels(cfg.Labels)
	if len(cfg.Labels) == 0 {
		cfg.Labels = append([]string(nil), DefaultLabels...)
	}

	return cfg, nil
}

// Default は環境変数を参照しない既定の設定を返します
func Default() *Config {
	return &Config{
		InputCSV:       "docs/prd/acceptance_criteria_matrix.csv",
		OutputMarkdown: "tracker/issues/generated_phase1_tickets.md",
		Labels:         append([]string(nil), DefaultLabels...),
	}
}

// ラベル定義YAMLを読み込む
func loadLabelsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ラベルファイル読み込みエラー: %w", err)
	}

	var lf labelsFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("ラベルファイル解析エラー (%s): %w", path, err)
	}

	return lf.Labels, nil
}

// 前後の空白を除去し、空のラベルを取り除く
func cleanLabels(labels []string) []string {
	result := make([]string, 0, len(labels))
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label != "" {
			result = append(result, label)
		}
	}
	return result
}
