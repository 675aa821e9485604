package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"ticketgen/config"
	"ticketgen/models"
	"ticketgen/utils"
)

// ErrMissingInput は入力CSVが存在しない場合のエラーです
var ErrMissingInput = errors.New("入力CSVが見つかりません")

// ErrMalformedRow はCSVの行が解析できない場合のエラーです
var ErrMalformedRow = errors.New("不正なCSV行")

// MissingColumnError はヘッダーに必須カラムが無い場合のエラーです
type MissingColumnError struct {
	Path    string
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("必須カラムが見つかりません (%s): %s", e.Path, strings.Join(e.Columns, ", "))
}

// RowReader は受け入れ基準CSVを先頭から1行ずつ読み込みます
// 一度読み終えると再読み込みはできません
type RowReader struct {
	path    string
	file    *os.File
	reader  *csv.Reader
	headers []string
	row     int // 直前に返した行番号（ヘッダー = 1）
}

// OpenRowReader は入力CSVを開き、ヘッダーを検証します
func OpenRowReader(path string) (*RowReader, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, path)
		}
		return nil, fmt.Errorf("CSV確認エラー: %w", err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("CSVオープンエラー: %w", err)
	}

	// 不正なUTF-8は置換せずエラーにし、表計算ソフトが付けるBOMは除去する
	decoded := transform.NewReader(file, transform.Chain(encoding.UTF8Validator, unicode.UTF8BOM.NewDecoder()))
	reader := csv.NewReader(decoded)
	// ヘッダーと列数が異なる行はエラーにする
	reader.FieldsPerRecord = 0
	// 引用符で囲まれていないフィールド中の " はそのまま値として扱う
	reader.LazyQuotes = true

	rr := &RowReader{path: path, file: file, reader: reader}
	if err := rr.readHeader(); err != nil {
		file.Close()
		return nil, err
	}
	return rr, nil
}

// Headers は入力CSVのヘッダーを返します
func (r *RowReader) Headers() []string {
	return r.headers
}

// Next は次のデータ行と、その行番号（ヘッダー = 1, 最初のデータ行 = 2）を返します
// 全行を読み終えた場合は io.EOF を返します
func (r *RowReader) Next() (models.AcceptanceRow, int, error) {
	values, err := r.reader.Read()
	if err == io.EOF {
		return models.AcceptanceRow{}, 0, io.EOF
	}
	if err != nil {
		return models.AcceptanceRow{}, 0, fmt.Errorf("%w (%s 行 %d): %w", ErrMalformedRow, r.path, r.row+1, err)
	}
	r.row++

	record := make(models.CSVRecord, len(r.headers))
	for i, header := range r.headers {
		record[header] = values[i]
	}

	row := toAcceptanceRow(record)
	if empty := emptyRequiredFields(row); len(empty) > 0 {
		utils.LogWarn("行 %d: 必須項目が空です: %s", r.row, strings.Join(empty, ", "))
	}
	return row, r.row, nil
}

// Close は入力ファイルを閉じます
func (r *RowReader) Close() error {
	return r.file.Close()
}

// ヘッダー行を読み込み、必須カラムの存在を確認する
func (r *RowReader) readHeader() error {
	headers, err := r.reader.Read()
	if err == io.EOF {
		return &MissingColumnError{Path: r.path, Columns: append([]string(nil), config.RequiredColumns...)}
	}
	if err != nil {
		return fmt.Errorf("%w (%s 行 1): %w", ErrMalformedRow, r.path, err)
	}

	present := make(map[string]bool, len(headers))
	for _, header := range headers {
		present[header] = true
	}

	var missing []string
	for _, column := range config.RequiredColumns {
		if !present[column] {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnError{Path: r.path, Columns: missing}
	}

	r.headers = headers
	r.row = 1
	return nil
}

// CSVレコードを受け入れ行に変換する（前後の空白は除去）
func toAcceptanceRow(record models.CSVRecord) models.AcceptanceRow {
	return models.AcceptanceRow{
		ID:         strings.TrimSpace(record["ID"]),
		UserStory:  strings.TrimSpace(record["User Story"]),
		Given:      strings.TrimSpace(record["Given"]),
		When:       strings.TrimSpace(record["When"]),
		Then:       strings.TrimSpace(record["Then"]),
		PerfTarget: strings.TrimSpace(record["Perf Target"]),
		Notes:      strings.TrimSpace(record["Notes"]),
	}
}

// 空の必須項目名を返す
func emptyRequiredFields(row models.AcceptanceRow) []string {
	var empty []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"ID", row.ID},
		{"User Story", row.UserStory},
		{"Given", row.Given},
		{"When", row.When},
		{"Then", row.Then},
	} {
		if f.value == "" {
			empty = append(empty, f.name)
		}
	}
	return empty
}
