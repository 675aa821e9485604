package utils

import (
	"io"
	"log"
	"os"
	"time"
)

var (
	// InfoLogger は情報レベルのログを出力します
	InfoLogger *log.Logger
	// WarnLogger は警告レベルのログを出力します
	WarnLogger *log.Logger
	// ErrorLogger はエラーレベルのログを出力します
	ErrorLogger *log.Logger
)

func init() {
	SetOutput(os.Stdout, os.Stderr)
}

// SetOutput はログの出力先を切り替えます（テストでの抑制・取得用）
func SetOutput(out, errOut io.Writer) {
	InfoLogger = log.New(out, "INFO: ", log.Ldate|log.Ltime)
	WarnLogger = log.New(out, "WARN: ", log.Ldate|log.Ltime)
	ErrorLogger = log.New(errOut, "ERROR: ", log.Ldate|log.Ltime)
}

// LogInfo は情報レベルのメッセージをログに記録します
func LogInfo(format string, v ...interface{}) {
	InfoLogger.Printf(format, v...)
}

// LogWarn は警告レベルのメッセージをログに記録します
func LogWarn(format string, v ...interface{}) {
	WarnLogger.Printf(format, v...)
}

// LogError はエラーレベルのメッセージをログに記録します
func LogError(format string, v ...interface{}) {
	ErrorLogger.Printf(format, v...)
}

// TrackTime は処理の経過時間を出力します
// defer utils.TrackTime(time.Now(), "名前") の形で使います
func TrackTime(start time.Time, name string) {
	LogInfo("%s 完了時間: %s", name, time.Since(start))
}
