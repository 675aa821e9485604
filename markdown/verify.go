package markdown

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ErrStructure は生成したMarkdownの見出し構造がチケットと一致しない場合のエラーです
var ErrStructure = errors.New("Markdown構造エラー")

var (
	parserInstance goldmark.Markdown
	parserOnce     sync.Once
)

func getParser() goldmark.Markdown {
	parserOnce.Do(func() {
		parserInstance = goldmark.New()
	})
	return parserInstance
}

// TicketHeadings は文書中のレベル1見出しの文字列を出現順に返します
func TicketHeadings(source string) []string {
	src := []byte(source)
	document := getParser().Parser().Parse(text.NewReader(src))

	var headings []string
	_ = ast.Walk(document, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if heading.Level == 1 {
			headings = append(headings, headingText(heading, src))
		}
		return ast.WalkSkipChildren, nil
	})
	return headings
}

// VerifyTickets は文書のレベル1見出しが ids と同じ数・同じ順序であることを確認します
// 各見出しは対応するIDで始まっている必要があります
func VerifyTickets(source string, ids []string) error {
	headings := TicketHeadings(source)
	if len(headings) != len(ids) {
		return fmt.Errorf("%w: 見出し数が一致しません (チケット: %d, 見出し: %d)", ErrStructure, len(ids), len(headings))
	}

	for i, id := range ids {
		if !strings.HasPrefix(headings[i], id) {
			return fmt.Errorf("%w: %d 番目の見出し %q が ID %q と一致しません", ErrStructure, i+1, headings[i], id)
		}
	}
	return nil
}

// 見出しの元テキストを取り出す
func headingText(heading *ast.Heading, source []byte) string {
	var sb strings.Builder
	lines := heading.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		sb.Write(segment.Value(source))
	}
	return strings.TrimSpace(sb.String())
}
