package model_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/hearsight/pkg/domain/model"
)

func TestTruncateSnippet(t *testing.T) {
	short := "a short snippet"
	gt.Value(t, model.TruncateSnippet(short)).Equal(short)

	long := strings.Repeat("x", model.MaxSnippetLength+50)
	truncated := model.TruncateSnippet(long)
	gt.Value(t, len(truncated)).Equal(model.MaxSnippetLength)

	exact := strings.Repeat("y", model.MaxSnippetLength)
	gt.Value(t, model.TruncateSnippet(exact)).Equal(exact)

	// a rune straddling the byte limit must not be split
	multibyte := "x" + strings.Repeat("あ", 100)
	cut := model.TruncateSnippet(multibyte)
	gt.Bool(t, utf8.ValidString(cut)).True()
	gt.Value(t, cut).Equal("x" + strings.Repeat("あ", 99))
}

func TestTruncateTo(t *testing.T) {
	gt.Value(t, model.TruncateTo("abc", 10)).Equal("abc")
	gt.Value(t, model.TruncateTo("abcdef", 3)).Equal("abc")

	// limit on a rune boundary keeps the full rune
	gt.Value(t, model.TruncateTo("ああ", 3)).Equal("あ")

	// limit inside a rune backs off to the previous boundary
	gt.Value(t, model.TruncateTo("ああ", 4)).Equal("あ")
	gt.Bool(t, utf8.ValidString(model.TruncateTo(strings.Repeat("é", 20), 7))).True()
}
