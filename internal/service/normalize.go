package service

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlphaNum = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)
	multiSpace  = regexp.MustCompile(`\s+`)
)

// clubTokens 俱乐部名称里的通用前后缀，不参与比对
var clubTokens = map[string]struct{}{
	"fc":  {},
	"afc": {},
	"sc":  {},
	"cf":  {},
}

// NormalizeTeamName 把不同数据源的队名规范成可比较的形式：
// 小写、去重音、& 换成 and、标点变空格、去掉 fc/afc/sc/cf、合并空白。
// 多次调用结果不变。
func NormalizeTeamName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = stripAccents(s)
	s = strings.ReplaceAll(s, "&", " and ")
	s = nonAlphaNum.ReplaceAllString(s, " ")

	tokens := strings.Fields(s)
	kept := tokens[:0]
	for _, t := range tokens {
		if _, ok := clubTokens[t]; ok {
			continue
		}
		kept = append(kept, t)
	}
	return multiSpace.ReplaceAllString(strings.Join(kept, " "), " ")
}

// stripAccents 分解后去掉组合附加符号（é → e）。transform.Chain 有状态，每次新建。
func stripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
