package parser

import (
	"regexp"
	"strings"
	"sync"
)

var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
)

// decodeEntities заменяет пять стандартных XML-ссылок на символы.
// Замена выполняется за один проход, поэтому "&amp;lt;" превращается в "&lt;".
func decodeEntities(s string) string {
	return entityReplacer.Replace(s)
}

var (
	patternMu    sync.Mutex
	patternCache = map[string]*regexp.Regexp{}
)

// pattern компилирует и кэширует выражения для пар тег/атрибут.
func pattern(expr string) *regexp.Regexp {
	patternMu.Lock()
	defer patternMu.Unlock()
	if re, ok := patternCache[expr]; ok {
		return re
	}
	re := regexp.MustCompile(expr)
	patternCache[expr] = re
	return re
}

// extractTag возвращает текст первого элемента <tag>...</tag> в блоке.
// Открывающий тег может нести атрибуты, самозакрывающийся тег не подходит.
// Содержимое CDATA возвращается как есть, без раскрытия ссылок на сущности;
// остальной текст проходит через decodeEntities.
// Пустая строка означает отсутствие значения.
func extractTag(block, tag string) string {
	name := regexp.QuoteMeta(tag)
	re := pattern(`(?i)<` + name + `(?:\s[^>]*[^/>])?\s*>([\s\S]*?)</` + name + `\s*>`)
	m := re.FindStringSubmatch(block)
	if m == nil {
		return ""
	}
	value := strings.TrimSpace(m[1])
	if strings.HasPrefix(value, "<![CDATA[") && strings.HasSuffix(value, "]]>") {
		return strings.TrimSpace(value[len("<![CDATA[") : len(value)-len("]]>")])
	}
	return decodeEntities(value)
}

// extractAttr возвращает значение атрибута attr первого тега tag, который его содержит.
func extractAttr(block, tag, attr string) string {
	re := pattern(`(?i)<` + regexp.QuoteMeta(tag) + `[^>]*?\s` + regexp.QuoteMeta(attr) + `="([^"]+)"`)
	m := re.FindStringSubmatch(block)
	if m == nil {
		return ""
	}
	return decodeEntities(strings.TrimSpace(m[1]))
}

// firstNonEmpty возвращает первое непустое значение.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
