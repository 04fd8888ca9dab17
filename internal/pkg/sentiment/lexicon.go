package sentiment

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/go-ego/gse"
)

type termKind int

const (
	kindPositive termKind = iota + 1
	kindNegative
	kindNegator
	kindIntensifier
)

const (
	// 得分 = 1 / (1 + e^(-steepness * polarity))
	steepness       = 1.2
	intensifyFactor = 1.5
	negateFactor    = 0.8
)

// 词典词条在分词器中的词频，保证情感词整体切出
const termFreq = 1e6

// LexiconAnalyzer 基于情感词典的本地分析器
//
// 文本先经 gse 分词，词段再与情感词典匹配；不在词典中的中文词段若能完整拆成词条(如 "非常好")也计入。
// 否定词翻转紧随其后的情感词，程度副词放大其权重。净极性经 logistic 函数映射到 (0,1)，
// 无情感词时为 0.5。
type LexiconAnalyzer struct {
	seg      *gse.Segmenter
	terms    map[string]termKind
	maxRunes int
}

var (
	segOnce sync.Once
	segErr  error
	shared  *LexiconAnalyzer
)

// NewLexiconAnalyzer 返回进程内共享的分析器，分词词典只加载一次
func NewLexiconAnalyzer() (*LexiconAnalyzer, error) {
	segOnce.Do(func() {
		seg, err := gse.New()
		if err != nil {
			segErr = fmt.Errorf("failed to load segmenter dictionary: %w", err)
			return
		}

		a := &LexiconAnalyzer{seg: &seg, terms: make(map[string]termKind)}
		for _, group := range []struct {
			kind  termKind
			words []string
		}{
			{kindPositive, positiveTerms},
			{kindNegative, negativeTerms},
			{kindNegator, negatorTerms},
			{kindIntensifier, intensifierTerms},
		} {
			if err := a.add(group.kind, group.words); err != nil {
				segErr = err
				return
			}
		}
		shared = a
	})
	return shared, segErr
}

func (a *LexiconAnalyzer) add(kind termKind, words []string) error {
	for _, w := range words {
		w = strings.ToLower(w)
		a.terms[w] = kind
		n := utf8.RuneCountInString(w)
		if n > a.maxRunes {
			a.maxRunes = n
		}
		// 单字词条不进分词词典，避免拆散 "水平" 这类普通词
		if n < 2 {
			continue
		}
		if err := a.seg.AddToken(w, termFreq); err != nil {
			return fmt.Errorf("failed to add term %q: %w", w, err)
		}
	}
	return nil
}

func (a *LexiconAnalyzer) Name() string {
	return ProviderLexicon
}

func (a *LexiconAnalyzer) Score(ctx context.Context, text string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return a.score(a.tokenize(text)), nil
}

// Polarity 返回文本的净极性，主要用于调试词典
func (a *LexiconAnalyzer) Polarity(text string) float64 {
	return a.polarity(a.tokenize(text))
}

func (a *LexiconAnalyzer) score(kinds []termKind) float64 {
	p := a.polarity(kinds)
	return 1 / (1 + math.Exp(-steepness*p))
}

func (a *LexiconAnalyzer) polarity(kinds []termKind) float64 {
	var (
		total  float64
		weight = 1.0
		negate bool
	)

	for _, k := range kinds {
		switch k {
		case kindNegator:
			negate = !negate
		case kindIntensifier:
			weight *= intensifyFactor
		case kindPositive, kindNegative:
			v := weight
			if k == kindNegative {
				v = -v
			}
			if negate {
				v = -v * negateFactor
			}
			total += v
			weight, negate = 1.0, false
		}
	}
	return total
}

// tokenize 将文本切分为词典中出现的词条类型序列
func (a *LexiconAnalyzer) tokenize(text string) []termKind {
	text = strings.ReplaceAll(strings.ToLower(text), "n't", " not")

	var kinds []termKind
	for _, segment := range a.seg.Cut(text, true) {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		if k, ok := a.terms[segment]; ok {
			kinds = append(kinds, k)
			continue
		}

		kinds = append(kinds, a.matchHan(segment)...)
	}

	return kinds
}

// matchHan 对未登录词段做正向最大匹配，只有整段都由词条组成时才计入，
// 例如 "非常好"、"不好"；"水平" 中的 "水" 不计入
func (a *LexiconAnalyzer) matchHan(segment string) []termKind {
	runes := []rune(segment)
	var kinds []termKind

	for i := 0; i < len(runes); {
		if !unicode.Is(unicode.Han, runes[i]) {
			return nil
		}

		matched := 0
		for n := min(a.maxRunes, len(runes)-i); n > 0; n-- {
			if k, ok := a.terms[string(runes[i:i+n])]; ok {
				kinds = append(kinds, k)
				matched = n
				break
			}
		}
		if matched == 0 {
			return nil
		}
		i += matched
	}

	return kinds
}
