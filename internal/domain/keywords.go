package domain

import "strings"

// KeywordList は追加順を保持する自由入力キーワードの集合です。
// 重複と空文字は保持しません。
type KeywordList struct {
	tokens []string
}

// NewKeywordList は raw の各要素を Add の規則で取り込んだリストを返します。
func NewKeywordList(raw ...string) KeywordList {
	var kl KeywordList
	for _, t := range raw {
		kl.Add(t)
	}
	return kl
}

// Add はトークンを末尾に追加します。前後の空白は除去し、
// 空文字と既存トークンは no-op として false を返します。
func (kl *KeywordList) Add(token string) bool {
	token = strings.TrimSpace(token)
	if token == "" {
		return false
	}
	for _, t := range kl.tokens {
		if t == token {
			return false
		}
	}
	kl.tokens = append(kl.tokens, token)
	return true
}

// Remove は一致するトークンを取り除き、取り除けたかを返します。
func (kl *KeywordList) Remove(token string) bool {
	for i, t := range kl.tokens {
		if t == token {
			kl.tokens = append(kl.tokens[:i], kl.tokens[i+1:]...)
			return true
		}
	}
	return false
}

// Len は保持しているトークン数を返します。
func (kl KeywordList) Len() int {
	return len(kl.tokens)
}

// IsEmpty はトークンを1つも保持していないかを返します。
func (kl KeywordList) IsEmpty() bool {
	return len(kl.tokens) == 0
}

// Join は追加順のまま区切り文字で連結します。
func (kl KeywordList) Join(sep string) string {
	return strings.Join(kl.tokens, sep)
}

// Tokens は追加順のコピーを返します。
func (kl KeywordList) Tokens() []string {
	out := make([]string, len(kl.tokens))
	copy(out, kl.tokens)
	return out
}
