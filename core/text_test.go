package core

import (
	"reflect"
	"testing"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "lowercases and strips punctuation",
			text: "Запрещенный, МАТЕРИАЛ!",
			want: "запрещенный материал",
		},
		{
			name: "keeps double quotes",
			text: `Книга "Пример" автора`,
			want: `книга "пример" автора`,
		},
		{
			name: "collapses whitespace runs",
			text: "один \t два\n\nтри",
			want: "один два три",
		},
		{
			name: "keeps ascii word characters and digits",
			text: "File_01 (draft)",
			want: "file_01 draft",
		},
		{
			name: "strips yo-compatible letters intact",
			text: "Ещё материал",
			want: "ещё материал",
		},
		{
			name: "empty input",
			text: "",
			want: "",
		},
		{
			name: "only punctuation",
			text: "?!,.()",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeText(tt.text); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "splits on sentence enders",
			text: "Первое предложение. Второе предложение! Третье?",
			want: []string{"первое предложение", "второе предложение", "третье"},
		},
		{
			name: "ender runs count once",
			text: "Вопрос?! Ответ...",
			want: []string{"вопрос", "ответ"},
		},
		{
			name: "discards empty sentences",
			text: ". . Настоящее предложение.",
			want: []string{"настоящее предложение"},
		},
		{
			name: "no enders yields one sentence",
			text: "единственное предложение без точки",
			want: []string{"единственное предложение без точки"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitSentences(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitSentences(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		want     []string
	}{
		{
			name:     "splits on spaces",
			sentence: "первое второе третье",
			want:     []string{"первое", "второе", "третье"},
		},
		{
			name:     "drops single-rune tokens",
			sentence: "я иду в лес",
			want:     []string{"иду", "лес"},
		},
		{
			name:     "empty sentence",
			sentence: "",
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tokenize(tt.sentence); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.sentence, got, tt.want)
			}
		})
	}
}

func TestNormalizerAgreement(t *testing.T) {
	// The same policy must apply at index-build time and query time:
	// tokenizing a normalized sentence never changes it further.
	text := "Какой-то «сложный» Текст, с пунктуацией!"
	normalized := NormalizeText(text)
	if NormalizeText(normalized) != normalized {
		t.Errorf("NormalizeText is not idempotent for %q", text)
	}
}
