package assets

import (
	"strings"
	"testing"
)

func TestCategoriesEmbedded(t *testing.T) {
	cats, err := Categories()
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	for _, name := range []string{"Tecnologia", "Animais", "Cores"} {
		if len(cats[name]) == 0 {
			t.Fatalf("expected words for %q, got %v", name, cats[name])
		}
	}
	if got := cats["Animais"][0]; got != "gato" {
		t.Fatalf("expected first animal gato, got %q", got)
	}
}

func TestParseCategories(t *testing.T) {
	in := "# comment\n\n[Frutas]\nMaca\n  uva  \n[Vazia]\n"
	cats, err := ParseCategories(strings.NewReader(in))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := strings.Join(cats["Frutas"], ","); got != "maca,uva" {
		t.Fatalf("expected maca,uva got %q", got)
	}
	if words, ok := cats["Vazia"]; !ok || len(words) != 0 {
		t.Fatalf("expected empty Vazia category, got %v (present=%v)", words, ok)
	}
}

func TestParseCategoriesErrors(t *testing.T) {
	tests := map[string]string{
		"word before header": "gato\n[Animais]\n",
		"empty header":       "[ ]\ngato\n",
		"duplicate header":   "[A]\nx\n[A]\ny\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseCategories(strings.NewReader(in)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
