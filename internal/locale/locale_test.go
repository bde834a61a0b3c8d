package locale

import (
	"strings"
	"testing"

	"github.com/sidereusnuntius/profilechecker/internal/domain"
	"golang.org/x/text/language"
)

func TestStatusText(t *testing.T) {
	m := New("en")
	expected := map[domain.Status]string{
		domain.StatusNone:           "",
		domain.StatusEmptyInput:     "Please enter a valid GitHub username.",
		domain.StatusNotFound:       "Account not found.",
		domain.StatusFound:          "Profile found!",
		domain.StatusOtherError:     "An error occurred. Please try again.",
		domain.StatusNetworkFailure: "Failed to fetch profile. Please check your connection.",
	}
	for s, text := range expected {
		if got := m.Status(s); got != text {
			t.Errorf("%s: expected %q, got %q", s, text, got)
		}
	}
}

func TestCatalogsAreComplete(t *testing.T) {
	english := catalog[language.English]
	for tag, entries := range catalog {
		for key := range english {
			if _, ok := entries[key]; !ok {
				t.Errorf("%s is missing key %s", tag, key)
			}
		}
	}

	for s := domain.StatusEmptyInput; s <= domain.StatusNetworkFailure; s++ {
		if _, ok := english[statusKey(s)]; !ok {
			t.Errorf("no text for status %s", s)
		}
	}
}

func TestNew(t *testing.T) {
	cases := []struct {
		lang     string
		expected language.Tag
	}{
		{"en", language.English},
		{"en-GB", language.English},
		{"pt-BR", language.BrazilianPortuguese},
		{"pt", language.BrazilianPortuguese},
		{"", language.English},
		{"not a language", language.English},
	}
	for _, c := range cases {
		if got := New(c.lang).Tag; got != c.expected {
			t.Errorf("New(%q): expected %s, got %s", c.lang, c.expected, got)
		}
	}
}

func TestPortuguese(t *testing.T) {
	m := New("pt-BR")
	if got := m.Status(domain.StatusNotFound); got != "Conta não encontrada." {
		t.Errorf("unexpected text %q", got)
	}
	if got := m.Text(AvatarAlt, "Linus"); !strings.Contains(got, "Linus") {
		t.Errorf("avatar alt not formatted: %q", got)
	}
}
