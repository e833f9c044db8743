package entity

import "testing"

func TestNormalizeTitle(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Mercado", "mercado"},
		{"trims edges", "  Mercado  ", "mercado"},
		{"collapses inner whitespace", "Cartão   de  Crédito", "cartao de credito"},
		{"strips diacritics", "Alimentação", "alimentacao"},
		{"diacritics and case together", "  SAÚDE ", "saude"},
		{"already normalized", "transporte", "transporte"},
		{"empty input", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := NormalizeTitle(c.input); got != c.want {
				t.Errorf("NormalizeTitle(%q): expected %q, got %q", c.input, c.want, got)
			}
		})
	}

	t.Run("accented and plain variants collide", func(t *testing.T) {
		if NormalizeTitle("Alimentação") != NormalizeTitle("alimentacao") {
			t.Error("expected accented and plain forms to normalize equally")
		}
	})
}

func TestTransactionTypeIsValid(t *testing.T) {
	if !TransactionTypeIncome.IsValid() || !TransactionTypeExpense.IsValid() {
		t.Error("expected INCOME and EXPENSE to be valid")
	}
	for _, invalid := range []TransactionType{"", "income", "TRANSFER"} {
		if invalid.IsValid() {
			t.Errorf("expected %q to be invalid", invalid)
		}
	}
}
