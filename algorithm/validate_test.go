package algorithm

import (
	"errors"
	"math/big"
	"testing"
)

func TestParseNumber(t *testing.T) {
	n, err := ParseNumber("p", "  1234567890123456789012345678901234567890 ")
	if err != nil {
		t.Fatal(err)
	}
	if n.String() != "1234567890123456789012345678901234567890" {
		t.Errorf("разобрано %s", n)
	}

	for _, bad := range []string{"", "abc", "12x", "-5", "1.5", "0x10", "１２"} {
		if _, err := ParseNumber("p", bad); err == nil {
			t.Errorf("ParseNumber(%q) должен вернуть ошибку", bad)
		} else {
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Field != "p" {
				t.Errorf("ParseNumber(%q): ожидалась ValidationError поля p, получено %v", bad, err)
			}
		}
	}
}

func TestValidateParams(t *testing.T) {
	p := big.NewInt(23)
	if err := ValidateParams(p, big.NewInt(5), big.NewInt(6), big.NewInt(15)); err != nil {
		t.Fatalf("корректная четвёрка отклонена: %v", err)
	}

	cases := []struct {
		name       string
		p, g, a, b int64
		field      string
	}{
		{"составное p", 15, 5, 6, 7, "p"},
		{"g меньше 2", 23, 1, 6, 15, "g"},
		{"g больше p-1", 23, 23, 6, 15, "g"},
		{"a меньше 2", 23, 5, 1, 15, "a"},
		{"a больше p-2", 23, 5, 22, 15, "a"},
		{"b меньше 2", 23, 5, 6, 0, "b"},
		{"b больше p-2", 23, 5, 6, 22, "b"},
	}
	for _, c := range cases {
		err := ValidateParams(big.NewInt(c.p), big.NewInt(c.g), big.NewInt(c.a), big.NewInt(c.b))
		if err == nil {
			t.Errorf("%s: нарушение не обнаружено", c.name)
			continue
		}
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("%s: ожидалась ValidationError, получено %v", c.name, err)
			continue
		}
		if ve.Field != c.field {
			t.Errorf("%s: нарушено поле %s, ожидалось %s", c.name, ve.Field, c.field)
		}
	}

	// граничные значения допускаются: g = p-1, a = b = p-2
	if err := ValidateParams(p, big.NewInt(22), big.NewInt(21), big.NewInt(21)); err != nil {
		t.Errorf("граничные значения отклонены: %v", err)
	}
}
