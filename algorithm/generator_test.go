package algorithm

import (
	"math/big"
	"testing"
)

func TestDistinctPrimeFactors(t *testing.T) {
	cases := []struct {
		n    string
		want []string
	}{
		{"2", []string{"2"}},
		{"12", []string{"2", "3"}},
		{"22", []string{"2", "11"}},
		{"96", []string{"2", "3"}},
		{"97", []string{"97"}},
		{"360", []string{"2", "3", "5"}},
		{"760", []string{"2", "5", "19"}},
		{"1998", []string{"2", "3", "37"}},
	}
	for _, c := range cases {
		got := DistinctPrimeFactors(bi(c.n))
		if len(got) != len(c.want) {
			t.Errorf("DistinctPrimeFactors(%s) = %v, want %v", c.n, got, c.want)
			continue
		}
		for i := range got {
			if got[i].String() != c.want[i] {
				t.Errorf("DistinctPrimeFactors(%s)[%d] = %s, want %s", c.n, i, got[i], c.want[i])
			}
		}
	}
}

// Порядок найденного генератора должен равняться p-1: ни одна степень
// phi/q не обращается в единицу.
func TestFindGeneratorOrder(t *testing.T) {
	for _, ps := range []string{"23", "101", "761", "1009", "1999"} {
		p := bi(ps)
		g, err := FindGenerator(p)
		if err != nil {
			t.Fatal(err)
		}
		phi := new(big.Int).Sub(p, one)
		if g.Cmp(two) < 0 || g.Cmp(new(big.Int).Sub(p, two)) > 0 {
			t.Fatalf("генератор %s для p=%s вне диапазона [2, p-2]", g, ps)
		}
		for _, q := range DistinctPrimeFactors(phi) {
			exp := new(big.Int).Div(phi, q)
			if ModPow(g, exp, p).Cmp(one) == 0 {
				t.Fatalf("g=%s для p=%s лежит в собственной подгруппе (q=%s)", g, ps, q)
			}
		}
	}
}

// Для p=23 первообразные корни известны: {5, 7, 10, 11, 14, 15, 17, 19, 20, 21}.
func TestFindGeneratorKnownSet(t *testing.T) {
	roots := map[string]bool{
		"5": true, "7": true, "10": true, "11": true, "14": true,
		"15": true, "17": true, "19": true, "20": true, "21": true,
	}
	for i := 0; i < 20; i++ {
		g, err := FindGenerator(big.NewInt(23))
		if err != nil {
			t.Fatal(err)
		}
		if !roots[g.String()] {
			t.Fatalf("FindGenerator(23) = %s — не первообразный корень", g)
		}
	}
}

// Для p <= 3 диапазон кандидатов [2, p-2] пуст; возвращается страховочная
// двойка, а не мусор из вырожденной выборки.
func TestFindGeneratorDegenerateModulus(t *testing.T) {
	for _, ps := range []string{"2", "3"} {
		g, err := FindGenerator(bi(ps))
		if err != nil {
			t.Fatal(err)
		}
		if g.String() != "2" {
			t.Errorf("FindGenerator(%s) = %s, want 2", ps, g)
		}
	}
}
