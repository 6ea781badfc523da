package algorithm

import (
	"math/big"
	"testing"
)

func bi(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad test number: " + s)
	}
	return n
}

func TestModPow(t *testing.T) {
	cases := []struct {
		base, exp, mod, want string
	}{
		// классический пример из описания протокола: p=23, g=5, a=6, b=15
		{"5", "6", "23", "8"},
		{"5", "15", "23", "19"},
		{"19", "6", "23", "2"},
		{"8", "15", "23", "2"},
		{"2", "10", "1024", "0"},
		{"0", "0", "7", "1"},
		{"10", "0", "7", "1"},
		{"7", "5", "1", "0"}, // modulus == 1
		{"25", "3", "23", "8"}, // база приводится по модулю
		{"-2", "3", "5", "2"},  // отрицательная база нормализуется
		{"2", "64", "18446744073709551616", "0"},
		{"3", "100", "1000000007", "886041711"},
	}
	for _, c := range cases {
		got := ModPow(bi(c.base), bi(c.exp), bi(c.mod))
		if got.String() != c.want {
			t.Errorf("ModPow(%s, %s, %s) = %s, want %s", c.base, c.exp, c.mod, got, c.want)
		}
	}
}

func TestModPowDoesNotMutateArguments(t *testing.T) {
	base := bi("12345678901234567890")
	exp := bi("987654321")
	mod := bi("1000000007")
	ModPow(base, exp, mod)
	if base.String() != "12345678901234567890" || exp.String() != "987654321" || mod.String() != "1000000007" {
		t.Error("аргументы ModPow не должны изменяться")
	}
}

// Корректность Диффи-Хеллмана: (g^a)^b == (g^b)^a (mod p).
func TestModPowDHCorrectness(t *testing.T) {
	p := bi("2147483647") // простое Мерсенна 2^31-1
	g := bi("7")
	for i := 0; i < 20; i++ {
		a, err := UniformInRange(two, new(big.Int).Sub(p, two))
		if err != nil {
			t.Fatal(err)
		}
		b, err := UniformInRange(two, new(big.Int).Sub(p, two))
		if err != nil {
			t.Fatal(err)
		}
		left := ModPow(ModPow(g, a, p), b, p)
		right := ModPow(ModPow(g, b, p), a, p)
		if left.Cmp(right) != 0 {
			t.Fatalf("общие секреты разошлись: a=%s b=%s: %s != %s", a, b, left, right)
		}
	}
}
