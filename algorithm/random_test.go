package algorithm

import (
	"math/big"
	"testing"
)

func TestUniformBelowZero(t *testing.T) {
	v, err := UniformBelow(big.NewInt(0))
	if err != nil {
		t.Fatal(err)
	}
	if v.Sign() != 0 {
		t.Errorf("UniformBelow(0) = %s, want 0", v)
	}
}

func TestUniformBelowNeverExceedsBound(t *testing.T) {
	bounds := []string{"1", "2", "3", "10", "255", "256", "257", "65537", "18446744073709551616"}
	for _, bs := range bounds {
		bound := bi(bs)
		for i := 0; i < 200; i++ {
			v, err := UniformBelow(bound)
			if err != nil {
				t.Fatal(err)
			}
			if v.Sign() < 0 || v.Cmp(bound) >= 0 {
				t.Fatalf("UniformBelow(%s) вернул %s вне [0, bound)", bs, v)
			}
		}
	}
}

func TestUniformBelowOneIsAlwaysZero(t *testing.T) {
	for i := 0; i < 50; i++ {
		v, err := UniformBelow(one)
		if err != nil {
			t.Fatal(err)
		}
		if v.Sign() != 0 {
			t.Fatalf("UniformBelow(1) = %s, want 0", v)
		}
	}
}

func TestUniformInRange(t *testing.T) {
	lo := big.NewInt(2)
	hi := big.NewInt(21)
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		v, err := UniformInRange(lo, hi)
		if err != nil {
			t.Fatal(err)
		}
		if v.Cmp(lo) < 0 || v.Cmp(hi) > 0 {
			t.Fatalf("UniformInRange(2, 21) вернул %s вне диапазона", v)
		}
		seen[v.String()] = true
	}
	// при 500 попытках на 20 значений все они должны встретиться
	if len(seen) != 20 {
		t.Errorf("распределение покрыло %d значений из 20", len(seen))
	}
}

func TestUniformInRangeSwappedBounds(t *testing.T) {
	for i := 0; i < 100; i++ {
		v, err := UniformInRange(big.NewInt(10), big.NewInt(5))
		if err != nil {
			t.Fatal(err)
		}
		if v.Cmp(big.NewInt(5)) < 0 || v.Cmp(big.NewInt(10)) > 0 {
			t.Fatalf("перепутанные границы: %s вне [5, 10]", v)
		}
	}
}

func TestUniformInRangeSingleValue(t *testing.T) {
	v, err := UniformInRange(big.NewInt(7), big.NewInt(7))
	if err != nil {
		t.Fatal(err)
	}
	if v.Cmp(big.NewInt(7)) != 0 {
		t.Errorf("UniformInRange(7, 7) = %s, want 7", v)
	}
}
