package algorithm

import (
	"math/big"
	"testing"
)

func TestIsProbablePrimeKnownValues(t *testing.T) {
	primes := []string{
		"2", "3", "5", "7", "11", "13", "17", "19", "23", "29", "31", "37",
		"41", "401", "761", "1999",
		"2147483647",          // 2^31 - 1
		"67280421310721",      // делитель числа Ферма F_6
		"2305843009213693951", // 2^61 - 1
		"18446744073709551557", // наибольшее простое меньше 2^64
	}
	for _, s := range primes {
		if !IsProbablePrime(bi(s)) {
			t.Errorf("IsProbablePrime(%s) = false, ожидалось простое", s)
		}
	}

	composites := []string{
		"0", "1", "4", "9", "15", "25", "27", "33", "39", "49",
		"561", "1105", "1729", "2465", // числа Кармайкла
		"2047",       // 23 * 89, псевдопростое по основанию 2
		"3215031751", // сильное псевдопростое по основаниям 2, 3, 5, 7
		"4294967297", // F_5 = 641 * 6700417
		"18446744073709551615", // 2^64 - 1
	}
	for _, s := range composites {
		if IsProbablePrime(bi(s)) {
			t.Errorf("IsProbablePrime(%s) = true, ожидалось составное", s)
		}
	}
}

func TestRandomPrimeInRange(t *testing.T) {
	lo := big.NewInt(401)
	hi := big.NewInt(2000)
	for i := 0; i < 50; i++ {
		p, err := RandomPrimeInRange(lo, hi)
		if err != nil {
			t.Fatal(err)
		}
		if p.Cmp(lo) < 0 || p.Cmp(hi) > 0 {
			t.Fatalf("простое %s вне диапазона [401, 2000]", p)
		}
		if p.Bit(0) == 0 {
			t.Fatalf("ожидалось нечётное простое, получено %s", p)
		}
		if !IsProbablePrime(p) {
			t.Fatalf("RandomPrimeInRange вернул составное %s", p)
		}
	}
}

func TestRandomPrimeInRangeSwappedBounds(t *testing.T) {
	p, err := RandomPrimeInRange(big.NewInt(2000), big.NewInt(401))
	if err != nil {
		t.Fatal(err)
	}
	if p.Cmp(big.NewInt(401)) < 0 || p.Cmp(big.NewInt(2000)) > 0 {
		t.Fatalf("простое %s вне диапазона при перепутанных границах", p)
	}
}

func TestRandomPrimeInRangeDegenerate(t *testing.T) {
	// в вырожденном диапазоне срабатывает запасная константа
	p, err := RandomPrimeInRange(big.NewInt(0), big.NewInt(1))
	if err != nil {
		t.Fatal(err)
	}
	if !IsProbablePrime(p) {
		t.Fatalf("запасное значение %s не простое", p)
	}
}
