package algorithm

import "math/big"

// Малые простые для пробных делений перед тестом Миллера-Рабина.
var smallPrimes = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// Фиксированный набор свидетелей. Для n < 2^64 такой состав делает тест
// детерминированным (Jaeschke/Sinclair); для больших n ответ true означает
// лишь "вероятно простое".
var millerRabinWitnesses = []int64{2, 3, 5, 7, 11, 13, 17}

// Предел случайных кандидатов в RandomPrimeInRange до перехода
// к полному перебору диапазона.
const maxRandomPrimeAttempts = 4096

// IsProbablePrime — тест Миллера-Рабина по фиксированным свидетелям
// с предварительными пробными делениями.
func IsProbablePrime(n *big.Int) bool {
	if n.Cmp(two) < 0 {
		return false
	}

	for _, sp := range smallPrimes {
		p := big.NewInt(sp)
		if n.Cmp(p) == 0 {
			return true
		}
		if new(big.Int).Mod(n, p).Sign() == 0 {
			return false
		}
	}

	// n - 1 = d * 2^s, d нечётное
	nMinus1 := new(big.Int).Sub(n, one)
	d := new(big.Int).Set(nMinus1)
	s := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}

	for _, w := range millerRabinWitnesses {
		witness := big.NewInt(w)
		if new(big.Int).Mod(witness, n).Sign() == 0 {
			continue
		}
		x := ModPow(witness, d, n)
		if x.Cmp(one) == 0 || x.Cmp(nMinus1) == 0 {
			continue
		}
		composite := true
		for i := 0; i < s-1; i++ {
			x.Mul(x, x)
			x.Mod(x, n)
			if x.Cmp(nMinus1) == 0 {
				composite = false
				break
			}
		}
		if composite {
			return false
		}
	}
	return true
}

// RandomPrimeInRange ищет случайное простое в [min, max]. Границы
// нормализуются: минимум 5, обе нечётные, при необходимости меняются
// местами. Сканирование идёт от случайной нечётной стартовой точки с шагом 2
// и заворачивается на начало диапазона; если бюджет случайного поиска
// исчерпан, включается полный перебор по возрастанию. Фиксированная
// константа в конце гарантирует завершение на вырожденных диапазонах.
func RandomPrimeInRange(min, max *big.Int) (*big.Int, error) {
	five := big.NewInt(5)

	lo := new(big.Int).Set(min)
	hi := new(big.Int).Set(max)
	if lo.Cmp(hi) > 0 {
		lo, hi = hi, lo
	}
	if lo.Cmp(five) < 0 {
		lo.Set(five)
	}
	if hi.Cmp(five) < 0 {
		hi.Set(five)
	}
	if lo.Bit(0) == 0 {
		lo.Add(lo, one)
	}
	if hi.Bit(0) == 0 {
		hi.Sub(hi, one)
	}
	if lo.Cmp(hi) > 0 {
		return five, nil
	}

	// количество нечётных чисел в диапазоне
	oddCount := new(big.Int).Sub(hi, lo)
	oddCount.Rsh(oddCount, 1)
	oddCount.Add(oddCount, one)

	offset, err := UniformBelow(oddCount)
	if err != nil {
		return nil, err
	}
	candidate := new(big.Int).Lsh(offset, 1)
	candidate.Add(candidate, lo)

	attempts := new(big.Int).Set(oddCount)
	if attempts.Cmp(big.NewInt(maxRandomPrimeAttempts)) > 0 {
		attempts.SetInt64(maxRandomPrimeAttempts)
	}
	for i := big.NewInt(0); i.Cmp(attempts) < 0; i.Add(i, one) {
		if IsProbablePrime(candidate) {
			return candidate, nil
		}
		candidate.Add(candidate, two)
		if candidate.Cmp(hi) > 0 {
			candidate.Set(lo)
		}
	}

	// полный перебор, если случайный поиск не нашёл простое
	for candidate.Set(lo); candidate.Cmp(hi) <= 0; candidate.Add(candidate, two) {
		if IsProbablePrime(candidate) {
			return new(big.Int).Set(candidate), nil
		}
	}

	return five, nil
}
