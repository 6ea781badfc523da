package algorithm

import "math/big"

// Количество случайных кандидатов в FindGenerator до перехода
// к линейному перебору.
const maxGeneratorAttempts = 256

// DistinctPrimeFactors возвращает различные простые делители n,
// найденные пробными делениями: сначала двойка, дальше нечётные делители
// до sqrt(остатка); остаток больше единицы сам является простым делителем.
func DistinctPrimeFactors(n *big.Int) []*big.Int {
	var factors []*big.Int
	rest := new(big.Int).Set(n)

	if rest.Bit(0) == 0 {
		factors = append(factors, big.NewInt(2))
		for rest.Bit(0) == 0 {
			rest.Rsh(rest, 1)
		}
	}

	f := big.NewInt(3)
	sq := new(big.Int)
	for sq.Mul(f, f); sq.Cmp(rest) <= 0; sq.Mul(f, f) {
		if new(big.Int).Mod(rest, f).Sign() == 0 {
			factors = append(factors, new(big.Int).Set(f))
			for new(big.Int).Mod(rest, f).Sign() == 0 {
				rest.Div(rest, f)
			}
		}
		f.Add(f, two)
	}
	if rest.Cmp(one) > 0 {
		factors = append(factors, rest)
	}
	return factors
}

// Стандартная проверка порядка: candidate порождает всю группу тогда и
// только тогда, когда candidate^(phi/q) != 1 (mod p) для каждого простого
// делителя q числа phi = p - 1.
func isPrimitiveRoot(candidate, p, phi *big.Int, factors []*big.Int) bool {
	for _, q := range factors {
		exp := new(big.Int).Div(phi, q)
		if ModPow(candidate, exp, p).Cmp(one) == 0 {
			return false
		}
	}
	return true
}

// FindGenerator ищет первообразный корень по модулю простого p: сначала
// случайные кандидаты из [2, p-2], после исчерпания бюджета — линейный
// перебор того же диапазона. Возврат двойки в конце — страховка, для
// настоящего простого p до неё дело не доходит.
func FindGenerator(p *big.Int) (*big.Int, error) {
	// при p <= 3 группа вырождена и диапазон кандидатов пуст
	if p.Cmp(big.NewInt(3)) <= 0 {
		return big.NewInt(2), nil
	}

	phi := new(big.Int).Sub(p, one)
	factors := DistinctPrimeFactors(phi)

	lo := big.NewInt(2)
	hi := new(big.Int).Sub(p, two)

	for i := 0; i < maxGeneratorAttempts; i++ {
		candidate, err := UniformInRange(lo, hi)
		if err != nil {
			return nil, err
		}
		if isPrimitiveRoot(candidate, p, phi, factors) {
			return candidate, nil
		}
	}

	for candidate := new(big.Int).Set(lo); candidate.Cmp(hi) <= 0; candidate.Add(candidate, one) {
		if isPrimitiveRoot(candidate, p, phi, factors) {
			return candidate, nil
		}
	}

	return big.NewInt(2), nil
}
