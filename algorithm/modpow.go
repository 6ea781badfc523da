package algorithm

import "math/big"

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Бинарное возведение в степень по модулю: base^exponent mod modulus.
// Биты экспоненты просматриваются от младшего к старшему, база заранее
// приводится к диапазону [0, modulus), поэтому отрицательная или слишком
// большая база тоже обрабатывается корректно. При modulus == 1 результат 0.
func ModPow(base, exponent, modulus *big.Int) *big.Int {
	if modulus.Cmp(one) == 0 {
		return big.NewInt(0)
	}

	result := big.NewInt(1)
	b := new(big.Int).Mod(base, modulus)
	e := new(big.Int).Set(exponent)

	for e.Sign() > 0 {
		if e.Bit(0) == 1 {
			result.Mul(result, b)
			result.Mod(result, modulus)
		}
		b.Mul(b, b)
		b.Mod(b, modulus)
		e.Rsh(e, 1)
	}
	return result
}
