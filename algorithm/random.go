package algorithm

import (
	"crypto/rand"
	"math/big"
)

// Равномерное случайное число в [0, bound) методом отбраковки: читаем
// ceil(bitlen/8) байт из криптографического источника, маскируем лишние
// старшие биты и перечитываем, пока значение не попадёт в диапазон.
// Маскирование убирает смещение, которое дал бы взятие по модулю.
// При bound <= 0 возвращается 0 без обращения к источнику.
func UniformBelow(bound *big.Int) (*big.Int, error) {
	if bound.Sign() <= 0 {
		return big.NewInt(0), nil
	}

	bits := bound.BitLen()
	nbytes := (bits + 7) / 8
	excess := uint(nbytes*8 - bits)
	buf := make([]byte, nbytes)

	for {
		if _, err := rand.Read(buf); err != nil {
			return nil, err
		}
		buf[0] &= byte(0xff >> excess)
		v := new(big.Int).SetBytes(buf)
		// в среднем меньше двух чтений на вызов
		if v.Cmp(bound) < 0 {
			return v, nil
		}
	}
}

// Равномерное случайное число в [min, max] включительно.
// Перепутанные границы меняются местами.
func UniformInRange(min, max *big.Int) (*big.Int, error) {
	lo := new(big.Int).Set(min)
	hi := new(big.Int).Set(max)
	if lo.Cmp(hi) > 0 {
		lo, hi = hi, lo
	}

	width := new(big.Int).Sub(hi, lo)
	width.Add(width, one)

	v, err := UniformBelow(width)
	if err != nil {
		return nil, err
	}
	return v.Add(v, lo), nil
}
