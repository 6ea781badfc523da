package algorithm

import (
	"fmt"
	"math/big"
	"strings"
)

// ValidationError — локальная восстановимая ошибка проверки входных данных:
// либо текст не является числом, либо число нарушает ограничение диапазона.
// Field указывает, какое из полей p, g, a, b виновато.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ParseNumber разбирает десятичную запись неотрицательного целого
// произвольной длины. Нечисловое содержимое отклоняется здесь и не
// доходит до арифметики.
func ParseNumber(field, text string) (*big.Int, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, &ValidationError{Field: field, Reason: "пустое значение"}
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, &ValidationError{Field: field, Reason: "допустимы только десятичные цифры"}
		}
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, &ValidationError{Field: field, Reason: "не удалось разобрать число"}
	}
	return n, nil
}

// ValidateParams проверяет четвёрку параметров протокола: p простое,
// g в [2, p-1], a и b в [2, p-2]. Возвращается первое нарушение,
// у каждого ограничения своё сообщение.
func ValidateParams(p, g, a, b *big.Int) error {
	if p == nil || !IsProbablePrime(p) {
		return &ValidationError{Field: "p", Reason: "модуль p должен быть простым числом"}
	}
	pMinus1 := new(big.Int).Sub(p, one)
	pMinus2 := new(big.Int).Sub(p, two)
	if g == nil || g.Cmp(two) < 0 || g.Cmp(pMinus1) > 0 {
		return &ValidationError{Field: "g", Reason: "генератор g должен лежать в диапазоне [2, p-1]"}
	}
	if a == nil || a.Cmp(two) < 0 || a.Cmp(pMinus2) > 0 {
		return &ValidationError{Field: "a", Reason: "секрет a должен лежать в диапазоне [2, p-2]"}
	}
	if b == nil || b.Cmp(two) < 0 || b.Cmp(pMinus2) > 0 {
		return &ValidationError{Field: "b", Reason: "секрет b должен лежать в диапазоне [2, p-2]"}
	}
	return nil
}
