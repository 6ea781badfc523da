// Package session реализует пошаговую демонстрацию обмена ключами
// Диффи-Хеллмана: проверенная четвёрка параметров (p, g, a, b), лениво
// вычисляемые производные значения и курсор по девяти шагам повествования.
// Всё изменение состояния проходит через Advance/Retreat/Reset.
package session

import (
	"math/big"
	"sync"

	"github.com/MaiAphrodite/difie-hellman/algorithm"
)

// Шаги демонстрации. Курсор двигается строго по единице.
const (
	StepStart         = 0 // ничего не вычислено
	StepPublishParams = 1 // публикация p и g
	StepAliceSecret   = 2 // Алиса выбрала секрет a
	StepAlicePublic   = 3 // A = g^a mod p
	StepBobSecret     = 4 // Боб выбрал секрет b
	StepBobPublic     = 5 // B = g^b mod p
	StepExchange      = 6 // стороны обменялись A и B
	StepAliceShared   = 7 // Алиса: S = B^a mod p
	StepBobShared     = 8 // Боб: S = A^b mod p
	StepVerify        = 9 // проверка совпадения секретов
)

// Границы поиска простого для демонстрационной рандомизации.
var (
	DemoPrimeMin = big.NewInt(401)
	DemoPrimeMax = big.NewInt(2000)
)

var stepTitles = [StepVerify + 1]string{
	"Параметры готовы",
	"Алиса и Боб публикуют p и g",
	"Алиса выбирает секрет a",
	"Алиса вычисляет A = g^a mod p и отправляет его Бобу",
	"Боб выбирает секрет b",
	"Боб вычисляет B = g^b mod p и отправляет его Алисе",
	"A и B переданы по открытому каналу",
	"Алиса вычисляет общий секрет S = B^a mod p",
	"Боб вычисляет общий секрет S = A^b mod p",
	"Секреты совпали: обмен завершён",
}

// StepTitle возвращает заголовок шага для слоя отображения.
func StepTitle(step int) string {
	if step < 0 || step >= len(stepTitles) {
		return ""
	}
	return stepTitles[step]
}

// Params — четвёрка параметров протокола. После создания сессии она
// не меняется; новые параметры означают новую серию вычислений.
type Params struct {
	P *big.Int
	G *big.Int
	A *big.Int
	B *big.Int
}

// Session владеет четвёркой параметров, производными значениями и курсором.
// Производное значение nil означает "ещё неизвестно": ноль и отсутствие
// значения не смешиваются.
type Session struct {
	mu     sync.Mutex
	params Params

	alicePublic *big.Int // A = g^a mod p
	bobPublic   *big.Int // B = g^b mod p
	aliceShared *big.Int // B^a mod p
	bobShared   *big.Int // A^b mod p

	step     int
	auto     *autoAdvancer
	observer func(Snapshot)
}

// Snapshot — то, что отдаётся слою отображения: курсор, значения в
// десятичной записи (пустая строка — значение ещё неизвестно) и флаги.
type Snapshot struct {
	Step        int
	Title       string
	P, G, A, B  string
	AlicePublic string
	BobPublic   string
	AliceShared string
	BobShared   string
	Verified    bool
	AutoActive  bool
}

// New создаёт сессию из уже разобранных чисел. Четвёрка проверяется
// до любых вычислений.
func New(p, g, a, b *big.Int) (*Session, error) {
	if err := algorithm.ValidateParams(p, g, a, b); err != nil {
		return nil, err
	}
	return &Session{params: Params{P: p, G: g, A: a, B: b}}, nil
}

// NewFromText создаёт сессию из четырёх десятичных строк.
func NewFromText(p, g, a, b string) (*Session, error) {
	pn, err := algorithm.ParseNumber("p", p)
	if err != nil {
		return nil, err
	}
	gn, err := algorithm.ParseNumber("g", g)
	if err != nil {
		return nil, err
	}
	an, err := algorithm.ParseNumber("a", a)
	if err != nil {
		return nil, err
	}
	bn, err := algorithm.ParseNumber("b", b)
	if err != nil {
		return nil, err
	}
	return New(pn, gn, an, bn)
}

// NewRandom подбирает все четыре параметра: простое p в демонстрационном
// диапазоне, генератор g и случайные секреты a, b.
func NewRandom() (*Session, error) {
	p, err := algorithm.RandomPrimeInRange(DemoPrimeMin, DemoPrimeMax)
	if err != nil {
		return nil, err
	}
	g, err := algorithm.FindGenerator(p)
	if err != nil {
		return nil, err
	}
	a, b, err := randomSecrets(p)
	if err != nil {
		return nil, err
	}
	return New(p, g, a, b)
}

func randomSecrets(p *big.Int) (*big.Int, *big.Int, error) {
	lo := big.NewInt(2)
	hi := new(big.Int).Sub(p, big.NewInt(2))
	a, err := algorithm.UniformInRange(lo, hi)
	if err != nil {
		return nil, nil, err
	}
	b, err := algorithm.UniformInRange(lo, hi)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// Params возвращает копию текущей четвёрки.
func (s *Session) Params() Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

// SetObserver задаёт функцию, которой сообщается каждый успешный переход
// состояния, в том числе переходы автопроигрывания. Вызывается вне
// блокировки сессии; nil отключает уведомления.
func (s *Session) SetObserver(fn func(Snapshot)) {
	s.mu.Lock()
	s.observer = fn
	s.mu.Unlock()
}

// notifyLocked снимает снимок под блокировкой и возвращает замыкание,
// которое нужно вызвать уже после её освобождения.
func (s *Session) notifyLocked() func() {
	if s.observer == nil {
		return func() {}
	}
	fn := s.observer
	snap := s.snapshotLocked()
	return func() { fn(snap) }
}

// SetParams заменяет четвёрку на новую проверенную и сбрасывает сессию:
// изменённые входные данные обесценивают все вычисленные значения.
func (s *Session) SetParams(p, g, a, b *big.Int) error {
	if err := algorithm.ValidateParams(p, g, a, b); err != nil {
		return err
	}
	s.mu.Lock()
	if s.auto != nil {
		s.mu.Unlock()
		return errAutoActive
	}
	s.params = Params{P: p, G: g, A: a, B: b}
	s.resetLocked()
	notify := s.notifyLocked()
	s.mu.Unlock()
	notify()
	return nil
}

// RandomizeSecrets выбирает новые случайные a и b в [2, p-2] при
// неизменных p и g. Сессия сбрасывается.
func (s *Session) RandomizeSecrets() error {
	s.mu.Lock()
	if s.auto != nil {
		s.mu.Unlock()
		return errAutoActive
	}
	if s.params.P == nil || !algorithm.IsProbablePrime(s.params.P) {
		s.mu.Unlock()
		return &algorithm.ValidationError{Field: "p", Reason: "модуль p должен быть простым числом"}
	}
	a, b, err := randomSecrets(s.params.P)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.params.A = a
	s.params.B = b
	s.resetLocked()
	notify := s.notifyLocked()
	s.mu.Unlock()
	notify()
	return nil
}

// Advance продвигает курсор на один шаг. Перед движением четвёрка
// проверяется заново; на шаге 9 вызов ничего не делает. Производные
// значения вычисляются лениво при первом входе в свой шаг и дальше
// переиспользуются.
func (s *Session) Advance() error {
	s.mu.Lock()
	if s.auto != nil {
		s.mu.Unlock()
		return errAutoActive
	}
	err := s.advanceLocked()
	notify := func() {}
	if err == nil {
		notify = s.notifyLocked()
	}
	s.mu.Unlock()
	notify()
	return err
}

func (s *Session) advanceLocked() error {
	if err := algorithm.ValidateParams(s.params.P, s.params.G, s.params.A, s.params.B); err != nil {
		return err
	}
	if s.step >= StepVerify {
		return nil
	}
	s.step++

	switch s.step {
	case StepAlicePublic:
		if s.alicePublic == nil {
			s.alicePublic = algorithm.PublicValue(s.params.G, s.params.A, s.params.P)
		}
	case StepBobPublic:
		if s.bobPublic == nil {
			s.bobPublic = algorithm.PublicValue(s.params.G, s.params.B, s.params.P)
		}
	case StepAliceShared:
		// страховка: B обязан существовать до вычисления секрета Алисы
		if s.bobPublic == nil {
			s.bobPublic = algorithm.PublicValue(s.params.G, s.params.B, s.params.P)
		}
		if s.aliceShared == nil {
			s.aliceShared = algorithm.SharedSecret(s.bobPublic, s.params.A, s.params.P)
		}
	case StepBobShared:
		if s.alicePublic == nil {
			s.alicePublic = algorithm.PublicValue(s.params.G, s.params.A, s.params.P)
		}
		if s.bobShared == nil {
			s.bobShared = algorithm.SharedSecret(s.alicePublic, s.params.B, s.params.P)
		}
	}
	return nil
}

// Retreat отступает на один шаг. Вычисленные значения не стираются:
// повторное движение вперёд использует их без пересчёта.
func (s *Session) Retreat() error {
	s.mu.Lock()
	if s.auto != nil {
		s.mu.Unlock()
		return errAutoActive
	}
	if s.step > StepStart {
		s.step--
	}
	notify := s.notifyLocked()
	s.mu.Unlock()
	notify()
	return nil
}

// Reset возвращает курсор на 0 и забывает все производные значения.
// Четвёрка параметров сохраняется.
func (s *Session) Reset() error {
	s.mu.Lock()
	if s.auto != nil {
		s.mu.Unlock()
		return errAutoActive
	}
	s.resetLocked()
	notify := s.notifyLocked()
	s.mu.Unlock()
	notify()
	return nil
}

func (s *Session) resetLocked() {
	s.step = StepStart
	s.alicePublic = nil
	s.bobPublic = nil
	s.aliceShared = nil
	s.bobShared = nil
}

// Step возвращает текущее положение курсора.
func (s *Session) Step() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// Snapshot собирает состояние сессии для слоя отображения.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		Step:        s.step,
		Title:       StepTitle(s.step),
		P:           s.params.P.String(),
		G:           s.params.G.String(),
		A:           s.params.A.String(),
		B:           s.params.B.String(),
		AlicePublic: decimalOrEmpty(s.alicePublic),
		BobPublic:   decimalOrEmpty(s.bobPublic),
		AliceShared: decimalOrEmpty(s.aliceShared),
		BobShared:   decimalOrEmpty(s.bobShared),
		AutoActive:  s.auto != nil,
	}
	if s.step == StepVerify && s.aliceShared != nil && s.bobShared != nil {
		snap.Verified = s.aliceShared.Cmp(s.bobShared) == 0
	}
	return snap
}

func decimalOrEmpty(v *big.Int) string {
	if v == nil {
		return ""
	}
	return v.String()
}
