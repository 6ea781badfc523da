package session

import (
	"errors"
	"math/big"
	"testing"

	"github.com/MaiAphrodite/difie-hellman/algorithm"
)

func newDemoSession(t *testing.T) *Session {
	t.Helper()
	s, err := New(big.NewInt(23), big.NewInt(5), big.NewInt(6), big.NewInt(15))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// Сценарий из учебника: p=23, g=5, a=6, b=15 -> A=8, B=19, S=2.
func TestScenario23(t *testing.T) {
	s := newDemoSession(t)

	// до своих шагов значения неизвестны
	snap := s.Snapshot()
	if snap.Step != StepStart {
		t.Fatalf("новая сессия на шаге %d", snap.Step)
	}
	if snap.AlicePublic != "" || snap.BobPublic != "" || snap.AliceShared != "" || snap.BobShared != "" {
		t.Fatal("производные значения видны до вычисления")
	}

	expectAfter := []struct {
		step                   int
		aPub, bPub, aSh, bSh string
	}{
		{1, "", "", "", ""},
		{2, "", "", "", ""},
		{3, "8", "", "", ""},
		{4, "8", "", "", ""},
		{5, "8", "19", "", ""},
		{6, "8", "19", "", ""},
		{7, "8", "19", "2", ""},
		{8, "8", "19", "2", "2"},
		{9, "8", "19", "2", "2"},
	}
	for _, want := range expectAfter {
		if err := s.Advance(); err != nil {
			t.Fatal(err)
		}
		snap := s.Snapshot()
		if snap.Step != want.step {
			t.Fatalf("курсор %d, ожидался %d", snap.Step, want.step)
		}
		if snap.AlicePublic != want.aPub || snap.BobPublic != want.bPub ||
			snap.AliceShared != want.aSh || snap.BobShared != want.bSh {
			t.Fatalf("шаг %d: значения A=%q B=%q Sa=%q Sb=%q, ожидалось A=%q B=%q Sa=%q Sb=%q",
				want.step, snap.AlicePublic, snap.BobPublic, snap.AliceShared, snap.BobShared,
				want.aPub, want.bPub, want.aSh, want.bSh)
		}
	}

	snap = s.Snapshot()
	if !snap.Verified {
		t.Fatal("на шаге 9 секреты должны совпасть")
	}

	// Advance на шаге 9 ничего не делает
	if err := s.Advance(); err != nil {
		t.Fatal(err)
	}
	if s.Step() != StepVerify {
		t.Fatal("Advance на шаге 9 сдвинул курсор")
	}
}

func TestCompositeModulusRejected(t *testing.T) {
	_, err := New(big.NewInt(15), big.NewInt(5), big.NewInt(6), big.NewInt(7))
	if err == nil {
		t.Fatal("составное p=15 должно быть отклонено")
	}
	var ve *algorithm.ValidationError
	if !errors.As(err, &ve) || ve.Field != "p" {
		t.Fatalf("ожидалась ValidationError поля p, получено %v", err)
	}
}

func TestNewFromText(t *testing.T) {
	s, err := NewFromText("23", "5", "6", "15")
	if err != nil {
		t.Fatal(err)
	}
	if s.Snapshot().P != "23" {
		t.Fatal("параметры разобраны неверно")
	}

	if _, err := NewFromText("23", "5", "six", "15"); err == nil {
		t.Fatal("нечисловой текст должен быть отклонён до арифметики")
	}
}

// Retreat не стирает вычисленное; повторный проход вперёд даёт те же значения.
func TestRetreatKeepsMemoizedValues(t *testing.T) {
	s := newDemoSession(t)
	for i := 0; i < 9; i++ {
		if err := s.Advance(); err != nil {
			t.Fatal(err)
		}
	}
	first := s.Snapshot()

	for i := 0; i < 4; i++ {
		if err := s.Retreat(); err != nil {
			t.Fatal(err)
		}
	}
	mid := s.Snapshot()
	if mid.Step != 5 {
		t.Fatalf("после четырёх отступлений курсор %d", mid.Step)
	}
	if mid.AliceShared != first.AliceShared || mid.BobShared != first.BobShared {
		t.Fatal("отступление стёрло вычисленные значения")
	}

	for i := 0; i < 4; i++ {
		if err := s.Advance(); err != nil {
			t.Fatal(err)
		}
	}
	again := s.Snapshot()
	if again != first {
		t.Fatalf("повторный проход изменил состояние: %+v != %+v", again, first)
	}
}

func TestRetreatAtStartIsNoop(t *testing.T) {
	s := newDemoSession(t)
	if err := s.Retreat(); err != nil {
		t.Fatal(err)
	}
	if s.Step() != StepStart {
		t.Fatal("Retreat на шаге 0 сдвинул курсор")
	}
}

func TestReset(t *testing.T) {
	s := newDemoSession(t)
	for i := 0; i < 9; i++ {
		if err := s.Advance(); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Reset(); err != nil {
		t.Fatal(err)
	}
	snap := s.Snapshot()
	if snap.Step != StepStart {
		t.Fatalf("после Reset курсор %d", snap.Step)
	}
	if snap.AlicePublic != "" || snap.BobPublic != "" || snap.AliceShared != "" || snap.BobShared != "" {
		t.Fatal("после Reset производные значения должны быть неизвестны")
	}
	// четвёрка сохраняется
	if snap.P != "23" || snap.G != "5" || snap.A != "6" || snap.B != "15" {
		t.Fatal("Reset изменил параметры")
	}
}

func TestSetParamsInvalidatesDerivations(t *testing.T) {
	s := newDemoSession(t)
	for i := 0; i < 5; i++ {
		if err := s.Advance(); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.SetParams(big.NewInt(47), big.NewInt(5), big.NewInt(7), big.NewInt(11)); err != nil {
		t.Fatal(err)
	}
	snap := s.Snapshot()
	if snap.Step != StepStart || snap.AlicePublic != "" || snap.BobPublic != "" {
		t.Fatal("новые параметры должны обесценивать вычисленное")
	}
	if snap.P != "47" {
		t.Fatal("новая четвёрка не применилась")
	}

	if err := s.SetParams(big.NewInt(48), big.NewInt(5), big.NewInt(7), big.NewInt(11)); err == nil {
		t.Fatal("составной модуль принят")
	}
}

func TestRandomizeSecrets(t *testing.T) {
	s := newDemoSession(t)
	for i := 0; i < 3; i++ {
		if err := s.Advance(); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.RandomizeSecrets(); err != nil {
		t.Fatal(err)
	}
	snap := s.Snapshot()
	if snap.Step != StepStart || snap.AlicePublic != "" {
		t.Fatal("рандомизация секретов должна сбрасывать сессию")
	}
	if snap.P != "23" || snap.G != "5" {
		t.Fatal("рандомизация секретов не должна трогать p и g")
	}
	a, _ := new(big.Int).SetString(snap.A, 10)
	b, _ := new(big.Int).SetString(snap.B, 10)
	if a.Cmp(big.NewInt(2)) < 0 || a.Cmp(big.NewInt(21)) > 0 ||
		b.Cmp(big.NewInt(2)) < 0 || b.Cmp(big.NewInt(21)) > 0 {
		t.Fatalf("секреты a=%s b=%s вне [2, p-2]", snap.A, snap.B)
	}
}

func TestNewRandom(t *testing.T) {
	for i := 0; i < 5; i++ {
		s, err := NewRandom()
		if err != nil {
			t.Fatal(err)
		}
		params := s.Params()
		if params.P.Cmp(DemoPrimeMin) < 0 || params.P.Cmp(DemoPrimeMax) > 0 {
			t.Fatalf("p=%s вне демонстрационного диапазона", params.P)
		}
		if !algorithm.IsProbablePrime(params.P) {
			t.Fatalf("p=%s не простое", params.P)
		}
		// прогоняем весь обмен и проверяем совпадение секретов
		for j := 0; j < 9; j++ {
			if err := s.Advance(); err != nil {
				t.Fatal(err)
			}
		}
		snap := s.Snapshot()
		if !snap.Verified || snap.AliceShared != snap.BobShared {
			t.Fatalf("случайная сессия не сошлась: %+v", snap)
		}
	}
}

func TestObserverSeesEveryTransition(t *testing.T) {
	s, err := New(big.NewInt(23), big.NewInt(5), big.NewInt(6), big.NewInt(15))
	if err != nil {
		t.Fatal(err)
	}
	var seen []Snapshot
	s.SetObserver(func(snap Snapshot) {
		seen = append(seen, snap)
	})

	for i := 0; i < 9; i++ {
		if err := s.Advance(); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Retreat(); err != nil {
		t.Fatal(err)
	}
	if err := s.Reset(); err != nil {
		t.Fatal(err)
	}

	if len(seen) != 11 {
		t.Fatalf("наблюдатель получил %d снимков вместо 11", len(seen))
	}
	for i := 0; i < 9; i++ {
		if seen[i].Step != i+1 {
			t.Fatalf("снимок %d: шаг %d", i, seen[i].Step)
		}
	}
	if !seen[8].Verified {
		t.Fatal("снимок шага 9 должен быть с Verified")
	}
	if seen[9].Step != StepBobShared {
		t.Fatalf("после отступления ожидался шаг %d, получен %d", StepBobShared, seen[9].Step)
	}
	if seen[10].Step != StepStart || seen[10].AlicePublic != "" {
		t.Fatalf("после сброса ожидался пустой шаг 0: %+v", seen[10])
	}
}
