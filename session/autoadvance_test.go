package session

import (
	"sync"
	"testing"
	"time"
)

func TestAutoAdvanceRunsToCompletion(t *testing.T) {
	s := newDemoSession(t)
	if err := s.StartAuto(time.Millisecond); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(2 * time.Second)
	for s.Step() < StepVerify {
		select {
		case <-deadline:
			t.Fatalf("автопроигрывание застряло на шаге %d", s.Step())
		case <-time.After(5 * time.Millisecond):
		}
	}

	// таймер останавливает себя сам на шаге 9
	for i := 0; i < 100 && s.AutoActive(); i++ {
		time.Sleep(time.Millisecond)
	}
	if s.AutoActive() {
		t.Fatal("автопроигрывание не остановилось после шага 9")
	}
	snap := s.Snapshot()
	if !snap.Verified {
		t.Fatal("после автопроигрывания секреты должны совпасть")
	}
}

func TestManualControlsBlockedWhileAutoActive(t *testing.T) {
	s := newDemoSession(t)
	if err := s.StartAuto(time.Hour); err != nil { // тикнуть не успеет
		t.Fatal(err)
	}
	defer s.StopAuto()

	if err := s.Advance(); err == nil {
		t.Error("Advance при активном автопроигрывании должен отклоняться")
	}
	if err := s.Retreat(); err == nil {
		t.Error("Retreat при активном автопроигрывании должен отклоняться")
	}
	if err := s.Reset(); err == nil {
		t.Error("Reset при активном автопроигрывании должен отклоняться")
	}
	if err := s.StartAuto(time.Hour); err == nil {
		t.Error("повторный StartAuto должен отклоняться")
	}
}

func TestStopAutoIsSynchronousAndResumable(t *testing.T) {
	s := newDemoSession(t)
	if err := s.StartAuto(time.Millisecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)
	s.StopAuto()

	if s.AutoActive() {
		t.Fatal("после StopAuto флаг активности должен быть снят")
	}

	// после остановки ни одного перехода от таймера
	before := s.Step()
	time.Sleep(20 * time.Millisecond)
	if got := s.Step(); got != before {
		t.Fatalf("курсор сдвинулся с %d на %d после StopAuto", before, got)
	}

	// ручное управление снова работает
	if before < StepVerify {
		if err := s.Advance(); err != nil {
			t.Fatal(err)
		}
		if s.Step() != before+1 {
			t.Fatal("ручной Advance после StopAuto не сработал")
		}
	}
}

func TestStopAutoWithoutStart(t *testing.T) {
	s := newDemoSession(t)
	s.StopAuto() // не должно ни паниковать, ни блокироваться
	if s.Step() != StepStart {
		t.Fatal("StopAuto без StartAuto изменил состояние")
	}
}

func TestStartAutoDefaultInterval(t *testing.T) {
	s := newDemoSession(t)
	// неположительный интервал заменяется на DefaultAutoInterval
	if err := s.StartAuto(0); err != nil {
		t.Fatal(err)
	}
	if !s.AutoActive() {
		t.Fatal("автопроигрывание не запустилось")
	}
	s.StopAuto()
}

func TestObserverSeesAutoTransitions(t *testing.T) {
	s := newDemoSession(t)

	var mu sync.Mutex
	var steps []int
	s.SetObserver(func(snap Snapshot) {
		mu.Lock()
		steps = append(steps, snap.Step)
		mu.Unlock()
	})

	if err := s.StartAuto(time.Millisecond); err != nil {
		t.Fatal(err)
	}
	deadline := time.After(2 * time.Second)
	for s.AutoActive() {
		select {
		case <-deadline:
			t.Fatal("автопроигрывание не завершилось")
		case <-time.After(5 * time.Millisecond):
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if len(steps) != 9 {
		t.Fatalf("наблюдатель получил %d переходов вместо 9: %v", len(steps), steps)
	}
	for i, step := range steps {
		if step != i+1 {
			t.Fatalf("переход %d пришёл с шагом %d", i, step)
		}
	}
}
