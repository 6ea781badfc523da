package session

import (
	"errors"
	"time"

	"github.com/MaiAphrodite/difie-hellman/algorithm"
)

// Интервал автопроигрывания по умолчанию.
const DefaultAutoInterval = 2 * time.Second

// Пока автопроигрывание владеет курсором, ручное управление отключено:
// два источника переходов не должны чередоваться.
var errAutoActive = errors.New("автопроигрывание активно, сначала остановите его")

// autoAdvancer — периодическая задача, продвигающая сессию до шага 9.
type autoAdvancer struct {
	stop chan struct{}
	done chan struct{}
}

// StartAuto запускает автопроигрывание с заданным интервалом (при
// неположительном интервале берётся DefaultAutoInterval). Таймер сам
// останавливается на шаге 9 или при ошибке валидации.
func (s *Session) StartAuto(interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultAutoInterval
	}
	s.mu.Lock()
	if s.auto != nil {
		s.mu.Unlock()
		return errors.New("автопроигрывание уже запущено")
	}
	// проверяем четвёрку сразу, чтобы таймер не крутился вхолостую
	if err := algorithm.ValidateParams(s.params.P, s.params.G, s.params.A, s.params.B); err != nil {
		s.mu.Unlock()
		return err
	}
	a := &autoAdvancer{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	s.auto = a
	s.mu.Unlock()

	go s.runAuto(a, interval)
	return nil
}

func (s *Session) runAuto(a *autoAdvancer, interval time.Duration) {
	defer close(a.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-a.stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			if s.auto != a {
				// нас уже отменили
				s.mu.Unlock()
				return
			}
			err := s.advanceLocked()
			finished := err != nil || s.step >= StepVerify
			if finished {
				s.auto = nil
			}
			notify := func() {}
			if err == nil {
				notify = s.notifyLocked()
			}
			s.mu.Unlock()
			notify()
			if finished {
				return
			}
		}
	}
}

// StopAuto останавливает автопроигрывание и дожидается завершения его
// горутины: после возврата ни одного перехода от таймера больше не будет,
// сессия пригодна для ручных Advance/Retreat.
func (s *Session) StopAuto() {
	s.mu.Lock()
	a := s.auto
	s.auto = nil
	s.mu.Unlock()
	if a == nil {
		return
	}
	close(a.stop)
	<-a.done
}

// AutoActive сообщает, владеет ли курсором автопроигрывание.
func (s *Session) AutoActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.auto != nil
}
