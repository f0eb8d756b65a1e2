// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — экран просмотрщика. Update вызывается раз в тик ebiten.
type State interface {
	Enter()
	Update()
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine хранит стек экранов. Активен верхний; пауза кладётся
// поверх игры и снимается, не пересоздавая сессию.
type StateMachine struct {
	stack []State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// Current возвращает верхний экран или nil.
func (sm *StateMachine) Current() State {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

// Depth — число экранов в стеке.
func (sm *StateMachine) Depth() int { return len(sm.stack) }

// SetState заменяет весь стек одним экраном. Снятые экраны получают
// Exit сверху вниз, без повторного Enter.
func (sm *StateMachine) SetState(newState State) {
	for i := len(sm.stack) - 1; i >= 0; i-- {
		sm.stack[i].Exit()
	}
	sm.stack = sm.stack[:0]
	sm.Push(newState)
}

// Push кладёт экран поверх текущего. Нижний экран не получает Exit.
func (sm *StateMachine) Push(s State) {
	if s == nil {
		return
	}
	sm.stack = append(sm.stack, s)
	s.Enter()
}

// Pop снимает верхний экран; под ним снова вызывается Enter.
func (sm *StateMachine) Pop() {
	top := sm.Current()
	if top == nil {
		return
	}
	top.Exit()
	sm.stack = sm.stack[:len(sm.stack)-1]
	if next := sm.Current(); next != nil {
		next.Enter()
	}
}

func (sm *StateMachine) Update() {
	if s := sm.Current(); s != nil {
		s.Update()
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if s := sm.Current(); s != nil {
		s.Draw(screen)
	}
}
