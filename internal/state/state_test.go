package state

import (
	"reflect"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type recorder struct {
	name string
	log  *[]string
}

func (r *recorder) Enter() { *r.log = append(*r.log, r.name+":enter") }
func (r *recorder) Update() { *r.log = append(*r.log, r.name+":update") }
func (r *recorder) Draw(_ *ebiten.Image) {}
func (r *recorder) Exit() { *r.log = append(*r.log, r.name+":exit") }

func TestStateMachineStack(t *testing.T) {
	var log []string
	game := &recorder{name: "game", log: &log}
	pause := &recorder{name: "pause", log: &log}

	sm := NewStateMachine()
	sm.Update()
	sm.SetState(game)
	sm.Push(pause)
	sm.Update()
	if sm.Current() != pause || sm.Depth() != 2 {
		t.Fatalf("current %v depth %d", sm.Current(), sm.Depth())
	}
	sm.Pop()
	sm.Update()
	sm.Pop()
	sm.Pop()

	want := []string{
		"game:enter",
		"pause:enter", "pause:update",
		"pause:exit", "game:enter", "game:update",
		"game:exit",
	}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("calls %v, want %v", log, want)
	}
	if sm.Current() != nil || sm.Depth() != 0 {
		t.Errorf("stack not empty: depth %d", sm.Depth())
	}
}

func TestSetStateReplacesStack(t *testing.T) {
	var log []string
	a := &recorder{name: "a", log: &log}
	b := &recorder{name: "b", log: &log}
	c := &recorder{name: "c", log: &log}

	sm := NewStateMachine()
	sm.Push(a)
	sm.Push(b)
	log = nil
	sm.SetState(c)

	want := []string{"b:exit", "a:exit", "c:enter"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("calls %v, want %v", log, want)
	}
	if sm.Depth() != 1 || sm.Current() != c {
		t.Errorf("depth %d current %v", sm.Depth(), sm.Current())
	}
}
