package input

import (
	"log"
	"unicode"

	"github.com/eiannone/keyboard"
	"github.com/mohammedhamoda/neurorhythm/internal/game"
)

// Keymap maps keys to pads. Letters match in either case.
type Keymap map[rune]game.Symbol

func NewKeymap(keys []rune, pads []game.Symbol) Keymap {
	k := Keymap{}
	for i, r := range keys {
		if i >= len(pads) {
			break
		}
		k[unicode.ToLower(r)] = pads[i]
	}
	return k
}

func (k Keymap) Symbol(r rune) (game.Symbol, bool) {
	s, ok := k[unicode.ToLower(r)]
	return s, ok
}

type Event struct {
	Symbol game.Symbol
	Quit   bool
}

func (k Keymap) translate(ev keyboard.KeyEvent) (Event, bool) {
	if nil != ev.Err {
		log.Println("unable to read key", ev.Err)
		return Event{}, false
	}
	switch ev.Key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return Event{Quit: true}, true
	}
	if s, ok := k.Symbol(ev.Rune); ok {
		return Event{Symbol: s}, true
	}
	return Event{}, false
}

type Keyboard struct {
	Keymap Keymap
	keys   <-chan keyboard.KeyEvent
}

func (k *Keyboard) Open() error {
	keys, err := keyboard.GetKeys(128)
	if nil != err {
		return err
	}
	k.keys = keys
	return nil
}

func (k *Keyboard) Close() {
	if err := keyboard.Close(); nil != err {
		log.Println("unable to close keyboard", err)
	}
}

// Poll drains the keys that arrived since the last call
func (k *Keyboard) Poll() []Event {
	return drain(k.keys, k.Keymap)
}

func drain(keys <-chan keyboard.KeyEvent, km Keymap) []Event {
	var events []Event
	for n := len(keys); n > 0; n-- {
		if ev, ok := km.translate(<-keys); ok {
			events = append(events, ev)
		}
	}
	return events
}

// Wait drops any buffered keys, then blocks until a key is pressed
func (k *Keyboard) Wait() {
	for len(k.keys) > 0 {
		<-k.keys
	}
	<-k.keys
}
