package editor

import "fmt"

// Key identifies a physical key independent of the presenter.
type Key int

const (
	KeyUnknown Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeySpace
	KeySlash
	KeyPeriod
	KeyBackspace
	KeyEnter
	KeyEscape
)

// Mod is a set of held modifier keys.
type Mod uint8

const (
	ModShift Mod = 1 << iota
	ModCtrl
	ModAlt
)

// ModNone means no modifier is held.
const ModNone Mod = 0

// wordModifiers turn backspace into delete-word.
const wordModifiers = ModShift | ModCtrl | ModAlt

// EventKind distinguishes key presses from a request to close the session.
type EventKind int

const (
	EventKey EventKind = iota
	EventQuit
)

// Event is a single input event delivered by a presenter.
type Event struct {
	Kind EventKind
	Key  Key
	Mod  Mod
	Name string // Presenter's name for the key, used in logs
}

// KeyDown builds a key press event.
func KeyDown(k Key, m Mod) Event {
	return Event{Kind: EventKey, Key: k, Mod: m}
}

// Quit builds a session close event.
func Quit() Event {
	return Event{Kind: EventQuit}
}

func (e Event) String() string {
	if e.Kind == EventQuit {
		return "quit"
	}
	if e.Name != "" {
		return e.Name
	}
	return fmt.Sprintf("key(%d)+mod(%d)", e.Key, e.Mod)
}

// Action is what an event does to the editor.
type Action int

const (
	ActionNone Action = iota
	ActionInsert
	ActionDeleteChar
	ActionDeleteWord
	ActionSubmit
	ActionCancel
)

var actionNames = map[Action]string{
	ActionNone:       "none",
	ActionInsert:     "insert",
	ActionDeleteChar: "delete-char",
	ActionDeleteWord: "delete-word",
	ActionSubmit:     "submit",
	ActionCancel:     "cancel",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// plainChars are produced only when no modifier is held.
var plainChars = func() map[Key]byte {
	m := map[Key]byte{
		KeySpace:  ' ',
		KeySlash:  '/',
		KeyPeriod: '.',
	}
	for k := KeyA; k <= KeyZ; k++ {
		m[k] = 'a' + byte(k-KeyA)
	}
	return m
}()

// modifiedChars are produced whatever modifiers are held.
var modifiedChars = map[Key]byte{
	KeySpace:  ' ',
	KeySlash:  '/',
	KeyPeriod: '.',
}

// anyModActions apply regardless of modifiers.
var anyModActions = map[Key]Action{
	KeyEnter:  ActionSubmit,
	KeyEscape: ActionCancel,
}

// Lookup maps an event onto an action and, for ActionInsert, the character
// to insert.
func Lookup(ev Event) (Action, byte) {
	if ev.Kind == EventQuit {
		return ActionCancel, 0
	}
	if a, ok := anyModActions[ev.Key]; ok {
		return a, 0
	}
	if ev.Key == KeyBackspace {
		switch {
		case ev.Mod&wordModifiers != 0:
			return ActionDeleteWord, 0
		case ev.Mod == ModNone:
			return ActionDeleteChar, 0
		}
		return ActionNone, 0
	}

	table := modifiedChars
	if ev.Mod == ModNone {
		table = plainChars
	}
	if c, ok := table[ev.Key]; ok {
		return ActionInsert, c
	}
	return ActionNone, 0
}

// KeyFromRune maps a typed rune onto the key that produces it. Upper case
// letters report the letter key with shift held. Runes with no key come back
// as KeyUnknown.
func KeyFromRune(r rune) (Key, Mod) {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a'), ModNone
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A'), ModShift
	case r == ' ':
		return KeySpace, ModNone
	case r == '/':
		return KeySlash, ModNone
	case r == '.':
		return KeyPeriod, ModNone
	}
	return KeyUnknown, ModNone
}

// RuneEvent builds the key press for a typed rune.
func RuneEvent(r rune) Event {
	k, m := KeyFromRune(r)
	ev := KeyDown(k, m)
	ev.Name = string(r)
	return ev
}
