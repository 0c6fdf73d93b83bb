// Package keys defines the logical key vocabulary used throughout ptk
// and the VT100 byte-level parser that produces it.
// The enumeration is grounded on peco's termbox-event shape (termbox_event.go,
// Modifier/KeyCode/Rune) and on internal/keyseq/keys.go's string<->key
// lookup tables, generalized from termbox's fixed key set to the full
// logical-key-plus-modifier vocabulary.
package keys

import "fmt"

// ID is a closed enumeration of logical keys, plus the Any passthrough for
// printable characters and a handful of synthetic events.
type ID int

const (
	Any ID = iota // printable character; KeyPress.Data holds the rune(s)

	Escape
	Enter
	Tab
	BackTab
	Backspace
	Delete
	Insert
	Home
	End
	PageUp
	PageDown

	Up
	Down
	Left
	Right

	ControlUp
	ControlDown
	ControlLeft
	ControlRight
	ShiftUp
	ShiftDown
	ShiftLeft
	ShiftRight

	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12

	// ControlA..ControlZ cover the C0 control-byte range 0x01-0x1A.
	ControlA
	ControlB
	ControlC
	ControlD
	ControlE
	ControlF
	ControlG
	ControlH
	ControlI // same byte as Tab (0x09)
	ControlJ
	ControlK
	ControlL
	ControlM // same byte as Enter (0x0D)
	ControlN
	ControlO
	ControlP
	ControlQ
	ControlR
	ControlS
	ControlT
	ControlU
	ControlV
	ControlW
	ControlX
	ControlY
	ControlZ

	// Synthetic / composite events.
	BracketedPaste
	Vt100MouseEvent
	WindowsMouseEvent
	CPRResponse
	SIGINT
	Ignore
)

var names = map[ID]string{
	Any:               "Any",
	Escape:            "Escape",
	Enter:             "Enter",
	Tab:               "Tab",
	BackTab:           "BackTab",
	Backspace:         "Backspace",
	Delete:            "Delete",
	Insert:            "Insert",
	Home:              "Home",
	End:               "End",
	PageUp:            "PageUp",
	PageDown:          "PageDown",
	Up:                "Up",
	Down:              "Down",
	Left:              "Left",
	Right:             "Right",
	ControlUp:         "ControlUp",
	ControlDown:       "ControlDown",
	ControlLeft:       "ControlLeft",
	ControlRight:      "ControlRight",
	ShiftUp:           "ShiftUp",
	ShiftDown:         "ShiftDown",
	ShiftLeft:         "ShiftLeft",
	ShiftRight:        "ShiftRight",
	F1:                "F1",
	F2:                "F2",
	F3:                "F3",
	F4:                "F4",
	F5:                "F5",
	F6:                "F6",
	F7:                "F7",
	F8:                "F8",
	F9:                "F9",
	F10:               "F10",
	F11:               "F11",
	F12:               "F12",
	BracketedPaste:    "BracketedPaste",
	Vt100MouseEvent:   "Vt100MouseEvent",
	WindowsMouseEvent: "WindowsMouseEvent",
	CPRResponse:       "CPRResponse",
	SIGINT:            "SIGINT",
	Ignore:            "Ignore",
}

func init() {
	for i := ControlA; i <= ControlZ; i++ {
		names[i] = fmt.Sprintf("Control%c", 'A'+rune(i-ControlA))
	}
}

func (k ID) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return fmt.Sprintf("ID(%d)", int(k))
}

// controlByte returns the C0 control byte (0x01-0x1A) for ControlA..ControlZ.
func controlByte(k ID) (byte, bool) {
	if k < ControlA || k > ControlZ {
		return 0, false
	}
	return byte(k - ControlA + 1), true
}

// KeyPress is the value record the parser (and, ultimately, the key
// processor) deals in: a logical key plus the raw bytes/text associated
// with it. Data lets a round-trip reproduce the same emission:
// feeding Data back through the parser yields an equivalent KeyPress.
type KeyPress struct {
	Key  ID
	Data string
}

func (k KeyPress) String() string {
	return fmt.Sprintf("KeyPress(%s, %q)", k.Key, k.Data)
}

// Modifier is a bitmask of the modifier keys the CSI "1;n" parameter
// encodes.
type Modifier int

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << iota
	ModAlt
	ModCtrl
)

// modifierFromParam decodes the CSI "1;n" modifier parameter:
// 2=Shift, 3=Alt, 4=Shift+Alt, 5=Ctrl, 6=Shift+Ctrl, 7=Alt+Ctrl,
// 8=Shift+Alt+Ctrl.
func modifierFromParam(n int) Modifier {
	switch n {
	case 2:
		return ModShift
	case 3:
		return ModAlt
	case 4:
		return ModShift | ModAlt
	case 5:
		return ModCtrl
	case 6:
		return ModShift | ModCtrl
	case 7:
		return ModAlt | ModCtrl
	case 8:
		return ModShift | ModAlt | ModCtrl
	default:
		return ModNone
	}
}

// modifiedArrow maps a base arrow/navigation key plus a modifier parameter
// to the corresponding Control*/Shift* key, falling back to the base key
// when the modifier carries no meaning for that key (only Up/Down/Left/
// Right have dedicated Control/Shift variants in this vocabulary; others
// degrade to their unmodified form: known sequences map
// per table; others pass the base key through").
func modifiedArrow(base ID, mod Modifier) ID {
	switch {
	case mod&ModCtrl != 0:
		switch base {
		case Up:
			return ControlUp
		case Down:
			return ControlDown
		case Left:
			return ControlLeft
		case Right:
			return ControlRight
		}
	case mod&ModShift != 0:
		switch base {
		case Up:
			return ShiftUp
		case Down:
			return ShiftDown
		case Left:
			return ShiftLeft
		case Right:
			return ShiftRight
		}
	}
	return base
}
