package key

// Key identifies a physical key. Printable characters use KeyRune with the
// character carried alongside in Event.Rune.
type Key uint8

const (
	// KeyNone is the zero value and matches nothing.
	KeyNone Key = iota

	// KeyRune is a printable character key.
	KeyRune

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeySpace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// IsSpecial returns true for non-character keys.
func (k Key) IsSpecial() bool {
	return k != KeyNone && k != KeyRune
}

// String returns the Vim-style name used inside <...> notation.
func (k Key) String() string {
	switch k {
	case KeyRune:
		return "Rune"
	case KeyEscape:
		return "Esc"
	case KeyEnter:
		return "CR"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "BS"
	case KeySpace:
		return "Space"
	case KeyDelete:
		return "Del"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	default:
		return "None"
	}
}

// specialKeyNames maps the names accepted inside <...> notation to keys.
// Lookup is case-insensitive; aliases cover common Vim spellings.
var specialKeyNames = map[string]Key{
	"esc":       KeyEscape,
	"escape":    KeyEscape,
	"cr":        KeyEnter,
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"tab":       KeyTab,
	"bs":        KeyBackspace,
	"backspace": KeyBackspace,
	"space":     KeySpace,
	"del":       KeyDelete,
	"delete":    KeyDelete,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
	"home":      KeyHome,
	"end":       KeyEnd,
	"pageup":    KeyPageUp,
	"pagedown":  KeyPageDown,
}
