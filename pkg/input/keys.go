package input

// Key is a layout-independent virtual key code.
type Key uint32

// Named keys. Printable keys use their uppercase ASCII value so that
// Key('A') works for letters and Key('0') for digits.
const (
	KeyUnknown Key = 0

	KeySpace     Key = 32
	KeyEscape    Key = 256
	KeyEnter     Key = 257
	KeyTab       Key = 258
	KeyBackspace Key = 259
	KeyInsert    Key = 260
	KeyDelete    Key = 261
	KeyRight     Key = 262
	KeyLeft      Key = 263
	KeyDown      Key = 264
	KeyUp        Key = 265
	KeyHome      Key = 268
	KeyEnd       Key = 269

	KeyLeftShift  Key = 340
	KeyLeftCtrl   Key = 341
	KeyLeftAlt    Key = 342
	KeyLeftSuper  Key = 343
	KeyRightShift Key = 344
	KeyRightCtrl  Key = 345
	KeyRightAlt   Key = 346
	KeyRightSuper Key = 347
)

// keyNames maps binding-file key names to codes.
var keyNames = map[string]Key{
	"space":      KeySpace,
	"escape":     KeyEscape,
	"enter":      KeyEnter,
	"tab":        KeyTab,
	"backspace":  KeyBackspace,
	"insert":     KeyInsert,
	"delete":     KeyDelete,
	"right":      KeyRight,
	"left":       KeyLeft,
	"down":       KeyDown,
	"up":         KeyUp,
	"home":       KeyHome,
	"end":        KeyEnd,
	"leftshift":  KeyLeftShift,
	"leftctrl":   KeyLeftCtrl,
	"leftalt":    KeyLeftAlt,
	"leftsuper":  KeyLeftSuper,
	"rightshift": KeyRightShift,
	"rightctrl":  KeyRightCtrl,
	"rightalt":   KeyRightAlt,
	"rightsuper": KeyRightSuper,
}

// KeyByName resolves a binding-file key name. Single characters resolve to
// their uppercase code.
func KeyByName(name string) (Key, bool) {
	if k, ok := keyNames[name]; ok {
		return k, true
	}
	if len(name) == 1 {
		c := name[0]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		return Key(c), true
	}
	return KeyUnknown, false
}
