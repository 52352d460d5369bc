package hotkey

import (
	"fmt"
	"log"
	"strings"

	gohook "github.com/robotn/gohook"
)

// Listen watches global key events and calls callback whenever every key of
// combo (e.g. "Ctrl+Alt+S") is held down. callback runs on the hook goroutine
// and must not block. The returned stop function ends the hook.
func Listen(combo string, callback func()) (stop func(), err error) {
	m, err := newMatcher(combo)
	if err != nil {
		return nil, err
	}

	evChan := gohook.Start()
	if evChan == nil {
		return nil, fmt.Errorf("hotkey: hook did not start")
	}
	log.Printf("hotkey: listening for %s", combo)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("hotkey: PANIC in hook goroutine: %v", r)
			}
		}()
		for ev := range evChan {
			switch ev.Kind {
			case gohook.KeyDown:
				if m.press(ev.Rawcode) {
					log.Printf("hotkey: %s activated", combo)
					if callback != nil {
						callback()
					}
				}
			case gohook.KeyUp:
				m.release(ev.Rawcode)
			}
		}
		log.Printf("hotkey: event channel closed")
	}()

	return gohook.End, nil
}

// matcher tracks which keys of a combination are held. It is used from the
// hook goroutine only.
type matcher struct {
	keys    [][]uint16
	pressed []bool
}

func newMatcher(combo string) (*matcher, error) {
	names := parseHotkey(combo)
	if len(names) == 0 {
		return nil, fmt.Errorf("hotkey: empty combination %q", combo)
	}
	m := &matcher{}
	for _, name := range names {
		codes := keyNameToRawcodes(name)
		if len(codes) == 0 {
			return nil, fmt.Errorf("hotkey: unknown key %q in %q", name, combo)
		}
		m.keys = append(m.keys, codes)
	}
	m.pressed = make([]bool, len(m.keys))
	return m, nil
}

// press marks the key down and reports whether the whole combination is now
// held. A completed combination resets, so holding keys fires once.
func (m *matcher) press(code uint16) bool {
	m.set(code, true)
	for _, p := range m.pressed {
		if !p {
			return false
		}
	}
	for i := range m.pressed {
		m.pressed[i] = false
	}
	return true
}

func (m *matcher) release(code uint16) { m.set(code, false) }

func (m *matcher) set(code uint16, down bool) {
	for i, codes := range m.keys {
		for _, c := range codes {
			if c == code {
				m.pressed[i] = down
			}
		}
	}
}

// parseHotkey converts "Ctrl+Alt+q" to normalized key names.
func parseHotkey(combo string) []string {
	var keys []string
	for _, part := range strings.Split(strings.ToLower(combo), "+") {
		part = strings.TrimSpace(part)
		switch part {
		case "":
			continue
		case "control":
			part = "ctrl"
		case "win", "super", "meta":
			part = "cmd"
		}
		keys = append(keys, part)
	}
	return keys
}

// Windows virtual-key codes, as reported in gohook rawcodes.
var namedKeys = map[string][]uint16{
	"ctrl":  {162, 163}, // VK_LCONTROL, VK_RCONTROL
	"alt":   {164, 165}, // VK_LMENU, VK_RMENU
	"shift": {160, 161}, // VK_LSHIFT, VK_RSHIFT
	"cmd":   {91, 92},   // VK_LWIN, VK_RWIN

	"space":     {32},
	"enter":     {13},
	"return":    {13},
	"esc":       {27},
	"escape":    {27},
	"tab":       {9},
	"backspace": {8},
	"delete":    {46},
	"insert":    {45},
	"home":      {36},
	"end":       {35},
	"pageup":    {33},
	"pagedown":  {34},
	"left":      {37},
	"up":        {38},
	"right":     {39},
	"down":      {40},
}

func keyNameToRawcodes(name string) []uint16 {
	name = strings.ToLower(strings.TrimSpace(name))
	if codes, ok := namedKeys[name]; ok {
		return codes
	}
	if len(name) == 1 {
		switch c := name[0]; {
		case c >= 'a' && c <= 'z':
			return []uint16{uint16(c-'a') + 65}
		case c >= '0' && c <= '9':
			return []uint16{uint16(c-'0') + 48}
		}
	}
	var n int
	if _, err := fmt.Sscanf(name, "f%d", &n); err == nil && n >= 1 && n <= 24 && name == fmt.Sprintf("f%d", n) {
		return []uint16{uint16(111 + n)} // VK_F1 = 112
	}
	return nil
}
