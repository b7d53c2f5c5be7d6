package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// binding is one registered key sequence.
type binding struct {
	cmd   tea.Cmd
	desc  string
	modes []AppMode // nil = every mode
}

// KeybindRegistry maps key sequences to commands.
// Sequences use spacemacs-style notation: "SPC" for space, "SPC f c" for
// SPC then f then c. Single keys use tea.KeyMsg.String() names: "q", "?", "ctrl+c".
type KeybindRegistry struct {
	bindings map[string]binding
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{bindings: make(map[string]binding)}
}

// Bind registers a key sequence with a help description for every mode.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd, desc string) {
	r.BindForMode(seq, cmd, desc, nil)
}

// BindForMode registers a key sequence whose hint only shows in modes.
// A nil or empty modes applies to every mode.
func (r *KeybindRegistry) BindForMode(seq string, cmd tea.Cmd, desc string, modes []AppMode) {
	r.bindings[normalizeSeq(seq)] = binding{cmd: cmd, desc: desc, modes: modes}
}

// Lookup returns the command for a key sequence, or nil if not bound.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)].cmd
}

// HasPrefix reports whether a longer binding continues seq.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// submenuLabel names leader keys that open a submenu.
var submenuLabel = map[string]string{
	"f": "Filter",
}

// LeaderHints returns the next keys after currentSeq ("" means just SPC)
// with their descriptions, limited to bindings that apply in mode.
// Keys that open a submenu are labelled with the submenu name.
func (r *KeybindRegistry) LeaderHints(currentSeq string, mode AppMode) map[string]string {
	prefix := "SPC "
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq) + " "
	}
	out := make(map[string]string)
	for seq, b := range r.bindings {
		if b.cmd == nil || !strings.HasPrefix(seq, prefix) || !b.appliesTo(mode) {
			continue
		}
		next := strings.Fields(strings.TrimPrefix(seq, prefix))[0]
		if r.HasPrefix(prefix + next) {
			if label, ok := submenuLabel[next]; ok {
				out[next] = label
			} else {
				out[next] = next + "…"
			}
			continue
		}
		out[next] = b.describe(seq)
	}
	return out
}

// Hints returns every non-leader binding that applies in mode.
func (r *KeybindRegistry) Hints(mode AppMode) map[string]string {
	out := make(map[string]string)
	for seq, b := range r.bindings {
		if b.cmd == nil || strings.HasPrefix(seq, "SPC") || !b.appliesTo(mode) {
			continue
		}
		out[seq] = b.describe(seq)
	}
	return out
}

func (b binding) appliesTo(mode AppMode) bool {
	if len(b.modes) == 0 {
		return true
	}
	for _, m := range b.modes {
		if m == mode {
			return true
		}
	}
	return false
}

func (b binding) describe(seq string) string {
	if b.desc != "" {
		return b.desc
	}
	return seq
}

// normalizeSeq converts tea key strings to the canonical "SPC"-style format.
func normalizeSeq(seq string) string {
	if seq == " " {
		return "SPC"
	}
	parts := strings.Fields(seq)
	for i, p := range parts {
		parts[i] = keyToSeqPart(p)
	}
	return strings.Join(parts, " ")
}

// keyToSeqPart converts a single tea key string to a sequence part.
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}

// KeyHandler manages leader key state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderKey     string   // tea.KeyMsg.String() of the leader (" " for space)
	LeaderWaiting bool     // true while a leader sequence is being typed
	Buffer        []string // sequence typed so far, starting with "SPC"
}

// NewKeyHandler creates a handler with space as leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg, LeaderKey: " "}
}

// Reset leaves leader mode.
func (h *KeyHandler) Reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// Handle processes a KeyMsg. When consumed is true the key belongs to the
// keybind system and must not reach the views; cmd is the bound command, if any.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	if s == "esc" {
		if h.LeaderWaiting {
			h.Reset()
			return true, nil
		}
		return false, nil
	}

	if s == h.LeaderKey && !h.LeaderWaiting {
		h.LeaderWaiting = true
		h.Buffer = []string{"SPC"}
		return true, nil
	}

	if h.LeaderWaiting {
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := strings.Join(h.Buffer, " ")
		if c := h.Registry.Lookup(seq); c != nil {
			h.Reset()
			return true, c
		}
		// Stay in leader mode while a longer binding is still possible.
		if !h.Registry.HasPrefix(seq) {
			h.Reset()
		}
		return true, nil
	}

	if c := h.Registry.Lookup(keyToSeqPart(s)); c != nil {
		return true, c
	}
	return false, nil
}

// CurrentSeq returns the typed leader sequence, or "" outside leader mode.
func (h *KeyHandler) CurrentSeq() string {
	if !h.LeaderWaiting || len(h.Buffer) <= 1 {
		return ""
	}
	return strings.Join(h.Buffer, " ")
}

// KeyMap implements help.KeyMap over the registry for the current mode.
// ShortHelp lists leader hints; FullHelp adds the single-key bindings.
type KeyMap struct {
	registry   *KeybindRegistry
	keyHandler *KeyHandler
	mode       AppMode
}

// NewKeyMap creates a KeyMap for the given registry, handler, and mode.
func NewKeyMap(registry *KeybindRegistry, keyHandler *KeyHandler, mode AppMode) help.KeyMap {
	return &KeyMap{registry: registry, keyHandler: keyHandler, mode: mode}
}

// ShortHelp implements help.KeyMap.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	seq := ""
	if km.keyHandler != nil {
		seq = km.keyHandler.CurrentSeq()
	}
	hints := km.registry.LeaderHints(seq, km.mode)
	if len(hints) == 0 {
		return nil
	}
	return append(hintBindings(hints), key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	))
}

// FullHelp implements help.KeyMap.
func (km *KeyMap) FullHelp() [][]key.Binding {
	if km.registry == nil {
		return nil
	}
	var cols [][]key.Binding
	if single := hintBindings(km.registry.Hints(km.mode)); len(single) > 0 {
		cols = append(cols, single)
	}
	leader := km.registry.LeaderHints("", km.mode)
	if len(leader) > 0 {
		prefixed := make(map[string]string, len(leader))
		for k, v := range leader {
			prefixed["SPC "+k] = v
		}
		cols = append(cols, hintBindings(prefixed))
	}
	return cols
}

// hintBindings converts hints to key bindings sorted by key.
func hintBindings(hints map[string]string) []key.Binding {
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]key.Binding, 0, len(keys))
	for _, k := range keys {
		out = append(out, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	return out
}
