package combat

import (
	"github.com/vovakirdan/twin-arcade/internal/config"
)

// ComboDefinition is one catalog entry: a light/heavy sequence that upgrades
// the final input into a special attack.
type ComboDefinition struct {
	Name      string
	Sequence  []AttackType
	Damage    float64
	Knockback float64
}

// buildCatalog converts the config table, keeping declared order.
// Entries with unknown tags are skipped; config validation rejects them first.
func buildCatalog(specs []config.ComboSpec) []ComboDefinition {
	catalog := make([]ComboDefinition, 0, len(specs))
outer:
	for _, spec := range specs {
		def := ComboDefinition{Name: spec.Name, Damage: spec.Damage, Knockback: spec.Knockback}
		for _, tag := range spec.Sequence {
			t, err := ParseAttackType(tag)
			if err != nil {
				continue outer
			}
			def.Sequence = append(def.Sequence, t)
		}
		if len(def.Sequence) > 0 {
			catalog = append(catalog, def)
		}
	}
	return catalog
}

// BufferEntry is one buffered attack input.
type BufferEntry struct {
	Type AttackType
	At   float64 // simulation time in seconds
}

// InputBuffer is the sliding window of recent light/heavy inputs.
type InputBuffer struct {
	entries []BufferEntry
	window  float64
}

// NewInputBuffer creates a buffer keeping inputs for window seconds.
func NewInputBuffer(window float64) InputBuffer {
	return InputBuffer{window: window}
}

// Push appends an input and drops entries older than the window.
func (b *InputBuffer) Push(t AttackType, now float64) {
	b.entries = append(b.entries, BufferEntry{Type: t, At: now})
	b.prune(now)
}

func (b *InputBuffer) prune(now float64) {
	cutoff := now - b.window
	i := 0
	for i < len(b.entries) && b.entries[i].At < cutoff {
		i++
	}
	b.entries = b.entries[i:]
}

// Match returns the first catalog combo whose sequence equals the tail of the
// buffer and fits inside the window.
func (b *InputBuffer) Match(catalog []ComboDefinition) *ComboDefinition {
	for i := range catalog {
		combo := &catalog[i]
		n := len(combo.Sequence)
		if len(b.entries) < n {
			continue
		}
		recent := b.entries[len(b.entries)-n:]
		matches := true
		for j, entry := range recent {
			if entry.Type != combo.Sequence[j] {
				matches = false
				break
			}
		}
		if matches && recent[n-1].At-recent[0].At <= b.window {
			return combo
		}
	}
	return nil
}

// Clear empties the buffer.
func (b *InputBuffer) Clear() {
	b.entries = b.entries[:0]
}

// Len returns the number of buffered inputs.
func (b *InputBuffer) Len() int {
	return len(b.entries)
}

// Entries returns a copy of the buffered inputs.
func (b *InputBuffer) Entries() []BufferEntry {
	return append([]BufferEntry(nil), b.entries...)
}

// Streak counts consecutive landed hits.
type Streak struct {
	Count     int
	Timer     float64 // time left before Count drops to zero
	LastHitAt float64
	Best      int
}

// Hit records a landed hit at now. Hits within decay of the previous one
// extend the streak, anything later starts a new one.
func (s *Streak) Hit(now, decay float64) {
	if s.Count > 0 && now-s.LastHitAt <= decay {
		s.Count++
	} else {
		s.Count = 1
	}
	s.LastHitAt = now
	s.Timer = decay
	if s.Count > s.Best {
		s.Best = s.Count
	}
}

// Decay refreshes the remaining streak time and clears the count once more
// than decay seconds have passed since the last hit.
func (s *Streak) Decay(now, decay float64) {
	if s.Count == 0 {
		s.Timer = 0
		return
	}
	elapsed := now - s.LastHitAt
	if elapsed > decay {
		s.Count = 0
		s.Timer = 0
		return
	}
	s.Timer = decay - elapsed
}

// ComboAnnouncement is the combo name shown after a combo fires.
type ComboAnnouncement struct {
	Name  string
	Timer float64
}

func (a *ComboAnnouncement) decay(dt float64) {
	if a.Timer <= 0 {
		return
	}
	a.Timer -= dt
	if a.Timer <= 0 {
		a.Timer = 0
		a.Name = ""
	}
}
