package decider

import "errors"

// ErrNoItems is returned by Confirm when the list requires at least one
// item and the working list is empty. The collection step must stay open
// until an item is added or the step is abandoned.
var ErrNoItems = errors.New("at least one item is required")

// ListPrompt carries the labels a front end shows around a name list.
type ListPrompt struct {
	Title      string
	FieldLabel string
	Hint       string
}

// NameList collects an ordered list of item names (alternatives or
// factors). Entries are normalized on add; whitespace-only input never
// enters the working list. Insertion order is significant and duplicates
// are allowed.
type NameList struct {
	items             []string
	requireAtLeastOne bool
}

func NewNameList(requireAtLeastOne bool) *NameList {
	return &NameList{requireAtLeastOne: requireAtLeastOne}
}

// Add appends the normalized form of raw to the end of the working list.
// Input that normalizes to the empty string is rejected and Add reports
// false.
func (l *NameList) Add(raw string) bool {
	name := normalizeName(raw)
	if name == "" {
		return false
	}
	l.items = append(l.items, name)
	return true
}

// Remove deletes the item at idx, keeping the order of the rest. Out of
// range indices are a no-op.
func (l *NameList) Remove(idx int) bool {
	if idx < 0 || idx >= len(l.items) {
		return false
	}
	l.items = append(l.items[:idx], l.items[idx+1:]...)
	return true
}

func (l *NameList) Len() int { return len(l.items) }

// Items returns a copy of the working list.
func (l *NameList) Items() []string {
	return append([]string(nil), l.items...)
}

// CanConfirm reports whether Confirm would succeed. Front ends use it to
// refuse closing the collection step with zero items.
func (l *NameList) CanConfirm() bool {
	return !l.requireAtLeastOne || len(l.items) > 0
}

// Confirm finalizes the list. Whitespace-only entries are filtered even
// though Add already rejects them, so the finalized list only ever holds
// non-empty trimmed names.
func (l *NameList) Confirm() ([]string, error) {
	if !l.CanConfirm() {
		return nil, ErrNoItems
	}
	out := make([]string, 0, len(l.items))
	for _, it := range l.items {
		if name := normalizeName(it); name != "" {
			out = append(out, name)
		}
	}
	if l.requireAtLeastOne && len(out) == 0 {
		return nil, ErrNoItems
	}
	return out, nil
}

// Abandon discards the working list and yields the empty result.
func (l *NameList) Abandon() []string {
	l.items = nil
	return nil
}
