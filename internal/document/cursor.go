package document

// Cursor iterates over the top-level keys of a document in source order.
//
//	for c.Next() {
//	    key, value := c.Key(), c.Value()
//	}
//	if err := c.Err(); err != nil { ... }
type Cursor interface {
	// Next advances to the next key. It returns false when the document
	// is exhausted or an error occurred.
	Next() bool

	// Key returns the current key as written in the document.
	Key() string

	// Value returns the generic value node of the current key.
	Value() any

	// Err returns the first error encountered while iterating.
	Err() error
}

// Entry is one top-level key/value pair.
type Entry struct {
	Key   string
	Value any
}

// EntryCursor is a Cursor over a fixed list of entries. Repeated keys are
// yielded as given.
type EntryCursor struct {
	entries []Entry
	idx     int
}

var _ Cursor = (*EntryCursor)(nil)

// NewEntryCursor returns a cursor over entries in the given order.
func NewEntryCursor(entries ...Entry) *EntryCursor {
	return &EntryCursor{entries: entries, idx: -1}
}

func (c *EntryCursor) Next() bool {
	if c.idx+1 >= len(c.entries) {
		c.idx = len(c.entries)
		return false
	}
	c.idx++
	return true
}

func (c *EntryCursor) Key() string {
	if c.idx < 0 || c.idx >= len(c.entries) {
		return ""
	}
	return c.entries[c.idx].Key
}

func (c *EntryCursor) Value() any {
	if c.idx < 0 || c.idx >= len(c.entries) {
		return nil
	}
	return c.entries[c.idx].Value
}

func (c *EntryCursor) Err() error { return nil }

// Keys drains c and returns the keys it yielded.
func Keys(c Cursor) ([]string, error) {
	var keys []string
	for c.Next() {
		keys = append(keys, c.Key())
	}
	return keys, c.Err()
}
