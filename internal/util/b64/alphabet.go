package b64

import (
	"sync"
)

// alphabetTable is the per-variant forward/reverse symbol table. The reverse
// map only holds characters which are part of the alphabet; everything else
// is "not found" and handled by the caller.
type alphabetTable struct {
	forward string
	reverse map[byte]byte
}

func buildTable(v Variant) *alphabetTable {
	t := &alphabetTable{
		forward: v.Alphabet,
		reverse: make(map[byte]byte, 64),
	}
	for i := 0; i < len(v.Alphabet); i++ {
		t.reverse[v.Alphabet[i]] = byte(i)
	}
	return t
}

// Codec is the Base64 codec engine. It owns the memoized alphabet tables and
// is safe for concurrent use -- table entries are written once per variant id
// and recomputation on a race is idempotent. The zero value is not usable,
// construct with NewCodec.
type Codec struct {
	mu     sync.RWMutex
	tables map[string]*alphabetTable
}

// NewCodec creates a fresh codec engine with an empty table cache.
func NewCodec() *Codec {
	return &Codec{
		tables: make(map[string]*alphabetTable),
	}
}

// Default is the process-wide engine backing the package-level helpers.
var Default = NewCodec()

// table returns the (possibly cached) alphabet table for the variant.
func (c *Codec) table(v Variant) *alphabetTable {
	c.mu.RLock()
	t, ok := c.tables[v.ID]
	c.mu.RUnlock()
	if ok {
		return t
	}

	t = buildTable(v)

	c.mu.Lock()
	if cached, ok := c.tables[v.ID]; ok {
		t = cached
	} else {
		c.tables[v.ID] = t
	}
	c.mu.Unlock()

	return t
}
