package ast

import "sync"

// Symbol is an interned identifier. The zero Symbol means "no name";
// parsed identifiers are always non-empty, so the two never collide.
// Symbols are comparable with == and cheap to copy.
type Symbol struct {
	id uint32
}

var symtab = struct {
	sync.RWMutex
	ids   map[string]uint32
	names []string
}{ids: make(map[string]uint32)}

// Intern returns the Symbol for name, creating it on first use.
// Interning the empty string yields the zero Symbol.
func Intern(name string) Symbol {
	if name == "" {
		return Symbol{}
	}

	symtab.RLock()
	id, ok := symtab.ids[name]
	symtab.RUnlock()
	if ok {
		return Symbol{id: id}
	}

	symtab.Lock()
	defer symtab.Unlock()
	if id, ok := symtab.ids[name]; ok {
		return Symbol{id: id}
	}
	symtab.names = append(symtab.names, name)
	id = uint32(len(symtab.names)) // ids start at 1, 0 is "no name"
	symtab.ids[name] = id
	return Symbol{id: id}
}

// IsZero reports whether s is the "no name" Symbol.
func (s Symbol) IsZero() bool { return s.id == 0 }

func (s Symbol) String() string {
	if s.id == 0 {
		return ""
	}
	symtab.RLock()
	defer symtab.RUnlock()
	return symtab.names[s.id-1]
}
