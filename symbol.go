// symbol.go — identifier slots and the name-to-slot table.
package core

// Slot is the single shared storage cell for one identifier. Every AST
// occurrence of the name points at the same Slot, so declaration, assignment,
// reads and input all observe one state.
type Slot struct {
	Name     string
	Declared bool
	HasValue bool
	Value    int64
}

// SymbolTable maps names to their shared slots. It is built during parsing;
// a slot is created the first time its name is seen, declared or not.
type SymbolTable struct {
	slots map[string]*Slot
	names []string // insertion order, for deterministic iteration
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{slots: map[string]*Slot{}}
}

// Lookup returns the slot for name, creating it on first sight.
func (st *SymbolTable) Lookup(name string) *Slot {
	if s, ok := st.slots[name]; ok {
		return s
	}
	s := &Slot{Name: name}
	st.slots[name] = s
	st.names = append(st.names, name)
	return s
}

// Names returns all known names in first-seen order.
func (st *SymbolTable) Names() []string { return st.names }
