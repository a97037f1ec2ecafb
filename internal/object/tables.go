package object

import "fmt"

// KindTable indexes base kinds by ID and by tval/sval.
type KindTable struct {
	kinds []Kind
	byID  map[KindID]*Kind
	byTS  map[tvsv]*Kind
}

type tvsv struct {
	tv TVal
	sv int
}

// NewKindTable indexes kinds. IDs and tval/sval pairs must be unique.
func NewKindTable(kinds []Kind) (*KindTable, error) {
	t := &KindTable{
		kinds: make([]Kind, len(kinds)),
		byID:  make(map[KindID]*Kind, len(kinds)),
		byTS:  make(map[tvsv]*Kind, len(kinds)),
	}
	copy(t.kinds, kinds)
	for i := range t.kinds {
		k := &t.kinds[i]
		if k.ID == 0 {
			return nil, fmt.Errorf("kind %q: id 0 is reserved", k.Name)
		}
		if _, dup := t.byID[k.ID]; dup {
			return nil, fmt.Errorf("kind %q: duplicate id %d", k.Name, k.ID)
		}
		key := tvsv{k.TVal, k.SVal}
		if _, dup := t.byTS[key]; dup {
			return nil, fmt.Errorf("kind %q: duplicate tval/sval %d/%d", k.Name, k.TVal, k.SVal)
		}
		t.byID[k.ID] = k
		t.byTS[key] = k
	}
	return t, nil
}

// Get returns the kind with id, or nil.
func (t *KindTable) Get(id KindID) *Kind { return t.byID[id] }

// Lookup finds the kind for a tval/sval pair.
func (t *KindTable) Lookup(tv TVal, sv int) (*Kind, bool) {
	k, ok := t.byTS[tvsv{tv, sv}]
	return k, ok
}

// All returns the kinds in table order. Callers must not modify them.
func (t *KindTable) All() []Kind { return t.kinds }

// OfTVal returns every kind of one category in table order.
func (t *KindTable) OfTVal(tv TVal) []*Kind {
	var out []*Kind
	for i := range t.kinds {
		if t.kinds[i].TVal == tv {
			out = append(out, &t.kinds[i])
		}
	}
	return out
}

// EgoTable indexes ego definitions by ID.
type EgoTable struct {
	egos []Ego
	byID map[EgoID]*Ego
}

// NewEgoTable indexes egos. IDs must be unique and non-zero.
func NewEgoTable(egos []Ego) (*EgoTable, error) {
	t := &EgoTable{
		egos: make([]Ego, len(egos)),
		byID: make(map[EgoID]*Ego, len(egos)),
	}
	copy(t.egos, egos)
	for i := range t.egos {
		e := &t.egos[i]
		if e.ID == 0 {
			return nil, fmt.Errorf("ego %q: id 0 is reserved", e.Name)
		}
		if _, dup := t.byID[e.ID]; dup {
			return nil, fmt.Errorf("ego %q: duplicate id %d", e.Name, e.ID)
		}
		t.byID[e.ID] = e
	}
	return t, nil
}

// Get returns the ego with id, or nil.
func (t *EgoTable) Get(id EgoID) *Ego { return t.byID[id] }

// All returns the egos in table order. Callers must not modify them.
func (t *EgoTable) All() []Ego { return t.egos }
