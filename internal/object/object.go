// Package object defines the item instance and the static definitions the
// generator reads: base kinds and ego items.
package object

import "errors"

// ErrArtifactAndEgo is returned by Validate when an item carries both a fixed
// artifact and an ego.
var ErrArtifactAndEgo = errors.New("item is both a fixed artifact and an ego item")

type (
	KindID     uint16
	EgoID      uint16
	ArtifactID uint16
)

// TVal is the broad category of a base kind.
type TVal uint8

const (
	TValNone TVal = iota
	TValShot
	TValArrow
	TValBolt
	TValBow
	TValDigging
	TValHafted
	TValPolearm
	TValSword
	TValBoots
	TValGloves
	TValHelm
	TValCrown
	TValShield
	TValCloak
	TValSoftArmor
	TValHardArmor
	TValDragArmor
	TValLight
	TValAmulet
	TValRing
	TValInstrument
	TValStaff
	TValWand
	TValRod
	TValScroll
	TValPotion
	TValFood
	TValGold
)

// Slot is the equipment slot an ego definition rolls for.
type Slot uint8

const (
	SlotNone Slot = iota
	SlotMainHand
	SlotBow
	SlotAmmo
	SlotArm
	SlotBody
	SlotOuter
	SlotHead
	SlotHands
	SlotFeet
	SlotLight
)

// SlotFor returns the ego slot for a tval, or SlotNone.
func SlotFor(tv TVal) Slot {
	switch tv {
	case TValDigging, TValHafted, TValPolearm, TValSword:
		return SlotMainHand
	case TValBow:
		return SlotBow
	case TValShot, TValArrow, TValBolt:
		return SlotAmmo
	case TValShield:
		return SlotArm
	case TValSoftArmor, TValHardArmor, TValDragArmor:
		return SlotBody
	case TValCloak:
		return SlotOuter
	case TValHelm, TValCrown:
		return SlotHead
	case TValGloves:
		return SlotHands
	case TValBoots:
		return SlotFeet
	case TValLight:
		return SlotLight
	}
	return SlotNone
}

// Alloc is one allocation band of a base kind: it may be picked at object
// levels of Level or deeper with the given relative Chance.
type Alloc struct {
	Level  int
	Chance int
}

// Kind is a base item definition.
type Kind struct {
	ID         KindID
	Name       string
	TVal       TVal
	SVal       int
	Level      int
	Cost       int
	Weight     int
	DD, DS     int
	AC         int
	ToH        int
	ToD        int
	ToA        int
	PVal       int
	Alloc      []Alloc
	Flags      TrFlags
	Gen        GenFlags
	Activation int
}

// Ego is an ego-item definition. Bonus ranges are inclusive.
type Ego struct {
	ID               EgoID
	Name             string
	Slot             Slot
	Level            int
	Rarity           int
	Rating           int
	Cost             int
	MinToH, MaxToH   int
	MinToD, MaxToD   int
	MinToA, MaxToA   int
	MinPVal, MaxPVal int
	Flags            TrFlags
	Gen              GenFlags
	Activation       int
}

// Worthless reports whether the ego is a cursed or zero-rated theme.
func (e *Ego) Worthless() bool {
	return e.Rating == 0 || e.Gen.HasAny(GenCursed, GenHeavyCurse, GenPermaCurse)
}
