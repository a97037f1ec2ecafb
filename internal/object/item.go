package object

// Item is one generated object. The generator mutates it in place.
type Item struct {
	KindID         KindID
	TVal           TVal
	SVal           int
	Number         int
	ArtifactID     ArtifactID
	EgoID          EgoID
	RandomArtifact bool
	RandomName     string // set on random artifacts
	DD, DS         int
	ToH, ToD, ToA  int
	AC             int
	Weight         int
	PVal           int
	Flags          TrFlags
	Curses         CurseFlags
	Ident          IdentFlags
	ActivationID   int
	Level          int
}

// Prep resets it to a fresh single instance of k.
func (it *Item) Prep(k *Kind) {
	*it = Item{
		KindID:       k.ID,
		TVal:         k.TVal,
		SVal:         k.SVal,
		Number:       1,
		DD:           k.DD,
		DS:           k.DS,
		ToH:          k.ToH,
		ToD:          k.ToD,
		ToA:          k.ToA,
		AC:           k.AC,
		Weight:       k.Weight,
		PVal:         k.PVal,
		ActivationID: k.Activation,
	}
}

// IsEmpty reports whether the item has no base kind.
func (it *Item) IsEmpty() bool { return it.KindID == 0 }

func (it *Item) IsFixedArtifact() bool { return it.ArtifactID != 0 }
func (it *Item) IsEgo() bool           { return it.EgoID != 0 }

// IsArtifact reports whether the item is a fixed or random artifact.
func (it *Item) IsArtifact() bool { return it.IsFixedArtifact() || it.RandomArtifact }

func (it *Item) IsCursed() bool { return !it.Curses.Empty() }
func (it *Item) IsBroken() bool { return it.Ident.Has(IdentBroken) }

// IsMeleeWeapon reports whether the item is a hand-held weapon.
func (it *Item) IsMeleeWeapon() bool {
	switch it.TVal {
	case TValDigging, TValHafted, TValPolearm, TValSword:
		return true
	}
	return false
}

// IsWeapon reports whether the item is a melee weapon or a launcher.
func (it *Item) IsWeapon() bool { return it.IsMeleeWeapon() || it.TVal == TValBow }

func (it *Item) IsAmmo() bool {
	return it.TVal == TValShot || it.TVal == TValArrow || it.TVal == TValBolt
}

func (it *Item) IsArmor() bool {
	return it.TVal >= TValBoots && it.TVal <= TValDragArmor
}

// IsWearable reports whether the item occupies an equipment slot.
func (it *Item) IsWearable() bool {
	return it.IsWeapon() || it.IsArmor() || it.TVal == TValLight ||
		it.TVal == TValRing || it.TVal == TValAmulet || it.TVal == TValInstrument
}

// Validate checks the invariants every finished item must satisfy.
func (it *Item) Validate() error {
	if it.IsFixedArtifact() && it.IsEgo() {
		return ErrArtifactAndEgo
	}
	return nil
}
