package artifact

import (
	"testing"

	"github.com/stretchr/testify/require"

	"relicforge/internal/dungeon"
	"relicforge/internal/flagset"
	"relicforge/internal/object"
)

var (
	abilityFlags = flagset.Of(
		object.TrLevitation, object.TrLite1, object.TrSeeInvis, object.TrWarning,
		object.TrSlowDigest, object.TrRegen, object.TrFreeAct, object.TrHoldExp,
		object.TrTelepathy,
	)
	highResFlags = flagset.Of(
		object.TrResPois, object.TrResLite, object.TrResDark, object.TrResShards,
		object.TrResBlind, object.TrResConf, object.TrResSound, object.TrResNether,
		object.TrResNexus, object.TrResChaos, object.TrResDisen, object.TrResFear,
	)
)

func testKinds(t *testing.T) *object.KindTable {
	t.Helper()
	kinds, err := object.NewKindTable([]object.Kind{
		{ID: 1, Name: "Long Sword", TVal: object.TValSword, SVal: 3, Level: 10, DD: 2, DS: 5, Weight: 130, Cost: 300},
		{ID: 2, Name: "Metal Cap", TVal: object.TValHelm, SVal: 2, Level: 10, AC: 3, Weight: 20, Cost: 30},
		{ID: 3, Name: "Phial", TVal: object.TValLight, SVal: 4, Level: 1, Weight: 10, Cost: 10000},
		{ID: 4, Name: "Katana", TVal: object.TValSword, SVal: 4, Level: 20, DD: 3, DS: 5, Weight: 120, Cost: 400},
		{ID: 5, Name: "Star", TVal: object.TValLight, SVal: 5, Level: 60, Weight: 5, Cost: 25000},
	})
	require.NoError(t, err)
	return kinds
}

func testDefs() []Def {
	return []Def{
		{ID: Galadriel, Name: "of Galadriel", TVal: object.TValLight, SVal: 4, PVal: 3, Level: 5, Rarity: 1, Cost: 10000,
			Flags: flagset.Of(object.TrLite1, object.TrActivate), Gen: flagset.Of(object.GenInstaArt)},
		{ID: Elendil, Name: "of Elendil", TVal: object.TValLight, SVal: 5, PVal: 2, Level: 30, Rarity: 3, Cost: 25000,
			Gen: flagset.Of(object.GenInstaArt)},
		{ID: Ringil, Name: "'Ringil'", TVal: object.TValSword, SVal: 3, PVal: 10, DD: 4, DS: 5, ToH: 22, ToD: 25,
			Weight: 130, Level: 20, Rarity: 40, Cost: 300000,
			Flags:  flagset.Of(object.TrSpeed, object.TrSlayEvil, object.TrBrandCold)},
		{ID: Anduril, Name: "'Anduril'", TVal: object.TValSword, SVal: 3, PVal: 4, DD: 3, DS: 5, ToH: 10, ToD: 15,
			Weight: 130, Level: 40, Rarity: 20, Cost: 80000,
			Flags:  flagset.Of(object.TrStr, object.TrBrandFire)},
		{ID: Grond, Name: "'Grond'", TVal: object.TValSword, SVal: 3, Level: 1, Rarity: 1, Cost: 500000,
			Gen: flagset.Of(object.GenQuestItem, object.GenInstaArt)},
		{ID: Terror, Name: "of Terror", TVal: object.TValHelm, SVal: 2, PVal: 3, AC: 5, ToA: 12, Weight: 20,
			Level: 40, Rarity: 20, Cost: 50000,
			Flags: flagset.Of(object.TrStr, object.TrDex, object.TrCon, object.TrResAcid)},
		{ID: Muramasa, Name: "'Muramasa'", TVal: object.TValSword, SVal: 4, PVal: 4, DD: 4, DS: 5, ToH: 20, ToD: 20,
			Level: 60, Rarity: 30, Cost: 100000, Flags: flagset.Of(object.TrStr)},
		{ID: Robinton, Name: "of Robinton", TVal: object.TValInstrument, SVal: 1, Level: 30, Rarity: 20, Cost: 30000},
		{ID: Xiaolong, Name: "of Xiaolong", TVal: object.TValHafted, SVal: 2, Level: 15, Rarity: 10, Cost: 7000},
		{ID: BloodyMoon, Name: "'Bloody Moon'", TVal: object.TValPolearm, SVal: 2, Level: 70, Rarity: 30, Cost: 200000,
			Flags: flagset.Of(object.TrStr, object.TrResPois)},
		{ID: HeavenlyMaiden, Name: "of the Heavenly Maiden", TVal: object.TValCloak, SVal: 1, Level: 40, Rarity: 20, Cost: 40000},
		{ID: Milim, Name: "of Milim", TVal: object.TValSoftArmor, SVal: 3, PVal: 1, Level: 20, Rarity: 15, Cost: 20000},
		{ID: Gurthang, Name: "'Gurthang'", TVal: object.TValSword, SVal: 5, DD: 3, DS: 6, Level: 30, Rarity: 15, Cost: 0,
			Gen: flagset.Of(object.GenXtraDice)},
	}
}

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := NewRegistry(testDefs())
	require.NoError(t, err)
	return reg
}

func testFloor(depth int) *dungeon.Floor {
	def := &dungeon.Def{ID: 1, Name: "Angband", MaxDepth: 127, ObjGood: 75, ObjGreat: 20}
	return dungeon.NewFloor(def, depth, 42)
}
