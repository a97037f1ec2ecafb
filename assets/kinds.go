package assets

import (
	"relicforge/internal/flagset"
	"relicforge/internal/object"
)

func alloc(pairs ...int) []object.Alloc {
	out := make([]object.Alloc, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, object.Alloc{Level: pairs[i], Chance: pairs[i+1]})
	}
	return out
}

// kindDefs lists every base kind. Kinds with no allocation only appear as
// the base of an instant artifact or through scripted placement.
var kindDefs = []object.Kind{
	// Edged weapons
	{ID: 1, Name: "Dagger", TVal: object.TValSword, SVal: 1, Level: 0, Cost: 10, Weight: 12, DD: 1, DS: 4, Alloc: alloc(0, 1, 5, 1, 10, 1)},
	{ID: 2, Name: "Short Sword", TVal: object.TValSword, SVal: 2, Level: 5, Cost: 80, Weight: 80, DD: 1, DS: 7, Alloc: alloc(5, 1)},
	{ID: 3, Name: "Long Sword", TVal: object.TValSword, SVal: 3, Level: 10, Cost: 300, Weight: 130, DD: 2, DS: 5, Alloc: alloc(10, 1, 20, 1)},
	{ID: 4, Name: "Katana", TVal: object.TValSword, SVal: 4, Level: 20, Cost: 400, Weight: 120, DD: 3, DS: 5, Alloc: alloc(20, 1)},
	{ID: 5, Name: "Zweihander", TVal: object.TValSword, SVal: 5, Level: 30, Cost: 1500, Weight: 280, DD: 3, DS: 6, Alloc: alloc(30, 1)},
	// Blunt weapons
	{ID: 6, Name: "Mace", TVal: object.TValHafted, SVal: 1, Level: 5, Cost: 65, Weight: 120, DD: 2, DS: 4, Alloc: alloc(5, 1)},
	{ID: 7, Name: "Nunchaku", TVal: object.TValHafted, SVal: 2, Level: 10, Cost: 45, Weight: 60, DD: 2, DS: 3, Alloc: alloc(10, 1)},
	{ID: 8, Name: "War Hammer", TVal: object.TValHafted, SVal: 3, Level: 20, Cost: 225, Weight: 120, DD: 3, DS: 3, Alloc: alloc(20, 1)},
	{ID: 9, Name: "Mighty Hammer", TVal: object.TValHafted, SVal: 4, Level: 100, Cost: 1000, Weight: 1000, DD: 10, DS: 10},
	// Polearms and diggers
	{ID: 10, Name: "Spear", TVal: object.TValPolearm, SVal: 1, Level: 5, Cost: 36, Weight: 50, DD: 1, DS: 6, Alloc: alloc(5, 1)},
	{ID: 11, Name: "Scythe", TVal: object.TValPolearm, SVal: 2, Level: 45, Cost: 800, Weight: 250, DD: 5, DS: 3, Alloc: alloc(45, 1)},
	{ID: 12, Name: "Shovel", TVal: object.TValDigging, SVal: 1, Level: 1, Cost: 10, Weight: 60, DD: 1, DS: 2, PVal: 1,
		Flags: flagset.Of(object.TrTunnel), Alloc: alloc(1, 1)},
	// Launchers and ammunition
	{ID: 13, Name: "Sling", TVal: object.TValBow, SVal: 1, Level: 1, Cost: 5, Weight: 5, Alloc: alloc(1, 1)},
	{ID: 14, Name: "Long Bow", TVal: object.TValBow, SVal: 2, Level: 10, Cost: 120, Weight: 40, Alloc: alloc(10, 1)},
	{ID: 15, Name: "Iron Shot", TVal: object.TValShot, SVal: 1, Level: 3, Cost: 1, Weight: 4, DD: 1, DS: 4, Alloc: alloc(3, 1)},
	{ID: 16, Name: "Arrow", TVal: object.TValArrow, SVal: 1, Level: 3, Cost: 1, Weight: 2, DD: 1, DS: 4, Alloc: alloc(3, 1, 15, 1)},
	{ID: 17, Name: "Bolt", TVal: object.TValBolt, SVal: 1, Level: 3, Cost: 2, Weight: 3, DD: 1, DS: 5, Alloc: alloc(3, 1)},
	// Body armour
	{ID: 18, Name: "Soft Leather Armour", TVal: object.TValSoftArmor, SVal: 1, Level: 1, Cost: 18, Weight: 80, AC: 8, Alloc: alloc(1, 1)},
	{ID: 19, Name: "Robe", TVal: object.TValSoftArmor, SVal: 2, Level: 1, Cost: 4, Weight: 20, AC: 2, Alloc: alloc(1, 1)},
	{ID: 20, Name: "Revealing Swimsuit", TVal: object.TValSoftArmor, SVal: 3, Level: 20, Cost: 30, Weight: 5, Alloc: alloc(20, 1)},
	{ID: 21, Name: "Metal Scale Mail", TVal: object.TValHardArmor, SVal: 1, Level: 25, Cost: 550, Weight: 250, AC: 38, ToH: -2, Alloc: alloc(25, 1)},
	{ID: 22, Name: "Mithril Chain Mail", TVal: object.TValHardArmor, SVal: 2, Level: 55, Cost: 7000, Weight: 150, AC: 28, ToH: -1, Alloc: alloc(55, 1)},
	{ID: 23, Name: "Multi-Hued Dragon Scale Mail", TVal: object.TValDragArmor, SVal: 1, Level: 75, Cost: 60000, Weight: 200, AC: 30, ToA: 10,
		Flags: flagset.Of(object.TrResAcid, object.TrResElec, object.TrResFire, object.TrResCold, object.TrResPois), Alloc: alloc(75, 1)},
	// Outer, head, hands and feet
	{ID: 24, Name: "Cloak", TVal: object.TValCloak, SVal: 1, Level: 1, Cost: 3, Weight: 10, AC: 1, Alloc: alloc(1, 1, 20, 1)},
	{ID: 25, Name: "Elven Cloak", TVal: object.TValCloak, SVal: 2, Level: 30, Cost: 1500, Weight: 5, AC: 4, PVal: 1,
		Flags: flagset.Of(object.TrStealth), Alloc: alloc(30, 1)},
	{ID: 26, Name: "Leather Gloves", TVal: object.TValGloves, SVal: 1, Level: 1, Cost: 3, Weight: 5, AC: 1, Alloc: alloc(1, 1)},
	{ID: 27, Name: "Gauntlets", TVal: object.TValGloves, SVal: 2, Level: 10, Cost: 35, Weight: 25, AC: 3, Alloc: alloc(10, 1)},
	{ID: 28, Name: "Soft Leather Boots", TVal: object.TValBoots, SVal: 1, Level: 1, Cost: 4, Weight: 20, AC: 2, Alloc: alloc(1, 1)},
	{ID: 29, Name: "Hard Leather Boots", TVal: object.TValBoots, SVal: 2, Level: 5, Cost: 12, Weight: 40, AC: 3, Alloc: alloc(5, 1)},
	{ID: 30, Name: "Hard Leather Cap", TVal: object.TValHelm, SVal: 1, Level: 1, Cost: 12, Weight: 15, AC: 2, Alloc: alloc(1, 1)},
	{ID: 31, Name: "Metal Cap", TVal: object.TValHelm, SVal: 2, Level: 10, Cost: 30, Weight: 20, AC: 3, Alloc: alloc(10, 1)},
	{ID: 32, Name: "Iron Crown", TVal: object.TValCrown, SVal: 1, Level: 45, Cost: 500, Weight: 20, Alloc: alloc(45, 1)},
	{ID: 33, Name: "Massive Iron Crown", TVal: object.TValCrown, SVal: 2, Level: 100, Cost: 1000, Weight: 20, AC: 0},
	{ID: 34, Name: "Small Wicker Shield", TVal: object.TValShield, SVal: 1, Level: 1, Cost: 3, Weight: 30, AC: 2, Alloc: alloc(1, 1)},
	{ID: 35, Name: "Large Metal Shield", TVal: object.TValShield, SVal: 2, Level: 30, Cost: 1200, Weight: 120, AC: 12, Alloc: alloc(30, 1)},
	// Light sources
	{ID: 36, Name: "Wooden Torch", TVal: object.TValLight, SVal: object.SValLightTorch, Level: 1, Cost: 1, Weight: 30,
		Flags: flagset.Of(object.TrLite1), Alloc: alloc(1, 1, 40, 1)},
	{ID: 37, Name: "Brass Lantern", TVal: object.TValLight, SVal: object.SValLightLantern, Level: 5, Cost: 35, Weight: 50,
		Flags: flagset.Of(object.TrLite2), Alloc: alloc(5, 1)},
	{ID: 38, Name: "Phial", TVal: object.TValLight, SVal: object.SValLightGaladriel, Level: 1, Cost: 10000, Weight: 10},
	{ID: 39, Name: "Star", TVal: object.TValLight, SVal: object.SValLightElendil, Level: 30, Cost: 25000, Weight: 5},
	{ID: 40, Name: "Arkenstone", TVal: object.TValLight, SVal: object.SValLightThrain, Level: 50, Cost: 60000, Weight: 5},
	// Jewellery
	{ID: 41, Name: "Amulet of Slow Digestion", TVal: object.TValAmulet, SVal: object.SValAmuletSlowDigest, Level: 15, Cost: 200, Weight: 3,
		Flags: flagset.Of(object.TrSlowDigest), Alloc: alloc(15, 1)},
	{ID: 42, Name: "Amulet of Resist Acid", TVal: object.TValAmulet, SVal: object.SValAmuletResistAcid, Level: 20, Cost: 250, Weight: 3,
		Flags: flagset.Of(object.TrResAcid), Alloc: alloc(20, 1)},
	{ID: 43, Name: "Amulet of Wisdom", TVal: object.TValAmulet, SVal: object.SValAmuletWisdom, Level: 30, Cost: 500, Weight: 3,
		Flags: flagset.Of(object.TrWis, object.TrSustWis), Alloc: alloc(30, 1)},
	{ID: 44, Name: "Amulet of Doom", TVal: object.TValAmulet, SVal: object.SValAmuletDoom, Level: 50, Cost: 0, Weight: 3,
		Flags: flagset.Of(object.TrStr, object.TrInt, object.TrWis, object.TrDex, object.TrCon, object.TrChr),
		Gen:   flagset.Of(object.GenCursed), Alloc: alloc(50, 1)},
	{ID: 45, Name: "Necklace", TVal: object.TValAmulet, SVal: object.SValAmuletCarlammas, Level: 50, Cost: 60000, Weight: 3},
	{ID: 46, Name: "Ring of Strength", TVal: object.TValRing, SVal: object.SValRingStrength, Level: 30, Cost: 500, Weight: 2,
		Flags: flagset.Of(object.TrStr, object.TrSustStr), Alloc: alloc(30, 1)},
	{ID: 47, Name: "Ring of Protection", TVal: object.TValRing, SVal: object.SValRingProtection, Level: 10, Cost: 500, Weight: 2,
		Alloc: alloc(10, 1)},
	{ID: 48, Name: "Ring of Teleportation", TVal: object.TValRing, SVal: object.SValRingTeleport, Level: 5, Cost: 250, Weight: 2,
		Flags: flagset.Of(object.TrTeleport), Gen: flagset.Of(object.GenRandomCurse0), Alloc: alloc(5, 1)},
	{ID: 49, Name: "Ring of Damage", TVal: object.TValRing, SVal: object.SValRingDamage, Level: 20, Cost: 500, Weight: 2, Alloc: alloc(20, 1)},
	{ID: 50, Name: "Ring of Accuracy", TVal: object.TValRing, SVal: object.SValRingAccuracy, Level: 20, Cost: 500, Weight: 2, Alloc: alloc(20, 1)},
	{ID: 51, Name: "Ring", TVal: object.TValRing, SVal: object.SValRingBarahir, Level: 50, Cost: 65000, Weight: 2},
	{ID: 52, Name: "Ring of Speed", TVal: object.TValRing, SVal: object.SValRingSpeed, Level: 75, Cost: 100000, Weight: 2,
		Flags: flagset.Of(object.TrSpeed), Alloc: alloc(75, 1)},
	// Instruments and magic devices
	{ID: 53, Name: "Harp", TVal: object.TValInstrument, SVal: 1, Level: 30, Cost: 300, Weight: 60},
	{ID: 54, Name: "Wand of Magic Missile", TVal: object.TValWand, SVal: 1, Level: 3, Cost: 100, Weight: 10, PVal: 10, Alloc: alloc(3, 1)},
	{ID: 55, Name: "Wand of Stinking Cloud", TVal: object.TValWand, SVal: 2, Level: 5, Cost: 400, Weight: 10, PVal: 8, Alloc: alloc(5, 1)},
	{ID: 56, Name: "Staff of Teleportation", TVal: object.TValStaff, SVal: 1, Level: 20, Cost: 2000, Weight: 50, PVal: 5, Alloc: alloc(20, 1)},
	{ID: 57, Name: "Staff of Detect Evil", TVal: object.TValStaff, SVal: 2, Level: 5, Cost: 350, Weight: 50, PVal: 8, Alloc: alloc(5, 1)},
	{ID: 58, Name: "Rod of Treasure Location", TVal: object.TValRod, SVal: 1, Level: 5, Cost: 1000, Weight: 15, Alloc: alloc(5, 1)},
	// Consumables
	{ID: 59, Name: "Potion of Cure Light Wounds", TVal: object.TValPotion, SVal: 1, Level: 1, Cost: 20, Weight: 4, Alloc: alloc(1, 1, 10, 1)},
	{ID: 60, Name: "Potion of Speed", TVal: object.TValPotion, SVal: 2, Level: 1, Cost: 75, Weight: 4, Alloc: alloc(1, 1, 40, 1)},
	{ID: 61, Name: "Scroll of Phase Door", TVal: object.TValScroll, SVal: 1, Level: 1, Cost: 15, Weight: 5, Alloc: alloc(1, 1, 5, 1)},
	{ID: 62, Name: "Scroll of Acquirement", TVal: object.TValScroll, SVal: 2, Level: 20, Cost: 100000, Weight: 5, Alloc: alloc(20, 1)},
	{ID: 63, Name: "Ration of Food", TVal: object.TValFood, SVal: 1, Level: 0, Cost: 3, Weight: 8, Alloc: alloc(0, 1, 5, 1, 10, 1)},
	// Treasure, cheapest first
	{ID: 64, Name: "copper", TVal: object.TValGold, SVal: 1, Level: 1, Cost: 3},
	{ID: 65, Name: "silver", TVal: object.TValGold, SVal: 2, Level: 1, Cost: 6},
	{ID: 66, Name: "garnets", TVal: object.TValGold, SVal: 3, Level: 1, Cost: 8},
	{ID: 67, Name: "gold", TVal: object.TValGold, SVal: 4, Level: 1, Cost: 12},
	{ID: 68, Name: "opals", TVal: object.TValGold, SVal: 5, Level: 1, Cost: 16},
	{ID: 69, Name: "sapphires", TVal: object.TValGold, SVal: 6, Level: 1, Cost: 20},
	{ID: 70, Name: "rubies", TVal: object.TValGold, SVal: 7, Level: 1, Cost: 25},
	{ID: 71, Name: "diamonds", TVal: object.TValGold, SVal: 8, Level: 1, Cost: 30},
	{ID: 72, Name: "emeralds", TVal: object.TValGold, SVal: 9, Level: 1, Cost: 40},
	{ID: 73, Name: "mithril", TVal: object.TValGold, SVal: 10, Level: 1, Cost: 55},
	{ID: 74, Name: "adamantite", TVal: object.TValGold, SVal: 11, Level: 1, Cost: 80},
}
