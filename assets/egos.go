package assets

import (
	"relicforge/internal/flagset"
	"relicforge/internal/object"
)

var egoDefs = []object.Ego{
	// Weapons
	{ID: 1, Name: "(Holy Avenger)", Slot: object.SlotMainHand, Level: 30, Rarity: 12, Rating: 30, Cost: 20000,
		MaxToH: 6, MaxToD: 6, MaxToA: 4, MinPVal: 1, MaxPVal: 4,
		Flags:  flagset.Of(object.TrWis, object.TrSlayEvil, object.TrSlayUndead, object.TrSlayDemon, object.TrSeeInvis, object.TrBlessed),
		Gen:    flagset.Of(object.GenOneSustain)},
	{ID: 2, Name: "(Defender)", Slot: object.SlotMainHand, Level: 40, Rarity: 20, Rating: 25, Cost: 15000,
		MaxToH: 4, MaxToD: 4, MaxToA: 8, MinPVal: 1, MaxPVal: 4,
		Flags: flagset.Of(object.TrStealth, object.TrFreeAct, object.TrSeeInvis, object.TrLevitation, object.TrRegen,
			object.TrResAcid, object.TrResElec, object.TrResFire, object.TrResCold),
		Gen: flagset.Of(object.GenXtraHRes, object.GenOneSustain)},
	{ID: 3, Name: "of Westernesse", Slot: object.SlotMainHand, Level: 20, Rarity: 6, Rating: 20, Cost: 20000,
		MaxToH: 5, MaxToD: 5, MinPVal: 1, MaxPVal: 2,
		Flags: flagset.Of(object.TrStr, object.TrDex, object.TrCon, object.TrSlayOrc, object.TrSlayTroll, object.TrSlayGiant,
			object.TrFreeAct, object.TrSeeInvis)},
	{ID: 4, Name: "of Burning", Slot: object.SlotMainHand, Level: 15, Rarity: 4, Rating: 20, Cost: 3000,
		Flags: flagset.Of(object.TrBrandFire, object.TrResFire, object.TrLite1)},
	{ID: 5, Name: "of Slay Dragon", Slot: object.SlotMainHand, Level: 10, Rarity: 2, Rating: 10, Cost: 1500,
		Flags: flagset.Of(object.TrSlayDragon),
		Gen:   flagset.Of(object.GenXtraDice)},
	{ID: 6, Name: "(Blessed)", Slot: object.SlotMainHand, Level: 1, Rarity: 1, Rating: 20, Cost: 5000,
		MinPVal: 1, MaxPVal: 3,
		Flags:   flagset.Of(object.TrWis, object.TrBlessed),
		Gen:     flagset.Of(object.GenXtraPower)},
	{ID: 7, Name: "(Morgul)", Slot: object.SlotMainHand, Level: 10, Rarity: 10, Rating: 0, Cost: 1,
		MaxToH: 20, MaxToD: 20, MaxToA: 10,
		Flags:  flagset.Of(object.TrSeeInvis, object.TrAggravate, object.TrHoldExp, object.TrTyCurse),
		Gen:    flagset.Of(object.GenCursed, object.GenHeavyCurse, object.GenRandomCurse2)},
	{ID: 8, Name: "of Digging", Slot: object.SlotMainHand, Level: 1, Rarity: 1, Rating: 4, Cost: 500,
		MinPVal: 1, MaxPVal: 4,
		Flags:   flagset.Of(object.TrTunnel, object.TrBrandAcid)},
	// Launchers and ammunition
	{ID: 9, Name: "of Power", Slot: object.SlotBow, Level: 10, Rarity: 2, Rating: 20, Cost: 1500,
		MinToD: 5, MaxToD: 15},
	{ID: 10, Name: "of Accuracy", Slot: object.SlotBow, Level: 10, Rarity: 2, Rating: 20, Cost: 1000,
		MinToH: 5, MaxToH: 15},
	{ID: 11, Name: "of Lothlorien", Slot: object.SlotBow, Level: 30, Rarity: 20, Rating: 30, Cost: 20000,
		MaxToH: 10, MaxToD: 10, MinPVal: 1, MaxPVal: 2,
		Flags:  flagset.Of(object.TrDex, object.TrFreeAct),
		Gen:    flagset.Of(object.GenXtraPower)},
	{ID: 12, Name: "of Slay Evil", Slot: object.SlotAmmo, Level: 10, Rarity: 2, Rating: 10, Cost: 25,
		Flags: flagset.Of(object.TrSlayEvil)},
	{ID: 13, Name: "of Flame", Slot: object.SlotAmmo, Level: 10, Rarity: 2, Rating: 10, Cost: 30,
		Flags: flagset.Of(object.TrBrandFire)},
	{ID: 14, Name: "of Backbiting", Slot: object.SlotAmmo, Level: 1, Rarity: 3, Rating: 0, Cost: 0,
		MaxToH: 10, MaxToD: 10,
		Gen:    flagset.Of(object.GenCursed)},
	// Shields
	{ID: 15, Name: "of Elemental Ward", Slot: object.SlotArm, Level: 15, Rarity: 4, Rating: 15, Cost: 3000,
		MaxToA: 10,
		Gen:    flagset.Of(object.GenXtraERes, object.GenOneSustain)},
	{ID: 16, Name: "of Reflection", Slot: object.SlotArm, Level: 40, Rarity: 16, Rating: 20, Cost: 15000,
		MaxToA: 15,
		Flags:  flagset.Of(object.TrReflect)},
	// Body armour and cloaks
	{ID: 17, Name: "of Resist Fire", Slot: object.SlotBody, Level: 1, Rarity: 1, Rating: 10, Cost: 800,
		MaxToA: 8,
		Flags:  flagset.Of(object.TrResFire)},
	{ID: 18, Name: "of Resistance", Slot: object.SlotBody, Level: 20, Rarity: 4, Rating: 20, Cost: 12500,
		MaxToA: 10,
		Flags:  flagset.Of(object.TrResAcid, object.TrResElec, object.TrResFire, object.TrResCold)},
	{ID: 19, Name: "of Elvenkind", Slot: object.SlotBody, Level: 40, Rarity: 12, Rating: 25, Cost: 15000,
		MaxToA: 10, MinPVal: 1, MaxPVal: 3,
		Flags:  flagset.Of(object.TrStealth, object.TrResAcid, object.TrResElec, object.TrResFire, object.TrResCold),
		Gen:    flagset.Of(object.GenXtraHRes)},
	{ID: 20, Name: "of Dragonkind", Slot: object.SlotBody, Level: 30, Rarity: 10, Rating: 20, Cost: 10000,
		MaxToA: 12,
		Gen:    flagset.Of(object.GenXtraDRes, object.GenXtraLRes)},
	{ID: 21, Name: "of Vulnerability", Slot: object.SlotBody, Level: 1, Rarity: 6, Rating: 0, Cost: 0,
		MaxToA: 20,
		Flags:  flagset.Of(object.TrAggravate),
		Gen:    flagset.Of(object.GenCursed, object.GenRandomCurse1)},
	{ID: 22, Name: "of Protection", Slot: object.SlotOuter, Level: 1, Rarity: 1, Rating: 10, Cost: 500,
		MaxToA: 10},
	{ID: 23, Name: "of Warding", Slot: object.SlotOuter, Level: 25, Rarity: 8, Rating: 15, Cost: 6000,
		MaxToA: 8,
		Gen:    flagset.Of(object.GenXtraRes)},
	{ID: 24, Name: "of Irritation", Slot: object.SlotOuter, Level: 1, Rarity: 4, Rating: 0, Cost: 0,
		MaxToH: 15, MaxToA: 15,
		Flags:  flagset.Of(object.TrAggravate),
		Gen:    flagset.Of(object.GenCursed)},
	// Headgear
	{ID: 25, Name: "of Intelligence", Slot: object.SlotHead, Level: 10, Rarity: 2, Rating: 13, Cost: 500,
		MinPVal: 1, MaxPVal: 2,
		Flags:   flagset.Of(object.TrInt, object.TrSustInt)},
	{ID: 26, Name: "of Seeing", Slot: object.SlotHead, Level: 10, Rarity: 2, Rating: 8, Cost: 2000,
		MinPVal: 1, MaxPVal: 5,
		Flags:   flagset.Of(object.TrSearch, object.TrResBlind, object.TrSeeInvis)},
	{ID: 27, Name: "of Telepathy", Slot: object.SlotHead, Level: 40, Rarity: 10, Rating: 20, Cost: 50000,
		Flags: flagset.Of(object.TrTelepathy)},
	{ID: 28, Name: "of Lordliness", Slot: object.SlotHead, Level: 50, Rarity: 20, Rating: 20, Cost: 30000,
		MinPVal: 1, MaxPVal: 3,
		Flags:   flagset.Of(object.TrWis, object.TrChr),
		Gen:     flagset.Of(object.GenXtraLRes)},
	{ID: 29, Name: "of Stupidity", Slot: object.SlotHead, Level: 1, Rarity: 3, Rating: 0, Cost: 0,
		MaxPVal: 5,
		Flags:   flagset.Of(object.TrInt),
		Gen:     flagset.Of(object.GenCursed)},
	// Gloves and boots
	{ID: 30, Name: "of Free Action", Slot: object.SlotHands, Level: 1, Rarity: 1, Rating: 11, Cost: 1000,
		Flags: flagset.Of(object.TrFreeAct)},
	{ID: 31, Name: "of Power", Slot: object.SlotHands, Level: 30, Rarity: 6, Rating: 22, Cost: 2500,
		MaxToH: 5, MaxToD: 5, MinPVal: 1, MaxPVal: 4,
		Flags:  flagset.Of(object.TrStr),
		Gen:    flagset.Of(object.GenXtraHRes)},
	{ID: 32, Name: "of Clumsiness", Slot: object.SlotHands, Level: 1, Rarity: 3, Rating: 0, Cost: 0,
		MaxPVal: 5,
		Flags:   flagset.Of(object.TrDex),
		Gen:     flagset.Of(object.GenCursed)},
	{ID: 33, Name: "of Speed", Slot: object.SlotFeet, Level: 50, Rarity: 30, Rating: 25, Cost: 200000,
		MinPVal: 1, MaxPVal: 10,
		Flags:   flagset.Of(object.TrSpeed)},
	{ID: 34, Name: "of Levitation", Slot: object.SlotFeet, Level: 1, Rarity: 1, Rating: 7, Cost: 250,
		Flags: flagset.Of(object.TrLevitation)},
	{ID: 35, Name: "of Stealth", Slot: object.SlotFeet, Level: 10, Rarity: 2, Rating: 16, Cost: 500,
		MinPVal: 1, MaxPVal: 3,
		Flags:   flagset.Of(object.TrStealth)},
	{ID: 36, Name: "of Noise", Slot: object.SlotFeet, Level: 1, Rarity: 3, Rating: 0, Cost: 0,
		Flags: flagset.Of(object.TrAggravate),
		Gen:   flagset.Of(object.GenCursed)},
	// Lights
	{ID: 37, Name: "of Brightness", Slot: object.SlotLight, Level: 10, Rarity: 2, Rating: 10, Cost: 1000,
		Flags: flagset.Of(object.TrLite2)},
	{ID: 38, Name: "of True Sight", Slot: object.SlotLight, Level: 20, Rarity: 6, Rating: 15, Cost: 3000,
		Activation: ActMapArea,
		Flags:      flagset.Of(object.TrResBlind, object.TrSeeInvis)},
	{ID: 39, Name: "of Darkness", Slot: object.SlotLight, Level: 1, Rarity: 3, Rating: 0, Cost: 0,
		Flags: flagset.Of(object.TrResDark),
		Gen:   flagset.Of(object.GenCursed)},
}
