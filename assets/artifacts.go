package assets

import (
	"relicforge/internal/artifact"
	"relicforge/internal/flagset"
	"relicforge/internal/object"
)

var artifactDefs = []artifact.Def{
	{ID: artifact.Galadriel, Name: "of Galadriel", TVal: object.TValLight, SVal: object.SValLightGaladriel,
		PVal:  3, Weight: 10, Level: 5, Rarity: 1, Cost: 10000, Activation: ActLight,
		Flags: flagset.Of(object.TrLite1, object.TrLite2, object.TrActivate),
		Gen:   flagset.Of(object.GenInstaArt)},
	{ID: artifact.Elendil, Name: "of Elendil", TVal: object.TValLight, SVal: object.SValLightElendil,
		PVal:  2, Weight: 5, Level: 30, Rarity: 3, Cost: 32500, Activation: ActMapArea,
		Flags: flagset.Of(object.TrLite2, object.TrSeeInvis, object.TrActivate),
		Gen:   flagset.Of(object.GenInstaArt)},
	{ID: artifact.Thrain, Name: "of Thrain", TVal: object.TValLight, SVal: object.SValLightThrain,
		PVal:  3, Weight: 5, Level: 50, Rarity: 10, Cost: 60000, Activation: ActDetectAll,
		Flags: flagset.Of(object.TrLite2, object.TrResDark, object.TrSeeInvis, object.TrTelepathy, object.TrActivate),
		Gen:   flagset.Of(object.GenInstaArt, object.GenXtraHRes)},
	{ID: artifact.Carlammas, Name: "of Carlammas", TVal: object.TValAmulet, SVal: object.SValAmuletCarlammas,
		PVal:  2, Weight: 3, Level: 50, Rarity: 10, Cost: 60000, Activation: ActProtEvil,
		Flags: flagset.Of(object.TrCon, object.TrResFire, object.TrActivate),
		Gen:   flagset.Of(object.GenInstaArt)},
	{ID: artifact.Barahir, Name: "of Barahir", TVal: object.TValRing, SVal: object.SValRingBarahir,
		PVal:  1, Weight: 2, Level: 50, Rarity: 25, Cost: 65000,
		Flags: flagset.Of(object.TrStr, object.TrInt, object.TrWis, object.TrDex, object.TrCon, object.TrResPois, object.TrResDark),
		Gen:   flagset.Of(object.GenInstaArt)},
	{ID: artifact.Ringil, Name: "'Ringil'", TVal: object.TValSword, SVal: 3,
		PVal: 10, DD: 4, DS: 5, ToH: 22, ToD: 25, ToA: 0, Weight: 130, Level: 60, Rarity: 40, Cost: 300000, Activation: ActFrostBall,
		Flags: flagset.Of(object.TrSpeed, object.TrSlayEvil, object.TrSlayUndead, object.TrBrandCold, object.TrResCold,
			object.TrLite1, object.TrSeeInvis, object.TrFreeAct, object.TrRegen, object.TrActivate),
		Gen: flagset.Of(object.GenXtraPower)},
	{ID: artifact.Anduril, Name: "'Anduril'", TVal: object.TValSword, SVal: 3,
		PVal: 4, DD: 3, DS: 5, ToH: 10, ToD: 15, ToA: 10, Weight: 130, Level: 40, Rarity: 20, Cost: 80000, Activation: ActFireBall,
		Flags: flagset.Of(object.TrStr, object.TrDex, object.TrSlayEvil, object.TrSlayTroll, object.TrSlayOrc,
			object.TrBrandFire, object.TrResFire, object.TrSeeInvis, object.TrFreeAct, object.TrActivate)},
	{ID: artifact.Sting, Name: "'Sting'", TVal: object.TValSword, SVal: 2,
		PVal: 2, DD: 1, DS: 6, ToH: 7, ToD: 8, Weight: 75, Level: 20, Rarity: 15, Cost: 100000,
		Flags: flagset.Of(object.TrStr, object.TrDex, object.TrCon, object.TrSpeed, object.TrSlayOrc, object.TrSlayEvil,
			object.TrLite1, object.TrSeeInvis, object.TrFreeAct),
		Gen: flagset.Of(object.GenXtraHRes)},
	{ID: artifact.Grond, Name: "'Grond'", TVal: object.TValHafted, SVal: 4,
		DD:    9, DS: 9, ToH: 5, ToD: 25, ToA: 10, Weight: 1000, Level: 100, Rarity: 1, Cost: 500000,
		Flags: flagset.Of(object.TrKillDragon, object.TrSlayEvil, object.TrImpact, object.TrAggravate),
		Gen:   flagset.Of(object.GenInstaArt, object.GenQuestItem, object.GenPermaCurse, object.GenHeavyCurse)},
	{ID: artifact.Morgoth, Name: "of Morgoth", TVal: object.TValCrown, SVal: 2,
		PVal: 125, AC: 0, ToA: 50, Weight: 20, Level: 100, Rarity: 1, Cost: 10000000,
		Flags: flagset.Of(object.TrStr, object.TrInt, object.TrWis, object.TrDex, object.TrCon, object.TrChr,
			object.TrTelepathy, object.TrAggravate),
		Gen: flagset.Of(object.GenInstaArt, object.GenQuestItem, object.GenPermaCurse, object.GenHeavyCurse)},
	{ID: artifact.Terror, Name: "of Terror", TVal: object.TValHelm, SVal: 2,
		PVal:  3, AC: 3, ToA: 12, Weight: 20, Level: 40, Rarity: 20, Cost: 40000,
		Flags: flagset.Of(object.TrStr, object.TrDex, object.TrCon, object.TrResAcid, object.TrResFire)},
	{ID: artifact.Muramasa, Name: "'Muramasa'", TVal: object.TValSword, SVal: 4,
		PVal:  4, DD: 4, DS: 5, ToH: 20, ToD: 20, Weight: 120, Level: 60, Rarity: 30, Cost: 100000,
		Flags: flagset.Of(object.TrStr, object.TrCon, object.TrSlayHuman, object.TrVorpal, object.TrResFear)},
	{ID: artifact.Robinton, Name: "of Robinton", TVal: object.TValInstrument, SVal: 1,
		PVal:  3, Weight: 60, Level: 30, Rarity: 20, Cost: 30000, Activation: ActMusic,
		Flags: flagset.Of(object.TrChr, object.TrResSound, object.TrActivate),
		Gen:   flagset.Of(object.GenInstaArt)},
	{ID: artifact.Xiaolong, Name: "of Xiaolong", TVal: object.TValHafted, SVal: 2,
		PVal:  2, DD: 2, DS: 5, ToH: 12, ToD: 12, Weight: 60, Level: 15, Rarity: 10, Cost: 7000,
		Flags: flagset.Of(object.TrDex, object.TrSpeed, object.TrResFear)},
	{ID: artifact.BloodyMoon, Name: "'Bloody Moon'", TVal: object.TValPolearm, SVal: 2,
		PVal:  3, DD: 5, DS: 5, ToH: 25, ToD: 25, Weight: 250, Level: 70, Rarity: 30, Cost: 200000,
		Flags: flagset.Of(object.TrStr, object.TrCon, object.TrRegen, object.TrHoldExp)},
	{ID: artifact.HeavenlyMaiden, Name: "of the Heavenly Maiden", TVal: object.TValCloak, SVal: 2,
		PVal:  3, AC: 4, ToA: 15, Weight: 5, Level: 40, Rarity: 20, Cost: 40000,
		Flags: flagset.Of(object.TrChr, object.TrStealth, object.TrLevitation, object.TrResLite)},
	{ID: artifact.Milim, Name: "of Milim", TVal: object.TValSoftArmor, SVal: 3,
		PVal:  1, AC: 0, ToA: 20, Weight: 5, Level: 20, Rarity: 15, Cost: 20000,
		Flags: flagset.Of(object.TrChr, object.TrResAcid, object.TrResElec, object.TrResFire, object.TrResCold)},
	{ID: artifact.Belegennon, Name: "of Belegennon", TVal: object.TValHardArmor, SVal: 2,
		PVal:  4, AC: 28, ToA: 20, ToH: -1, Weight: 150, Level: 40, Rarity: 10, Cost: 105000, Activation: ActPhase,
		Flags: flagset.Of(object.TrStealth, object.TrResAcid, object.TrResElec, object.TrResFire, object.TrResCold, object.TrActivate),
		Gen:   flagset.Of(object.GenXtraPower)},
	{ID: artifact.Colluin, Name: "of Colluin", TVal: object.TValCloak, SVal: 1,
		AC:    1, ToA: 15, Weight: 10, Level: 20, Rarity: 3, Cost: 10000, Activation: ActResistAll,
		Flags: flagset.Of(object.TrResAcid, object.TrResElec, object.TrResFire, object.TrResCold, object.TrResPois, object.TrActivate),
		Gen:   flagset.Of(object.GenXtraHRes)},
	{ID: artifact.Cammithrim, Name: "of Cammithrim", TVal: object.TValGloves, SVal: 1,
		AC:    1, ToA: 10, Weight: 5, Level: 10, Rarity: 3, Cost: 2000, Activation: ActMissile,
		Flags: flagset.Of(object.TrFreeAct, object.TrSustCon, object.TrResLite, object.TrLite1, object.TrActivate)},
	{ID: artifact.Feanor, Name: "of Feanor", TVal: object.TValBoots, SVal: 2,
		PVal:  15, AC: 3, ToA: 20, Weight: 40, Level: 40, Rarity: 120, Cost: 130000, Activation: ActSpeed,
		Flags: flagset.Of(object.TrStealth, object.TrSpeed, object.TrResNexus, object.TrActivate),
		Gen:   flagset.Of(object.GenXtraPower)},
	{ID: artifact.Holhenneth, Name: "of Holhenneth", TVal: object.TValHelm, SVal: 1,
		PVal:  2, AC: 2, ToA: 10, Weight: 15, Level: 20, Rarity: 5, Cost: 100000, Activation: ActDetectAll,
		Flags: flagset.Of(object.TrInt, object.TrWis, object.TrSearch, object.TrResBlind, object.TrSeeInvis, object.TrActivate),
		Gen:   flagset.Of(object.GenXtraHRes)},
	{ID: artifact.Thalkettoth, Name: "of Thalkettoth", TVal: object.TValSoftArmor, SVal: 1,
		PVal:  3, AC: 8, ToA: 25, Weight: 80, Level: 20, Rarity: 6, Cost: 25000,
		Flags: flagset.Of(object.TrDex, object.TrResAcid, object.TrResShards),
		Gen:   flagset.Of(object.GenXtraResOrPower)},
	{ID: artifact.Gurthang, Name: "'Gurthang'", TVal: object.TValSword, SVal: 5,
		PVal:  2, DD: 3, DS: 6, ToH: 13, ToD: 17, Weight: 280, Level: 30, Rarity: 15, Cost: 100000,
		Flags: flagset.Of(object.TrStr, object.TrSlayDragon, object.TrKillTroll, object.TrFreeAct),
		Gen:   flagset.Of(object.GenXtraDice)},
	{ID: artifact.Mormegil, Name: "'Mormegil'", TVal: object.TValSword, SVal: 3,
		PVal:  -10, DD: 6, DS: 6, ToH: -40, ToD: -60, Weight: 130, Level: 40, Rarity: 12, Cost: 0,
		Flags: flagset.Of(object.TrSpeed, object.TrAggravate, object.TrDrainExp, object.TrNoTele),
		Gen:   flagset.Of(object.GenCursed, object.GenHeavyCurse, object.GenRandomCurse2)},
	{ID: artifact.Razorback, Name: "'Razorback'", TVal: object.TValDragArmor, SVal: 1,
		AC:    30, ToA: 25, Weight: 400, Level: 75, Rarity: 40, Cost: 400000, Activation: ActLightning,
		Flags: flagset.Of(object.TrImElec, object.TrResElec, object.TrResLite, object.TrResDark, object.TrAggravate, object.TrActivate),
		Gen:   flagset.Of(object.GenXtraRes)},
	{ID: artifact.Belthronding, Name: "of Belthronding", TVal: object.TValBow, SVal: 2,
		PVal:  3, ToH: 20, ToD: 22, Weight: 40, Level: 40, Rarity: 20, Cost: 35000,
		Flags: flagset.Of(object.TrDex, object.TrStealth, object.TrSpeed, object.TrResDisen),
		Gen:   flagset.Of(object.GenXtraResOrPower)},
}
