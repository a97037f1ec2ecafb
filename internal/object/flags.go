package object

import "relicforge/internal/flagset"

// TrFlag is an ability, resistance, slay or drawback carried by an item.
type TrFlag uint8

const (
	TrStr TrFlag = iota
	TrInt
	TrWis
	TrDex
	TrCon
	TrChr
	TrMagicMastery
	TrStealth
	TrSearch
	TrInfra
	TrTunnel
	TrSpeed
	TrBlows
	TrChaotic
	TrVampiric
	TrSlayAnimal
	TrSlayEvil
	TrSlayUndead
	TrSlayDemon
	TrSlayOrc
	TrSlayTroll
	TrSlayGiant
	TrSlayDragon
	TrSlayHuman
	TrKillDragon
	TrKillAnimal
	TrKillEvil
	TrKillUndead
	TrKillDemon
	TrKillOrc
	TrKillTroll
	TrKillGiant
	TrKillHuman
	TrVorpal
	TrImpact
	TrBrandPois
	TrBrandAcid
	TrBrandElec
	TrBrandFire
	TrBrandCold
	TrSustStr
	TrSustInt
	TrSustWis
	TrSustDex
	TrSustCon
	TrSustChr
	TrImAcid
	TrImElec
	TrImFire
	TrImCold
	TrReflect
	TrFreeAct
	TrHoldExp
	TrResAcid
	TrResElec
	TrResFire
	TrResCold
	TrResPois
	TrResFear
	TrResLite
	TrResDark
	TrResBlind
	TrResConf
	TrResSound
	TrResShards
	TrResNether
	TrResNexus
	TrResChaos
	TrResDisen
	TrShElec
	TrShFire
	TrShCold
	TrSeeInvis
	TrTelepathy
	TrSlowDigest
	TrRegen
	TrLevitation
	TrLite1
	TrLite2
	TrWarning
	TrNoMagic
	TrNoTele
	TrDecMana
	TrTyCurse
	TrAggravate
	TrDrainExp
	TrTeleport
	TrActivate
	TrEasySpell
	TrThrow
	TrBlessed
	TrRiding
	trFlagCount
)

// StatFlags are the six stat-bonus flags in stat order.
var StatFlags = [...]TrFlag{TrStr, TrInt, TrWis, TrDex, TrCon, TrChr}

// SustainFlags are the six sustain flags in stat order.
var SustainFlags = [...]TrFlag{TrSustStr, TrSustInt, TrSustWis, TrSustDex, TrSustCon, TrSustChr}

// CurseFlag is a curse carried by an item.
type CurseFlag uint8

const (
	CurseCursed CurseFlag = iota
	CurseHeavy
	CursePerma
	CurseTy
	CurseAggravate
	CurseDrainExp
	CurseSlowRegen
	CurseAddLow
	CurseAddHeavy
	CurseCallAnimal
	CurseCallDemon
	CurseCallDragon
	CurseCowardice
	CurseTeleport
	CurseLowMelee
	CurseLowAC
	CurseHardSpell
	CurseFastDigest
	CurseDrainHP
	CurseDrainMana
	CurseCallUndead
	CurseBersRage
	CursePersistent
	CurseVulnerable
	curseFlagCount
)

// FirstRandomCurse is the lowest curse a random pick may return; the three
// below it are the base curse levels.
const FirstRandomCurse = CurseTy

// CurseFlagCount is the number of defined curse flags.
const CurseFlagCount = int(curseFlagCount)

// GenFlag tells the generator how to enchant an instance. The same vocabulary
// is used by base kinds, egos and fixed artifacts.
type GenFlag uint8

const (
	GenCursed GenFlag = iota
	GenHeavyCurse
	GenPermaCurse
	GenRandomCurse0
	GenRandomCurse1
	GenRandomCurse2
	GenXtraPower
	GenXtraHRes
	GenXtraERes
	GenXtraLRes
	GenXtraDRes
	GenXtraRes
	GenXtraResOrPower
	GenXtraDice
	GenOneSustain
	GenInstaArt
	GenQuestItem
)

// IdentFlag records identification state on an item.
type IdentFlag uint8

const (
	IdentSense IdentFlag = iota
	IdentKnown
	IdentBroken
)

type (
	TrFlags    = flagset.Set[TrFlag]
	CurseFlags = flagset.Set[CurseFlag]
	GenFlags   = flagset.Set[GenFlag]
	IdentFlags = flagset.Set[IdentFlag]
)

// trNames is indexed by TrFlag.
var trNames = [...]string{
	"STR", "INT", "WIS", "DEX", "CON", "CHR", "MAGIC_MASTERY", "STEALTH",
	"SEARCH", "INFRA", "TUNNEL", "SPEED", "BLOWS", "CHAOTIC", "VAMPIRIC",
	"SLAY_ANIMAL", "SLAY_EVIL", "SLAY_UNDEAD", "SLAY_DEMON", "SLAY_ORC",
	"SLAY_TROLL", "SLAY_GIANT", "SLAY_DRAGON", "SLAY_HUMAN", "KILL_DRAGON",
	"KILL_ANIMAL", "KILL_EVIL", "KILL_UNDEAD", "KILL_DEMON", "KILL_ORC",
	"KILL_TROLL", "KILL_GIANT", "KILL_HUMAN", "VORPAL", "IMPACT", "BRAND_POIS",
	"BRAND_ACID", "BRAND_ELEC", "BRAND_FIRE", "BRAND_COLD", "SUST_STR",
	"SUST_INT", "SUST_WIS", "SUST_DEX", "SUST_CON", "SUST_CHR", "IM_ACID",
	"IM_ELEC", "IM_FIRE", "IM_COLD", "REFLECT", "FREE_ACT", "HOLD_EXP",
	"RES_ACID", "RES_ELEC", "RES_FIRE", "RES_COLD", "RES_POIS", "RES_FEAR",
	"RES_LITE", "RES_DARK", "RES_BLIND", "RES_CONF", "RES_SOUND", "RES_SHARDS",
	"RES_NETHER", "RES_NEXUS", "RES_CHAOS", "RES_DISEN", "SH_ELEC", "SH_FIRE",
	"SH_COLD", "SEE_INVIS", "TELEPATHY", "SLOW_DIGEST", "REGEN", "LEVITATION",
	"LITE_1", "LITE_2", "WARNING", "NO_MAGIC", "NO_TELE", "DEC_MANA", "TY_CURSE",
	"AGGRAVATE", "DRAIN_EXP", "TELEPORT", "ACTIVATE", "EASY_SPELL", "THROW",
	"BLESSED", "RIDING",
}

func (f TrFlag) String() string {
	if int(f) < len(trNames) {
		return trNames[f]
	}
	return "TR_UNKNOWN"
}

var curseNames = [...]string{
	"CURSED", "HEAVY_CURSE", "PERMA_CURSE", "TY_CURSE", "AGGRAVATE", "DRAIN_EXP",
	"SLOW_REGEN", "ADD_L_CURSE", "ADD_H_CURSE", "CALL_ANIMAL", "CALL_DEMON",
	"CALL_DRAGON", "COWARDICE", "TELEPORT", "LOW_MELEE", "LOW_AC", "HARD_SPELL",
	"FAST_DIGEST", "DRAIN_HP", "DRAIN_MANA", "CALL_UNDEAD", "BERS_RAGE",
	"PERSISTENT_CURSE", "VUL_CURSE",
}

func (c CurseFlag) String() string {
	if int(c) < len(curseNames) {
		return curseNames[c]
	}
	return "CURSE_UNKNOWN"
}
