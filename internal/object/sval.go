package object

// Sub-kinds the enchanters treat specially.
const (
	SValRingStrength   = 1
	SValRingProtection = 2
	SValRingTeleport   = 3
	SValRingDamage     = 4
	SValRingAccuracy   = 5
	SValRingBarahir    = 6
	SValRingSpeed      = 7
)

const (
	SValAmuletSlowDigest = 1
	SValAmuletResistAcid = 2
	SValAmuletWisdom     = 3
	SValAmuletDoom       = 4
	SValAmuletCarlammas  = 5
)

const (
	SValLightTorch     = 0
	SValLightLantern   = 1
	SValLightGaladriel = 4
	SValLightElendil   = 5
	SValLightThrain    = 6
)
