package assets

// Activation effects carried by artifacts and egos.
const (
	ActLight = iota + 1
	ActMapArea
	ActDetectAll
	ActProtEvil
	ActFrostBall
	ActFireBall
	ActMusic
	ActPhase
	ActResistAll
	ActMissile
	ActSpeed
	ActLightning
)

var activationNames = [...]string{
	"", "light area", "map area", "detection", "protection from evil",
	"frost ball", "fire ball", "song of renewal", "phase door", "resistance",
	"magic missile", "haste self", "lightning bolt",
}

// ActivationName describes an activation, or returns "" for none.
func ActivationName(id int) string {
	if id > 0 && id < len(activationNames) {
		return activationNames[id]
	}
	return ""
}
