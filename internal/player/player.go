// Package player holds the character traits item generation depends on.
package player

import (
	"fmt"
	"strings"

	"relicforge/internal/flagset"
)

type Class uint8

const (
	Warrior Class = iota
	Mage
	Priest
	Rogue
	Ranger
	Paladin
	WarriorMage
	ChaosWarrior
	Monk
	Mindcrafter
	HighMage
	Tourist
	Imitator
	BeastMaster
	Sorcerer
	Archer
	MagicEater
	Bard
	RedMage
	Samurai
	ForceTrainer
	BlueMage
	Cavalry
	Berserker
	Smith
	Mirror
	Ninja
	Sniper
	Elementalist
	classCount
)

var classNames = [...]string{
	"warrior", "mage", "priest", "rogue", "ranger", "paladin", "warrior-mage",
	"chaos-warrior", "monk", "mindcrafter", "high-mage", "tourist", "imitator",
	"beastmaster", "sorcerer", "archer", "magic-eater", "bard", "red-mage",
	"samurai", "force-trainer", "blue-mage", "cavalry", "berserker", "smith",
	"mirror-master", "ninja", "sniper", "elementalist",
}

func (c Class) String() string {
	if c < classCount {
		return classNames[c]
	}
	return fmt.Sprintf("class(%d)", uint8(c))
}

type Sex uint8

const (
	Female Sex = iota
	Male
)

func (s Sex) String() string {
	if s == Female {
		return "female"
	}
	return "male"
}

type Personality uint8

const (
	Ordinary Personality = iota
	Mighty
	Shrewd
	Pious
	Nimble
	Fearless
	Combat
	Lazy
	Sexy
	Lucky
	Patient
	Munchkin
	Chargeman
	personalityCount
)

var personalityNames = [...]string{
	"ordinary", "mighty", "shrewd", "pious", "nimble", "fearless", "combat",
	"lazy", "sexy", "lucky", "patient", "munchkin", "chargeman",
}

func (p Personality) String() string {
	if p < personalityCount {
		return personalityNames[p]
	}
	return fmt.Sprintf("personality(%d)", uint8(p))
}

// Mutation is an acquired trait that affects luck.
type Mutation uint8

const (
	GoodLuck Mutation = iota
	BadLuck
)

// Player is the wielder an item is generated for.
type Player struct {
	Name        string
	Class       Class
	Sex         Sex
	Personality Personality
	Level       int
	Mutations   flagset.Set[Mutation]
}

// HasGoodLuck reports whether generation should be biased upward.
func (p *Player) HasGoodLuck() bool {
	return p.Personality == Lucky || p.Mutations.Has(GoodLuck)
}

// HasBadLuck reports whether generation should be biased downward.
func (p *Player) HasBadLuck() bool {
	return p.Mutations.Has(BadLuck)
}

func (p *Player) IsMunchkin() bool { return p.Personality == Munchkin }

// ParseClass resolves a class by its lower-case name.
func ParseClass(name string) (Class, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range classNames {
		if n == name {
			return Class(i), nil
		}
	}
	return 0, fmt.Errorf("unknown class %q", name)
}

// ParsePersonality resolves a personality by its lower-case name.
func ParsePersonality(name string) (Personality, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range personalityNames {
		if n == name {
			return Personality(i), nil
		}
	}
	return 0, fmt.Errorf("unknown personality %q", name)
}

// ParseSex resolves "female" or "male".
func ParseSex(name string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "female", "f":
		return Female, nil
	case "male", "m":
		return Male, nil
	}
	return 0, fmt.Errorf("unknown sex %q", name)
}
