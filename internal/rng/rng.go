// Package rng provides the dice primitives used by item generation.
//
// Every roll goes through a Dice so that a game instance can own its random
// stream and tests can replace it with a scripted one.
package rng

import (
	"math"
	"math/rand"
)

// Source is the subset of *rand.Rand that Dice needs.
type Source interface {
	Intn(n int) int
	NormFloat64() float64
}

// Dice rolls against a Source.
type Dice struct {
	src Source
}

// New wraps src.
func New(src Source) *Dice {
	return &Dice{src: src}
}

// NewSeeded returns Dice backed by a math/rand generator seeded with seed.
func NewSeeded(seed int64) *Dice {
	return New(rand.New(rand.NewSource(seed)))
}

// RandInt0 returns a value in [0, n). Non-positive n yields 0.
func (d *Dice) RandInt0(n int) int {
	if n <= 0 {
		return 0
	}
	return d.src.Intn(n)
}

// RandInt1 returns a value in [1, n]. Non-positive n yields 1.
func (d *Dice) RandInt1(n int) int {
	return 1 + d.RandInt0(n)
}

// RandRange returns a value in [lo, hi].
func (d *Dice) RandRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + d.RandInt0(1+hi-lo)
}

// OneIn reports success of a 1-in-n roll. n of 1 or less always succeeds.
func (d *Dice) OneIn(n int) bool {
	if n <= 1 {
		return true
	}
	return d.RandInt0(n) == 0
}

// Magik reports success of a p-percent roll.
func (d *Dice) Magik(p int) bool {
	return d.RandInt0(100) < p
}

// Roll sums num dice of the given sides.
func (d *Dice) Roll(num, sides int) int {
	sum := 0
	for range num {
		sum += d.RandInt1(sides)
	}
	return sum
}

// Normal returns a normally distributed integer around mean.
func (d *Dice) Normal(mean, stand int) int {
	if stand < 1 {
		return mean
	}
	return mean + int(math.Round(d.src.NormFloat64()*float64(stand)))
}

// MBonus returns a bonus in [0, max] that grows with level relative to
// maxDepth, spread by a normal distribution.
func (d *Dice) MBonus(max, level, maxDepth int) int {
	if maxDepth < 1 {
		maxDepth = 1
	}
	if level > maxDepth-1 {
		level = maxDepth - 1
	}
	if level < 0 {
		level = 0
	}
	bonus := max * level / maxDepth
	if d.RandInt0(maxDepth) < max*level%maxDepth {
		bonus++
	}
	stand := max / 4
	if d.RandInt0(4) < max%4 {
		stand++
	}
	value := d.Normal(bonus, stand)
	if value < 0 {
		return 0
	}
	if value > max {
		return max
	}
	return value
}
