package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"relicforge/assets"
	"relicforge/internal/artifact"
	"relicforge/internal/component"
	"relicforge/internal/describe"
	"relicforge/internal/dungeon"
	"relicforge/internal/ecs"
	"relicforge/internal/factory"
	"relicforge/internal/gamemap"
	"relicforge/internal/generate"
	"relicforge/internal/magic"
	"relicforge/internal/objgen"
	"relicforge/internal/object"
	"relicforge/internal/player"
	"relicforge/internal/rng"
)

const (
	fovRadius   = 8
	maxMessages = 50
)

// Options configures a Session.
type Options struct {
	Dungeon *dungeon.Def
	Depth   int
	Seed    int64
	Player  *player.Player
	Class   string // display name of the class preset
}

// Session is one isolated game: its own artifact registry, random stream,
// object maker and current floor. It holds no screen and is driven by Game
// or by tests.
type Session struct {
	rnd     *rand.Rand
	dice    *rng.Dice
	reg     *artifact.Registry
	maker   *objgen.Maker
	player  *player.Player
	dungeon *dungeon.Def

	depth    int
	floorID  int
	gmap     *gamemap.GameMap
	world    *ecs.World
	x, y     int
	messages []string
	runLog   RunLog
}

// NewSession builds a session and generates its first floor.
func NewSession(opts Options) *Session {
	rnd := rand.New(rand.NewSource(opts.Seed))
	d := rng.New(rnd)
	reg := assets.NewArtifactRegistry()
	applier := magic.New(assets.Kinds(), assets.Egos(), reg, opts.Player, d)
	s := &Session{
		rnd:     rnd,
		dice:    d,
		reg:     reg,
		maker:   objgen.NewMaker(assets.Kinds(), reg, applier, opts.Player, d),
		player:  opts.Player,
		dungeon: opts.Dungeon,
		runLog: RunLog{
			Class:   opts.Class,
			Dungeon: opts.Dungeon.Name,
		},
	}
	s.EnterFloor(opts.Depth)
	return s
}

// EnterFloor generates and stocks a fresh floor at depth, clamped to the
// dungeon's range.
func (s *Session) EnterFloor(depth int) {
	depth = max(depth, s.dungeon.MinDepth)
	if s.dungeon.MaxDepth > 0 {
		depth = min(depth, s.dungeon.MaxDepth)
	}
	s.depth = depth
	s.floorID++

	cfg := levelConfig(depth, s.rnd)
	gm, px, py := generate.Generate(cfg)
	if depth > s.dungeon.MinDepth {
		gm.Set(px, py, gamemap.MakeStairsUp())
	}
	s.gmap = gm
	s.world = ecs.NewBoundedWorld(floorCapacity)
	s.x, s.y = px, py

	s.maker.Enter(objgen.Level{
		Floor: dungeon.NewFloor(s.dungeon, depth, s.floorID),
		Map:   gm,
		World: s.world,
	})
	before := len(s.reg.Generated())
	objects, gold := s.maker.Stock(generate.Populate(gm, cfg))
	s.survey()

	s.runLog.FloorsVisited++
	s.runLog.DeepestDepth = max(s.runLog.DeepestDepth, depth)
	s.gmap.UpdateFOV(s.x, s.y, fovRadius)

	s.addMessage(fmt.Sprintf("You enter %s at %d ft.", s.dungeon.Name, depth*50))
	if lore := assets.DungeonLore[s.dungeon.Name]; len(lore) > 0 {
		s.addMessage(lore[s.rnd.Intn(len(lore))])
	}
	if found := len(s.reg.Generated()) - before; found > 0 {
		s.addMessage(fmt.Sprintf("You sense %d ancient power(s) on this level.", found))
	}
	slog.Debug("floor entered",
		"dungeon", s.dungeon.Name, "depth", depth, "floor", s.floorID,
		"objects", objects, "gold", gold)
}

// survey adds the floor's objects to the run log.
func (s *Session) survey() {
	for _, id := range s.world.Query(component.CObject) {
		it := s.world.Get(id, component.CObject).(component.Object).Item
		switch {
		case it.TVal == object.TValGold:
			s.runLog.GoldSeen++
			continue
		case it.IsFixedArtifact():
			s.runLog.Artifacts = append(s.runLog.Artifacts, describe.Name(&it))
		case it.IsEgo():
			s.runLog.EgosSeen++
		}
		s.runLog.ObjectsSeen++
	}
}

// Move steps the explorer by (dx, dy) and reports whether it moved.
func (s *Session) Move(dx, dy int) bool {
	nx, ny := s.x+dx, s.y+dy
	if !s.gmap.IsWalkable(nx, ny) {
		return false
	}
	s.x, s.y = nx, ny
	s.gmap.UpdateFOV(s.x, s.y, fovRadius)
	if _, it := factory.ItemAt(s.world, s.x, s.y); it != nil {
		s.addMessage("You see " + describe.Name(it) + ".")
	}
	return true
}

// Descend takes the stairs down if the explorer stands on them.
func (s *Session) Descend() bool {
	if s.gmap.At(s.x, s.y).Kind != gamemap.TileStairsDown {
		s.addMessage("There are no stairs down here.")
		return false
	}
	if s.dungeon.MaxDepth > 0 && s.depth >= s.dungeon.MaxDepth {
		s.addMessage("There is nowhere further to descend.")
		return false
	}
	s.EnterFloor(s.depth + 1)
	return true
}

// Ascend takes the stairs up if the explorer stands on them.
func (s *Session) Ascend() bool {
	if s.gmap.At(s.x, s.y).Kind != gamemap.TileStairsUp {
		s.addMessage("There are no stairs up here.")
		return false
	}
	s.EnterFloor(s.depth - 1)
	return true
}

// Regenerate replaces the current floor with a new one at the same depth.
// Artifacts left behind stay generated.
func (s *Session) Regenerate() { s.EnterFloor(s.depth) }

// Pickup removes the object under the explorer from the floor.
func (s *Session) Pickup() bool {
	id, it := factory.ItemAt(s.world, s.x, s.y)
	if it == nil {
		s.addMessage("There is nothing here to pick up.")
		return false
	}
	name := describe.Name(it)
	s.world.DestroyEntity(id)
	s.runLog.PickedUp = append(s.runLog.PickedUp, name)
	s.addMessage("You have " + name + ".")
	return true
}

// ConjureArtifact drops the first fixed artifact that has not been
// generated yet next to the explorer.
func (s *Session) ConjureArtifact() bool {
	for _, id := range s.reg.IDs() {
		if s.reg.IsGenerated(id) {
			continue
		}
		if !s.maker.CreateNamedArt(id, s.x, s.y) {
			continue
		}
		title := artifactTitle(s.reg.Def(id))
		s.addMessage("The forge answers: " + title + " appears nearby.")
		s.runLog.Artifacts = append(s.runLog.Artifacts, title)
		return true
	}
	s.addMessage("The forge is silent.")
	return false
}

func artifactTitle(def *artifact.Def) string {
	if k, ok := assets.Kinds().Lookup(def.TVal, def.SVal); ok {
		return "the " + k.Name + " " + def.Name
	}
	return def.Name
}

// Underfoot returns the item under the explorer, if any.
func (s *Session) Underfoot() *object.Item {
	_, it := factory.ItemAt(s.world, s.x, s.y)
	return it
}

func (s *Session) Registry() *artifact.Registry { return s.reg }
func (s *Session) Map() *gamemap.GameMap        { return s.gmap }
func (s *Session) World() *ecs.World            { return s.world }
func (s *Session) Depth() int                   { return s.depth }
func (s *Session) FloorID() int                 { return s.floorID }
func (s *Session) Position() (int, int)         { return s.x, s.y }
func (s *Session) Messages() []string           { return s.messages }
func (s *Session) RunLog() RunLog               { return s.runLog }

func (s *Session) addMessage(msg string) {
	s.messages = append(s.messages, msg)
	if len(s.messages) > maxMessages {
		s.messages = s.messages[len(s.messages)-maxMessages:]
	}
}
