package game

import (
	"math/rand"

	"github.com/samdwyer/dungeonkeep/internal/entity"
	"github.com/samdwyer/dungeonkeep/internal/gamedata"
	"github.com/samdwyer/dungeonkeep/internal/world"
)

// level is the Level collaborator handed to the interaction controller.
type level struct {
	dungeon *world.Dungeon
	things  []entity.Thing
	rooms   *gamedata.RoomRegistry
}

func (l *level) MapSize() (int, int) {
	return l.dungeon.Width, l.dungeon.Height
}

func (l *level) Things() []entity.Thing {
	return l.things
}

func (l *level) RoomByID(id int) *gamedata.RoomDef {
	return l.rooms.GetByID(id)
}

// populate claims the first cavern for the player and fills the level.
// Workers come first, then one random creature per other cavern, then the
// heroes in the last cavern and a pile of gold.
func populate(d *world.Dungeon, creatures *gamedata.CreatureRegistry, rng *rand.Rand, imps int) []entity.Thing {
	var things []entity.Thing
	if len(d.Rooms) == 0 {
		return things
	}

	d.ClaimRoom(0, Player)
	workers := creatures.Workers()
	for i := 0; i < imps && len(workers) > 0; i++ {
		x, y := d.RandomPointInRoom(0)
		things = append(things, entity.NewKeeperCreature(workers[i%len(workers)], x, y, Player))
	}

	for i := 1; i < len(d.Rooms)-1; i++ {
		def := creatures.SpawnRandom(rng)
		if def == nil {
			break
		}
		x, y := d.RandomPointInRoom(i)
		things = append(things, entity.NewKeeperCreature(def, x, y, Player))
	}

	if len(d.Rooms) > 1 {
		last := len(d.Rooms) - 1
		x, y := d.Rooms[last].Center()
		things = append(things, entity.NewHeroParty(x, y, 2+rng.Intn(3)))
	}

	x, y := d.RandomPointInRoom(0)
	things = append(things, &entity.GoldPile{X: x, Y: y, Amount: 500})
	return things
}
