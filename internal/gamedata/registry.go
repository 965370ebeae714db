package gamedata

import (
	"errors"
	"math/rand"
)

// RoomRegistry holds loaded room definitions keyed by id.
type RoomRegistry struct {
	rooms map[int]*RoomDef
	all   []RoomDef
}

// NewRoomRegistry creates a registry from loaded room definitions.
func NewRoomRegistry(rooms []RoomDef) *RoomRegistry {
	registry := &RoomRegistry{
		rooms: make(map[int]*RoomDef, len(rooms)),
		all:   rooms,
	}
	for i := range rooms {
		registry.rooms[rooms[i].ID] = &rooms[i]
	}
	return registry
}

// LoadRoomRegistry loads and creates a registry from the embedded rooms.json.
func LoadRoomRegistry() (*RoomRegistry, error) {
	rooms, err := LoadRooms()
	if err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return nil, errors.New("no rooms loaded from rooms.json")
	}
	return NewRoomRegistry(rooms), nil
}

// MustLoadRoomRegistry loads a registry, panicking on error.
func MustLoadRoomRegistry() *RoomRegistry {
	registry, err := LoadRoomRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the room definition with the given id, or nil if not found.
func (r *RoomRegistry) GetByID(id int) *RoomDef {
	return r.rooms[id]
}

// All returns all room definitions in file order.
func (r *RoomRegistry) All() []RoomDef {
	return r.all
}

// Count returns the number of room types in the registry.
func (r *RoomRegistry) Count() int {
	return len(r.all)
}

// =============================================================================
// CreatureRegistry
// =============================================================================

// CreatureRegistry holds loaded creature definitions and provides spawning utilities.
type CreatureRegistry struct {
	creatures   []CreatureDef
	totalWeight int
}

// NewCreatureRegistry creates a registry from loaded creature definitions.
func NewCreatureRegistry(creatures []CreatureDef) *CreatureRegistry {
	totalWeight := 0
	for _, c := range creatures {
		totalWeight += c.SpawnWeight
	}
	return &CreatureRegistry{
		creatures:   creatures,
		totalWeight: totalWeight,
	}
}

// LoadCreatureRegistry loads and creates a registry from the embedded creatures.json.
func LoadCreatureRegistry() (*CreatureRegistry, error) {
	creatures, err := LoadCreatures()
	if err != nil {
		return nil, err
	}
	if len(creatures) == 0 {
		return nil, errors.New("no creatures loaded from creatures.json")
	}
	return NewCreatureRegistry(creatures), nil
}

// MustLoadCreatureRegistry loads a registry, panicking on error.
func MustLoadCreatureRegistry() *CreatureRegistry {
	registry, err := LoadCreatureRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom selects a random creature definition using weighted probability.
// Creatures with a zero spawnWeight are never picked.
func (r *CreatureRegistry) SpawnRandom(rng *rand.Rand) *CreatureDef {
	if r.totalWeight <= 0 || len(r.creatures) == 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)
	cumulative := 0
	for i := range r.creatures {
		cumulative += r.creatures[i].SpawnWeight
		if roll < cumulative {
			return &r.creatures[i]
		}
	}

	return &r.creatures[len(r.creatures)-1]
}

// GetByID returns the creature definition with the given ID, or nil if not found.
func (r *CreatureRegistry) GetByID(id string) *CreatureDef {
	for i := range r.creatures {
		if r.creatures[i].ID == id {
			return &r.creatures[i]
		}
	}
	return nil
}

// Workers returns the definitions of creatures that dig.
func (r *CreatureRegistry) Workers() []*CreatureDef {
	var out []*CreatureDef
	for i := range r.creatures {
		if r.creatures[i].Worker {
			out = append(out, &r.creatures[i])
		}
	}
	return out
}

// Count returns the number of creature types in the registry.
func (r *CreatureRegistry) Count() int {
	return len(r.creatures)
}
