package world

import (
	"testing"

	"github.com/samdwyer/dungeonkeep/internal/gamedata"
)

type soundLog struct {
	cues []string
}

func (s *soundLog) PlayAt(x, y int, sound string) {
	s.cues = append(s.cues, sound)
}

// newTestHandler returns a 6x6 map: earth everywhere inside the border,
// a claimed 2x2 patch owned by player 1 at (1,1)-(2,2) and a dirt tile at (4,4).
func newTestHandler(sounds SoundPlayer) *Handler {
	d := NewDungeon(6, 6, nil)
	for y := 1; y <= 2; y++ {
		for x := 1; x <= 2; x++ {
			d.Cells[y][x] = Cell{Tile: TileClaimed, Owner: 1}
		}
	}
	d.Cells[4][4] = Cell{Tile: TileDirt}
	d.Cells[3][4] = Cell{Tile: TileGold}
	return NewHandler(d, sounds)
}

func TestHandlerPredicates(t *testing.T) {
	h := newTestHandler(nil)
	room := &gamedata.RoomDef{ID: 1, Name: "Treasury"}

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"earth taggable", h.IsTaggable(3, 1), true},
		{"gold taggable", h.IsTaggable(4, 3), true},
		{"border not taggable", h.IsTaggable(0, 0), false},
		{"claimed not taggable", h.IsTaggable(1, 1), false},
		{"off map not taggable", h.IsTaggable(-1, 2), false},
		{"claimed buildable by owner", h.IsBuildable(1, 1, 1, room), true},
		{"claimed not buildable by rival", h.IsBuildable(1, 1, 2, room), false},
		{"nil room not buildable", h.IsBuildable(1, 1, 1, nil), false},
		{"earth not buildable", h.IsBuildable(3, 3, 1, room), false},
		{"dirt claimable", h.IsClaimable(4, 4, 1), true},
		{"own floor not claimable", h.IsClaimable(1, 1, 1), false},
		{"rival floor claimable", h.IsClaimable(1, 1, 2), true},
		{"earth not claimable", h.IsClaimable(3, 3, 1), false},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestHandlerIsTaggableBy(t *testing.T) {
	h := newTestHandler(nil)
	h.Dungeon().Cells[3][3].Owner = 2

	if h.IsTaggableBy(3, 3, 1) {
		t.Error("earth reinforced by player 2 should not be taggable by player 1")
	}
	if !h.IsTaggableBy(3, 3, 2) {
		t.Error("own earth should be taggable")
	}
	if !h.IsTaggableBy(3, 1, 1) {
		t.Error("unowned earth should be taggable")
	}
}

func TestHandlerSelectTilesOnlyTaggable(t *testing.T) {
	h := newTestHandler(nil)
	area := Area{Start: Point{X: 1, Y: 1}, End: Point{X: 3, Y: 2}}

	h.SelectTiles(area, true)

	if h.IsSelected(1, 1) {
		t.Error("claimed floor should not be selectable")
	}
	if !h.IsSelected(3, 1) || !h.IsSelected(3, 2) {
		t.Error("earth tiles in the area should be selected")
	}
	if got := len(h.SelectedTiles()); got != 2 {
		t.Errorf("len(SelectedTiles()) = %d, want 2", got)
	}

	h.SelectTiles(area, false)
	if len(h.SelectedTiles()) != 0 {
		t.Error("deselect should clear the area")
	}
}

func TestHandlerBuildAndSell(t *testing.T) {
	h := newTestHandler(nil)
	room := &gamedata.RoomDef{ID: 3, Name: "Hatchery"}
	area := Area{Start: Point{X: 1, Y: 1}, End: Point{X: 3, Y: 3}}

	h.Build(area, 1, room)

	built := 0
	for _, p := range area.Points() {
		c := h.Dungeon().CellAt(p.X, p.Y)
		if c.Tile == TileRoom {
			built++
			if c.RoomID != 3 {
				t.Errorf("room tile at %v has RoomID %d, want 3", p, c.RoomID)
			}
		}
	}
	if built != 4 {
		t.Errorf("built %d tiles, want 4", built)
	}

	h.Sell(area, 2)
	if h.Dungeon().CellAt(1, 1).Tile != TileRoom {
		t.Error("rival sell should not remove player 1's room")
	}

	h.Sell(area, 1)
	if c := h.Dungeon().CellAt(1, 1); c.Tile != TileClaimed || c.RoomID != 0 {
		t.Errorf("sold tile = %+v, want claimed floor", *c)
	}
}

func TestHandlerDigAndClaim(t *testing.T) {
	h := newTestHandler(nil)
	h.SelectTiles(Area{Start: Point{X: 3, Y: 3}, End: Point{X: 3, Y: 3}}, true)

	h.DigTile(3, 3)
	if c := h.Dungeon().CellAt(3, 3); c.Tile != TileDirt || c.Selected {
		t.Errorf("dug tile = %+v, want unselected dirt", *c)
	}

	h.DigTile(0, 0)
	if h.Dungeon().GetTile(0, 0) != TileImpenetrable {
		t.Error("impenetrable rock must not be dug")
	}

	h.ClaimTile(3, 3, 1)
	if c := h.Dungeon().CellAt(3, 3); c.Tile != TileClaimed || c.Owner != 1 {
		t.Errorf("claimed tile = %+v, want claimed by 1", *c)
	}
}

func TestHandlerPlaySound(t *testing.T) {
	sounds := &soundLog{}
	h := newTestHandler(sounds)

	h.PlaySoundAtTile(2, 2, "/Global/dk1tag.mp2")
	if len(sounds.cues) != 1 || sounds.cues[0] != "/Global/dk1tag.mp2" {
		t.Errorf("cues = %v, want one tag cue", sounds.cues)
	}

	// nil player is fine
	newTestHandler(nil).PlaySoundAtTile(1, 1, "x")
}
