package world

// TileType tags a grid cell. Tiles are plain value data; everything that
// varies by type lives in the static properties table below, never on the
// tile itself.
type TileType uint8

const (
	Air TileType = iota
	Dirt
	Stone
	Grass
	CopperOre
	IronOre
	GoldOre
	Wood
	Leaves
	WoodPlank
	StoneBrick
	TreeTrunk
	TreeLeaves
	Arrow
	Coin

	TileTypeCount
)

// Tile is one grid cell: a type tag plus an active flag. Inactive cells are
// background and do not count as material for carving, ores, or tree spans.
type Tile struct {
	Type   TileType
	Active bool
}

type tileProps struct {
	solid bool
	drop  TileType
}

var tileTable = [TileTypeCount]tileProps{
	Air:        {solid: false, drop: Air},
	Dirt:       {solid: true, drop: Dirt},
	Stone:      {solid: true, drop: Stone},
	Grass:      {solid: true, drop: Grass},
	CopperOre:  {solid: true, drop: CopperOre},
	IronOre:    {solid: true, drop: IronOre},
	GoldOre:    {solid: true, drop: GoldOre},
	Wood:       {solid: true, drop: Wood},
	Leaves:     {solid: true, drop: Leaves},
	WoodPlank:  {solid: true, drop: WoodPlank},
	StoneBrick: {solid: true, drop: StoneBrick},
	TreeTrunk:  {solid: false, drop: Wood},
	TreeLeaves: {solid: false, drop: Leaves},
	Arrow:      {solid: false, drop: Arrow},
	Coin:       {solid: false, drop: Coin},
}

var tileNames = [TileTypeCount]string{
	"AIR", "DIRT", "STONE", "GRASS", "COPPER_ORE", "IRON_ORE", "GOLD_ORE",
	"WOOD", "LEAVES", "WOOD_PLANK", "STONE_BRICK", "TREE_TRUNK", "TREE_LEAVES",
	"ARROW", "COIN",
}

// IsSolid reports whether the type blocks movement.
func (t TileType) IsSolid() bool { return tileTable[t].solid }

// DropType is the item a tile of this type yields when removed.
func (t TileType) DropType() TileType { return tileTable[t].drop }

func (t TileType) String() string {
	if t >= TileTypeCount {
		return "UNKNOWN"
	}
	return tileNames[t]
}

// PackCell encodes a tile as type<<1|active for row-major serialization.
func PackCell(t Tile) uint16 {
	c := uint16(t.Type) << 1
	if t.Active {
		c |= 1
	}
	return c
}

// UnpackCell is the inverse of PackCell.
func UnpackCell(c uint16) Tile {
	return Tile{Type: TileType(c >> 1), Active: c&1 == 1}
}
