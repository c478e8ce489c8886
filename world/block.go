package world

// BlockID identifies a tile type in the grid
type BlockID uint8

const (
	Air BlockID = iota
	Bedrock
	Dirt
	Grass
	Stone
	Sand
	Water
	Wood
	Leaves
	JumpPad
	TNT
	Accelerator
	MoonRock
	Plank
	Brick

	blockCount
)

// Properties classifies a block for the collision and movement code.
// Natural gates the break-from-below mechanic to generated terrain;
// crafted blocks (Plank, Brick) never shatter from a head bump.
type Properties struct {
	Solid       bool
	Transparent bool
	Breakable   bool
	Natural     bool
}

var properties = [blockCount]Properties{
	Air:         {Solid: false, Transparent: true, Breakable: false, Natural: true},
	Bedrock:     {Solid: true, Transparent: false, Breakable: false, Natural: true},
	Dirt:        {Solid: true, Transparent: false, Breakable: true, Natural: true},
	Grass:       {Solid: true, Transparent: false, Breakable: true, Natural: true},
	Stone:       {Solid: true, Transparent: false, Breakable: true, Natural: true},
	Sand:        {Solid: true, Transparent: false, Breakable: true, Natural: true},
	Water:       {Solid: false, Transparent: true, Breakable: false, Natural: true},
	Wood:        {Solid: true, Transparent: false, Breakable: true, Natural: true},
	Leaves:      {Solid: true, Transparent: true, Breakable: true, Natural: true},
	JumpPad:     {Solid: true, Transparent: false, Breakable: false, Natural: false},
	TNT:         {Solid: true, Transparent: false, Breakable: false, Natural: false},
	Accelerator: {Solid: true, Transparent: false, Breakable: false, Natural: false},
	MoonRock:    {Solid: true, Transparent: false, Breakable: true, Natural: true},
	Plank:       {Solid: true, Transparent: false, Breakable: true, Natural: false},
	Brick:       {Solid: true, Transparent: false, Breakable: true, Natural: false},
}

// Props returns the property record for id. Unknown ids read as bedrock,
// the same safe default used for out-of-range grid queries.
func Props(id BlockID) Properties {
	if id >= blockCount {
		return properties[Bedrock]
	}
	return properties[id]
}

func (id BlockID) Solid() bool       { return Props(id).Solid }
func (id BlockID) Transparent() bool { return Props(id).Transparent }
func (id BlockID) Breakable() bool   { return Props(id).Breakable }
func (id BlockID) Natural() bool     { return Props(id).Natural }

func (id BlockID) String() string {
	names := [blockCount]string{
		"air", "bedrock", "dirt", "grass", "stone", "sand", "water",
		"wood", "leaves", "jump_pad", "tnt", "accelerator", "moon_rock",
		"plank", "brick",
	}
	if id >= blockCount {
		return "unknown"
	}
	return names[id]
}
