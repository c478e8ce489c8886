package events

import "github.com/oxidian/sandpit/world"

// Type discriminates tick side effects. The core returns these from
// Tick instead of calling upward into audio/inventory/particles; the
// session drains and dispatches them.
type Type int

const (
	// TypeJumped signals a normal ground jump or swim jump
	// Consumer: audio | Payload: nil
	TypeJumped Type = iota

	// TypeLanded signals the grounded transition after a fall
	// Consumer: audio, particles | Payload: nil
	TypeLanded

	// TypeJumpPadLaunched signals a pad launch
	// Consumer: audio, particles | Payload: *JumpPadPayload
	TypeJumpPadLaunched

	// TypeBounced signals a ceiling jump-pad rebound
	// Consumer: audio | Payload: nil
	TypeBounced

	// TypeBlockBroken signals a head-break of a natural ceiling block
	// Consumer: inventory, audio, particles | Payload: *BlockBrokenPayload
	TypeBlockBroken

	// TypeTNTTriggered signals a TNT charge consumed by a super launch
	// Consumer: explosion/particle spawner | Payload: *TNTPayload
	TypeTNTTriggered

	// TypeMizukiriSkip signals a water-skip reflection
	// Consumer: audio, particles | Payload: nil
	TypeMizukiriSkip

	// TypeAccelerated signals a board boost from an accelerator tile
	// Consumer: audio | Payload: nil
	TypeAccelerated

	// TypeKnockedBack signals an explosion impulse landing on the actor
	// Consumer: audio | Payload: nil
	TypeKnockedBack
)

// Event is a single tick side effect. Tick is the simulation tick the
// event fired on; payload types are listed on the Type constants.
type Event struct {
	Type    Type
	Tick    uint64
	Payload any
}

// BlockBrokenPayload carries the destroyed block for inventory hookup
type BlockBrokenPayload struct {
	X, Y int
	ID   world.BlockID
}

// TNTPayload carries the consumed charge position for the explosion spawner
type TNTPayload struct {
	X, Y int
}

// JumpPadPayload carries the resolved stack count and whether TNT promoted
// it to a super launch
type JumpPadPayload struct {
	Count int
	Super bool
}
