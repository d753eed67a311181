package core

import "github.com/google/uuid"

// Entity is a unique identifier for an entity
type Entity uint64

// BallID tags a ball so that events raised against it can be correlated back to it
// Survives component copies; a respawned ball always gets a fresh tag
type BallID uuid.UUID

// NewBallID returns a fresh random ball tag
func NewBallID() BallID {
	return BallID(uuid.New())
}

// NilBallID is the zero tag, never assigned to a live ball
var NilBallID = BallID(uuid.Nil)

// String returns the canonical uuid text form
func (id BallID) String() string {
	return uuid.UUID(id).String()
}
