package rules

const (
	// DeathCauseWallCollision is when the snake runs off the board
	DeathCauseWallCollision = "wall-collision"
	// DeathCauseSnakeSelfCollision is when the head runs into the snake's own body
	DeathCauseSnakeSelfCollision = "snake-self-collision"
)

var deathReasons = map[string]string{
	DeathCauseWallCollision:      "hit the wall",
	DeathCauseSnakeSelfCollision: "hit yourself",
}

// Death records why and when a game stopped.
type Death struct {
	Turn  int64
	Cause string
}

// Reason is the player facing message for the cause.
func (d *Death) Reason() string {
	if r, ok := deathReasons[d.Cause]; ok {
		return r
	}
	return d.Cause
}
