package rules

// GameStatus is the state of the game loop state machine.
type GameStatus string

const (
	// GameStatusRunning represents a game that still accepts ticks
	GameStatusRunning GameStatus = "running"
	// GameStatusStopped represents a game that ended, it is terminal
	GameStatusStopped GameStatus = "stopped"
)
