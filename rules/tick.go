package rules

// Tick advances the game one step in direction dir and returns the death
// when the step ended the game. Stopped games are left untouched.
//
// The order matters and mirrors what the player sees:
//  1. move the head one cell
//  2. eat and relocate the food, or drop the tail
//  3. check the wall
//  4. check the body
func Tick(game *Game, dir Direction) *Death {
	if !game.Running() {
		return nil
	}
	game.Turn++
	game.Heading = dir

	head := game.Snake.Move(dir)
	if head == game.Food {
		game.Eaten++
		game.Food = game.randomFoodPoint()
	} else {
		game.Snake.DropTail()
	}

	death := checkForDeath(game)
	if death != nil {
		game.Death = death
		game.Status = GameStatusStopped
	}
	return death
}

// Stop ends the game without a death, as when the player closes the window.
func Stop(game *Game) {
	game.Status = GameStatusStopped
}
