package rules

// checkForDeath looks at the freshly moved head. The wall is checked before
// the body so that a head outside the board is always reported as a wall
// collision.
func checkForDeath(game *Game) *Death {
	head := game.Snake.Head()
	if deathByOutOfBounds(head, game.Width, game.Height) {
		return &Death{
			Turn:  game.Turn,
			Cause: DeathCauseWallCollision,
		}
	}
	if deathBySelfCollision(&game.Snake) {
		return &Death{
			Turn:  game.Turn,
			Cause: DeathCauseSnakeSelfCollision,
		}
	}
	return nil
}

func deathByOutOfBounds(head Point, width, height int) bool {
	return (head.X < 0) || (head.X >= width) || (head.Y < 0) || (head.Y >= height)
}

func deathBySelfCollision(s *Snake) bool {
	return s.Occupies(s.Head())
}
