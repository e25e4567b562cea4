package game

type Rules interface {
	// StartingInventory is the hand each player begins with.
	StartingInventory() PieceInventory
	// QueenDeadline is the ply on which the player must place the queen
	// if it is still in hand.
	QueenDeadline(p Player) int
}
