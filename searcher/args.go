package searcher

// Search defaults

const DefaultDepth = 3

// MaxDepth bounds recursion.
const MaxDepth = 12

const DefaultMemoCapacity = 1 << 20

// Positions up to this ply are not memoised; the forced opening makes many
// move orders collapse onto near-identical early positions.
const DefaultMemoMinPly = 4
