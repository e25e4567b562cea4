// meta/meta.go
package meta

// SEARCH_DEPTH defines the default number of plies searched per move.
const SEARCH_DEPTH = 3

// MEMO_CAPACITY defines the default number of memo slots.
const MEMO_CAPACITY = 1 << 20

// MEMO_MIN_PLY defines the ply after which positions are memoised.
const MEMO_MIN_PLY = 4

// MAX_TURNS defines the number of turns after which a game is abandoned.
const MAX_TURNS = 300

// NUM_GAMES defines the number of games per experiment matchup.
const NUM_GAMES = 10

// OUTPUT_DIR defines where experiment results are written.
const OUTPUT_DIR = "results"

// WORKERS defines how many experiment games run at once.
const WORKERS = 4
