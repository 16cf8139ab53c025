package dotenv

// Pair is a single KEY=VALUE assignment read from an env file.
// Pairs preserve file order, so when a key repeats the later
// assignment wins once the pairs are applied sequentially.
type Pair struct {
	Key   string
	Value string
}
