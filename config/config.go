package config

import "github.com/namsral/flag"

type Config struct {
	SearchDepth     int
	MineCount       int
	ShufflesPerSide int
	AutoReshuffle   bool
	RandomSeed      string
	Debug           bool
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("minecheckers", flag.ContinueOnError)
	fs.IntVar(&c.SearchDepth, "search-depth", 3, "how many plies ahead the computer searches")
	fs.IntVar(&c.MineCount, "mine-count", 4, "number of mines hidden on the board")
	fs.IntVar(&c.ShufflesPerSide, "shuffles-per-side", 2, "mine reshuffles each side may use per game")
	fs.BoolVar(&c.AutoReshuffle, "auto-reshuffle", false, "let the computer spend its own reshuffles when under pressure")
	fs.StringVar(&c.RandomSeed, "random-seed", "", "seed for deterministic games; empty seeds from OS entropy")
	fs.BoolVar(&c.Debug, "debug", false, "turn on debug logging")
	err := fs.Parse(args)
	return err
}
