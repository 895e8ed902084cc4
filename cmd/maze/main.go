package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/maze-server/internal/maze"
)

var log = logrus.New()

type options struct {
	width   int
	height  int
	seed    uint64
	seeded  bool
	verbose bool
}

func parseOptions(args []string) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("maze", flag.ContinueOnError)
	fs.IntVar(&opts.width, "width", 10, "maze width in cells")
	fs.IntVar(&opts.height, "height", 10, "maze height in cells")
	fs.Uint64Var(&opts.seed, "seed", 0, "seed for reproducible mazes")
	fs.BoolVar(&opts.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts.seeded = true
		}
	})
	return opts, nil
}

func main() {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	if opts.verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	maze.Log = log

	rnd := maze.NewRand()
	if opts.seeded {
		rnd = maze.NewSeededRand(opts.seed)
	}
	session, err := maze.NewSession(maze.Params{Width: opts.width, Height: opts.height}, rnd)
	if err != nil {
		log.Fatal("unable to create a maze: ", err)
	}

	if err := play(os.Stdin, os.Stdout, session); err != nil {
		log.Fatal(err)
	}
}
