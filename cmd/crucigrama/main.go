package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/palabrota/crucigrama/config"
	"github.com/palabrota/crucigrama/gen"
	"github.com/palabrota/crucigrama/loader"
	"github.com/palabrota/crucigrama/pick"
	"github.com/palabrota/crucigrama/shell"
	"github.com/palabrota/crucigrama/tier"
)

func main() {
	var (
		wordsPath    = flag.String("words", "", "path to the word-list document (overrides config)")
		difficulty   = flag.String("difficulty", "", "basic, intermediate or advanced (overrides config and document)")
		generateOnly = flag.Bool("generate-only", false, "print a generated puzzle and exit instead of playing")
	)
	flag.Parse()

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	log.Logger = log.Output(output)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", cfg.LogLevel).Msg("bad log level")
	}
	zerolog.SetGlobalLevel(level)

	if *wordsPath == "" {
		*wordsPath = cfg.WordsPath
	}
	pool, err := loader.Load(*wordsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading word list")
	}
	log.Info().Str("title", pool.Title).Int("words", len(pool.Words)).Msg("word list loaded")

	t := pool.Difficulty
	if raw := firstOf(*difficulty, cfg.Difficulty); raw != "" {
		if t, err = tier.Parse(raw); err != nil {
			log.Fatal().Err(err).Msg("bad difficulty")
		}
	}

	picker := pick.New()
	if cfg.Workers != 0 {
		picker = pick.NewParallel(cfg.Workers)
		log.Debug().Int("workers", cfg.Workers).Msg("parallel generation enabled")
	}

	if *generateOnly {
		res, err := picker.Select(pool.Words, t)
		if err != nil {
			log.Fatal().Err(err).Msg("generation failed")
		}
		printPuzzle(res)
		return
	}

	sc, err := shell.NewShellController(pool, t, picker)
	if err != nil {
		log.Fatal().Err(err).Msg("starting shell")
	}
	sc.Loop()
}

func firstOf(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func printPuzzle(res *pick.Result) {
	letters := res.Layout.Letters()
	for r := 0; r < res.Layout.Rows; r++ {
		for c := 0; c < res.Layout.Cols; c++ {
			letter, ok := letters[gen.Cell{Row: r, Col: c}]
			if !ok {
				fmt.Print("# ")
				continue
			}
			fmt.Printf("%c ", letter)
		}
		fmt.Println()
	}
	fmt.Println()
	for _, e := range res.Layout.NumberOrder() {
		fmt.Printf("%-4s (%d letters, %s) %s\n", e.Label, len(e.Word.Answer), e.Direction, e.Word.Clue)
	}
	if len(res.Omitted) > 0 {
		fmt.Printf("\nomitted (too long for the board):")
		for _, w := range res.Omitted {
			fmt.Printf(" %s", w.Answer)
		}
		fmt.Println()
	}
}
