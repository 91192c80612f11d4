package cmd

import (
	"fmt"
	"github.com/spf13/cobra"
	"github.com/they4kman/sweeper/game"
	"github.com/they4kman/sweeper/play"
	"github.com/they4kman/sweeper/term"
	"io"
	"os"
)

type options struct {
	settings
	configPath string
}

var rootCmd = newRootCommand(&options{settings: defaultSettings()})

// newRootCommand binds the flags to opts, which also supplies their defaults
func newRootCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweeper [width height bombs]",
		Short: "Play manual or computer-driven Minesweeper in the terminal",
		Long: `sweeper is a Minesweeper game which supports human- or
computer-driven playing.

Run with no arguments to play the default 30x16 board with 99 bombs
	sweeper

Give the board as arguments or flags
	sweeper 9 9 10
	sweeper -w 9 -h 9 -b 10

Use the director flag to make the computer play for you
	sweeper -d constraint

Play by typing "x y" lines instead of clicking
	sweeper --plain 9 9 10
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 3 {
				return fmt.Errorf("expected no arguments or <width> <height> <bombs>, got %d arguments", len(args))
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := resolveSettings(cmd.Flags(), opts, args)
			if err != nil {
				return err
			}
			return run(resolved, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	cmd.Flags().Bool("help", false, "Help for this command")

	flags := cmd.Flags()
	flags.IntVarP(&opts.Width, "width", "w", opts.Width, "Width of game board, in cells")
	flags.IntVarP(&opts.Height, "height", "h", opts.Height, "Height of game board, in cells")
	flags.IntVarP(&opts.Bombs, "bombs", "b", opts.Bombs, "Number of bombs to place in the game board")
	flags.Uint64Var(&opts.Seed, "seed", 0, "Seed for bomb placement and the director (0 picks one at random)")
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML file with defaults for any of these settings")
	flags.VarP(&opts.Director, "director", "d", `Make the computer play.
none: you play
random: reveal closed cells in a random order
constraint: deduce safe cells from the numbers, guessing only when stuck`)
	flags.DurationVar(&opts.Delay, "delay", opts.Delay, "Pause between director moves")
	flags.BoolVar(&opts.Plain, "plain", false, `Read "x y" lines from stdin and print the board as text`)
	flags.StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.LogFile, "log-file", "", "Write JSON logs to this file, rotating it as it grows")

	return cmd
}

// run plays one game with resolved settings
func run(s settings, in io.Reader, out, errOut io.Writer) error {
	if err := configureLogging(s, errOut); err != nil {
		return err
	}

	board, err := game.NewBoard(s.Config)
	if err != nil {
		return err
	}
	Log.WithField("settings", fmt.Sprintf("%+v", s)).Debug("starting game")

	var (
		input    play.Input
		renderer play.Renderer
		screen   *term.Screen
		quit     func() bool
	)
	if s.Plain {
		input = term.NewLines(in, errOut)
		renderer = term.NewText(out)
	} else {
		screen, err = term.NewScreen()
		if err != nil {
			return err
		}
		defer screen.Close()
		input, renderer = screen, screen
		quit = screen.Quit
	}

	if director := s.Director.build(s.Seed); director != nil {
		input = &play.DirectorInput{
			Director: director,
			View:     board,
			Delay:    s.Delay,
			Quit:     quit,
		}
	}

	session := play.NewSession(board, input, renderer)
	progress, err := session.Run()
	if err != nil {
		return err
	}

	if screen != nil && progress != game.Ongoing {
		screen.WaitKey()
	}
	if s.Plain {
		fmt.Fprintf(out, "%s after %d moves\n", progress, session.Moves())
	}
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
