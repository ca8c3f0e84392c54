// Released under an MIT license. See LICENSE.

// Nothing's developer console, detached from the game and driven from
// a terminal. Commands are fed to the console exactly as the game
// would feed key events, and the overlay is rendered as text after
// every commit.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/ashmeltin/nothing/internal/game/level"
	"github.com/ashmeltin/nothing/internal/ui/console"
	"github.com/ashmeltin/nothing/internal/ui/event"
	"github.com/ashmeltin/nothing/internal/ui/surface"
)

//nolint:gochecknoglobals
var usage = `nothing console

Usage:
  nothing [-c COMMAND]
  nothing -h

Options:
  -c, --command=COMMAND  Evaluate one command and exit.
  -h, --help             Display this help.

With a TTY on stdin and no -c, an interactive prompt feeds the console
and its overlay is rendered after every command. Otherwise commands
are read from stdin, one per line.
`

func main() {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	lvl := level.New()
	lvl.AddRigidRect("platform1")
	lvl.AddRigidRect("platform2")
	lvl.AddRigidRect("player")

	con, err := console.New(lvl, surface.Font{GlyphWidth: 1, GlyphHeight: 1})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer con.Destroy()

	s := newTextSurface()
	watchResize(s.invalidate)

	con.SlideDown()

	command, _ := opts.String("--command")

	switch {
	case command != "":
		commit(con, command)
		show(con, s)
	case isatty.IsTerminal(os.Stdin.Fd()):
		interact(con, s)
	default:
		pipe(con, s)
	}
}

// commit types line into the console and presses the commit key.
func commit(con *console.T, line string) {
	for _, r := range line {
		if err := con.HandleEvent(event.Text(r)); err != nil {
			fmt.Fprintln(os.Stderr, err)

			return
		}
	}

	if err := con.HandleEvent(event.Key(event.Commit)); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

func interact(con *console.T, s *textSurface) {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	for {
		line, err := cli.Prompt("> ")
		if err != nil {
			// Ctrl-C aborts the prompt; anything else is EOF.
			if err == liner.ErrPromptAborted {
				continue
			}

			return
		}

		cli.AppendHistory(line)

		commit(con, line)
		show(con, s)
	}
}

func pipe(con *console.T, s *textSurface) {
	in := bufio.NewScanner(os.Stdin)
	for in.Scan() {
		commit(con, in.Text())
	}

	show(con, s)
}

// show finishes the slide so the overlay is flush, renders it, and
// prints the result.
func show(con *console.T, s *textSurface) {
	if err := con.Update(console.SlideDownTime); err != nil {
		fmt.Fprintln(os.Stderr, err)

		return
	}

	s.clear()

	if err := con.Render(s); err != nil {
		fmt.Fprintln(os.Stderr, err)

		return
	}

	s.flush(os.Stdout)
}
