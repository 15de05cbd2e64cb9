// Command dlc compiles a dead_lang source file to C.
//
//	dlc [flags] <file.dl>
package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"gopkg.in/urfave/cli.v1"

	"deadlang/pkg/compiler"
)

func main() {
	app := cli.NewApp()
	app.Name = "dlc"
	app.Usage = "compile dead_lang source to C"
	app.ArgsUsage = "<file.dl>"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "output, o",
			Usage: "write the generated C to `FILE` instead of stdout",
		},
		cli.BoolFlag{
			Name:  "dump-tokens",
			Usage: "print the token stream and exit",
		},
		cli.BoolFlag{
			Name:  "dump-ast",
			Usage: "print the statement tree and exit",
		},
		cli.BoolFlag{
			Name:  "no-color",
			Usage: "disable colored diagnostics",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.NewExitError("usage: dlc [flags] <file.dl>", 1)
	}
	if ctx.Bool("no-color") {
		color.NoColor = true
	}

	data, err := os.ReadFile(ctx.Args().First())
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("dlc: %v", err), 1)
	}
	src := string(data)

	supervisor := compiler.NewSupervisor(src)

	tokens := compiler.Lex(src, supervisor)
	if supervisor.HasErrors() {
		supervisor.Dump(os.Stderr)
		return cli.NewExitError("", 1)
	}
	if ctx.Bool("dump-tokens") {
		for _, tok := range tokens {
			fmt.Println(tok)
		}
		return nil
	}

	module := compiler.Parse(tokens, supervisor)
	if supervisor.HasErrors() || module == nil {
		supervisor.Dump(os.Stderr)
		return cli.NewExitError("", 1)
	}
	if ctx.Bool("dump-ast") {
		spew.Fdump(os.Stdout, module)
		return nil
	}

	output := module.Render()
	if path := ctx.String("output"); path != "" {
		if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
			return cli.NewExitError(fmt.Sprintf("dlc: %v", err), 1)
		}
		return nil
	}
	fmt.Print(output)
	return nil
}
