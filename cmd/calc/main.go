package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/peterh/liner"

	"github.com/arithmo/calc"
)

func main() {
	log.SetFlags(0)
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: calc [expression ...]")
		fmt.Fprintln(flag.CommandLine.Output(), "With no arguments, calc starts an interactive session.")
		flag.PrintDefaults()
	}
	flag.Parse()

	c := calc.New()
	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			r, err := c.Calculate(arg)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(r)
		}
		return
	}
	repl(c)
}

// repl reads expressions until exit, EOF, or interrupt, printing each result
// or error. The commands vars, funcs, and clear inspect and reset the
// calculator instead of being evaluated.
func repl(c *calc.Calculator) {
	rl := liner.NewLiner()
	defer rl.Close()
	rl.SetCtrlCAborts(true)
	for {
		line, err := rl.Prompt(">>> ")
		if err != nil {
			// io.EOF or liner.ErrPromptAborted
			fmt.Println()
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rl.AppendHistory(line)
		switch line {
		case "exit", "quit":
			return
		case "vars":
			printVars(c.Variables())
		case "funcs":
			fmt.Println(strings.Join(c.Functions(), ", "))
		case "clear":
			c.ClearVariables()
			fmt.Println("variables cleared")
		default:
			r, err := c.Calculate(line)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Println(r)
		}
	}
}

func printVars(vars map[string]calc.Number) {
	if len(vars) == 0 {
		fmt.Println("no variables defined")
		return
	}
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s = %v\n", name, vars[name])
	}
}
