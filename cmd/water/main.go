// Command water is a demonstration harness for the text-to-binary
// pipeline: it parses a source form, prints the resulting tree and,
// where the form has a binary encoding, a hex dump of the emitted
// bytes.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/wippyai/water"
	"github.com/wippyai/water/emitter"
	"github.com/wippyai/water/parser"
)

func main() {
	var (
		src         = flag.String("e", "", "Inline source text (instead of a file argument)")
		kind        = flag.String("kind", "instr", "What to parse: instr, func, module, program")
		outFile     = flag.String("o", "", "Write emitted bytes to this file")
		verbose     = flag.Bool("v", false, "Enable debug logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		emitter.SetLogger(logger)
	}

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	source := *src
	if source == "" {
		if flag.NArg() != 1 {
			fmt.Fprintln(os.Stderr, "Usage: water [-kind instr|func|module|program] [-o out.bin] <file.wat>")
			fmt.Fprintln(os.Stderr, "       water -e '(i32.add (i32.const 1) (i32.const 2))'")
			fmt.Fprintln(os.Stderr, "       water -i  (interactive mode)")
			os.Exit(1)
		}
		data, err := os.ReadFile(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		source = string(data)
	}

	if err := run(source, *kind, *outFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", parser.Render(unwrapSyntax(err), source))
		os.Exit(1)
	}
}

func run(source, kind, outFile string) error {
	var emitted []byte

	switch kind {
	case "instr":
		ins, err := water.ParseInstruction(source)
		if err != nil {
			return err
		}
		fmt.Println(sprintInstruction(ins, 0))

		var buf bytes.Buffer
		if _, err := water.EmitInstruction(&buf, ins); err != nil {
			return err
		}
		emitted = buf.Bytes()
		fmt.Printf("bytes: % 02X\n", emitted)

	case "func":
		fn, err := water.ParseFunction(source)
		if err != nil {
			return err
		}
		fmt.Println(sprintFunction(fn))

	case "module":
		if _, err := water.ParseModule(source); err != nil {
			return err
		}
		fmt.Println("(module)")

	case "program":
		prog, err := water.ParseProgram(source)
		if err != nil {
			return err
		}
		fmt.Printf("program: %d module(s)\n", len(prog.Modules))

		var buf bytes.Buffer
		if _, err := water.EmitProgram(&buf, prog); err != nil {
			return err
		}
		emitted = buf.Bytes()
		fmt.Printf("bytes: % 02X\n", emitted)

	default:
		return fmt.Errorf("unknown -kind %q", kind)
	}

	if outFile != "" && emitted != nil {
		if err := os.WriteFile(outFile, emitted, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outFile, err)
		}
		fmt.Printf("wrote %d bytes to %s\n", len(emitted), outFile)
	}
	return nil
}

// unwrapSyntax digs the parser's SyntaxError out of a wrapped error so
// Render can show line and column information.
func unwrapSyntax(err error) error {
	for e := err; e != nil; {
		if se, ok := e.(*parser.SyntaxError); ok {
			return se
		}
		u, ok := e.(interface{ Unwrap() error })
		if !ok {
			break
		}
		e = u.Unwrap()
	}
	return err
}
