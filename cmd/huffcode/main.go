package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	logging "github.com/op/go-logging"
)

const progName = "huffcode"
const usageMessageRaw = `
Usage: huffcode [-v] SUBCOMMAND...

Subcommands:
  code INPUT CODEFILE
    Count the bytes of INPUT, build a Huffman code for them, and save the
    code table to CODEFILE.

  compress INPUT CODEFILE OUTPUT
    Compress INPUT with the code saved in CODEFILE and write the result
    to OUTPUT.  Every byte of INPUT must have a code.

  decompress INPUT CODEFILE OUTPUT
    Decompress INPUT, which was written by "compress" with the same
    CODEFILE, and write the original bytes to OUTPUT.
`

var log = logging.MustGetLogger(progName)

func usageMessage() string {
	return strings.TrimLeft(usageMessageRaw, "\n")
}

type usageError struct {
	detail string
}

func (ue *usageError) Error() string {
	return ue.detail
}

func usageErrorf(detailFmt string, detailArgs ...interface{}) error {
	return &usageError{fmt.Sprintf(detailFmt, detailArgs...)}
}

func setupLogging(w io.Writer, verbose bool) {
	backend := logging.NewLogBackend(w, "", 0)
	format := logging.MustStringFormatter(`%{time:15:04:05.000} %{level:.4s} %{module}: %{message}`)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	if verbose {
		leveled.SetLevel(logging.DEBUG, "")
	} else {
		leveled.SetLevel(logging.INFO, "")
	}
	logging.SetBackend(leveled)
}

func run(args []string, stderr io.Writer) error {
	ourFlags := flag.NewFlagSet(progName, flag.ContinueOnError)
	ourFlags.SetOutput(io.Discard)
	verbose := ourFlags.Bool("v", false, "log debugging details")
	if err := ourFlags.Parse(args); err != nil {
		return usageErrorf("%v", err)
	}
	setupLogging(stderr, *verbose)

	rest := ourFlags.Args()
	if len(rest) == 0 {
		return usageErrorf("no subcommand given")
	}

	subcommand, rest := rest[0], rest[1:]
	switch subcommand {
	case "code":
		if len(rest) != 2 {
			return usageErrorf("code: expected INPUT CODEFILE, got %d arguments", len(rest))
		}
		return makeCode(rest[0], rest[1])

	case "compress":
		if len(rest) != 3 {
			return usageErrorf("compress: expected INPUT CODEFILE OUTPUT, got %d arguments", len(rest))
		}
		return compress(rest[0], rest[1], rest[2])

	case "decompress":
		if len(rest) != 3 {
			return usageErrorf("decompress: expected INPUT CODEFILE OUTPUT, got %d arguments", len(rest))
		}
		return decompress(rest[0], rest[1], rest[2])

	default:
		return usageErrorf("unknown subcommand %q", subcommand)
	}
}

func main() {
	err := run(os.Args[1:], os.Stderr)
	var ue *usageError
	switch {
	case err == nil:
		return
	case errors.As(err, &ue):
		fmt.Fprintf(os.Stderr, "%s: %s\n%s", progName, ue.detail, usageMessage())
		os.Exit(64)
	default:
		fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err.Error())
		os.Exit(1)
	}
}
