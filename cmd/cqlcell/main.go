package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/cql-codec/codec"
	"github.com/wippyai/cql-codec/cqltype"
	"github.com/wippyai/cql-codec/frame"
)

func main() {
	var (
		typeName    = flag.String("type", "", "CQL type of the cell (e.g. int, list<text>)")
		hexData     = flag.String("hex", "", "Cell contents as hex, without the length prefix")
		null        = flag.Bool("null", false, "Decode the null cell")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	if *verbose {
		if logger, err := zap.NewDevelopment(); err == nil {
			codec.SetLogger(logger)
			defer logger.Sync()
		}
	}

	// With no arguments on a terminal, drop into the TUI
	if *interactive || (*typeName == "" && term.IsTerminal(int(os.Stdin.Fd()))) {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *typeName == "" {
		fmt.Fprintln(os.Stderr, "Usage: cqlcell -type <cql-type> -hex <bytes>")
		fmt.Fprintln(os.Stderr, "       cqlcell -type <cql-type> -null")
		fmt.Fprintln(os.Stderr, "       cqlcell -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*typeName, *hexData, *null); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(typeName, hexData string, null bool) error {
	typ, err := cqltype.ParseTypeName(typeName)
	if err != nil {
		return err
	}

	var cell *frame.Slice
	if !null {
		data, err := hex.DecodeString(strings.ReplaceAll(hexData, " ", ""))
		if err != nil {
			return fmt.Errorf("decode hex: %w", err)
		}
		cell, err = frame.NewSlice(data, 0, len(data))
		if err != nil {
			return err
		}
	}

	v, err := codec.Dynamic.Decode(typ, cell)
	if err != nil {
		return err
	}

	fmt.Printf("Type:  %s\n", typ)
	if cell != nil {
		fmt.Printf("Bytes: %d\n", cell.Len())
	} else {
		fmt.Printf("Bytes: null\n")
	}
	fmt.Printf("Value: %s\n", v)

	// Show the framed bytes the value encodes back to
	w := frame.NewCellWriter()
	if _, err := codec.Dynamic.Encode(typ, v, w); err != nil {
		return err
	}
	fmt.Printf("Framed: %s\n", hex.EncodeToString(w.Bytes()))

	return nil
}
