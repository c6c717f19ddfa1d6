package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"

	"xdao.co/edn/cidutil"
	"xdao.co/edn/edn"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "fmt":
		return cmdFmt(args[1:], out, errOut)
	case "cid":
		return cmdCID(args[1:], out, errOut)
	case "digest":
		return cmdDigest(args[1:], out, errOut)
	case "check":
		return cmdCheck(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "xdao-edn: EDN reader and canonicalizer CLI")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  xdao-edn fmt [<file>]")
	fmt.Fprintln(w, "  xdao-edn cid [<file>]")
	fmt.Fprintln(w, "  xdao-edn digest [--alg sha256|sha512|sha3-256] [<file>]")
	fmt.Fprintln(w, "  xdao-edn check [<file>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - <file> defaults to stdin; use - for stdin explicitly")
	fmt.Fprintln(w, "  - cid and digest operate on the canonical rendering, so")
	fmt.Fprintln(w, "    equal values always identify the same document")
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func readValue(args []string, errOut io.Writer) (edn.Edn, int) {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	b, err := readInput(path)
	if err != nil {
		fmt.Fprintf(errOut, "read: %v\n", err)
		return nil, 1
	}
	v, err := edn.Read(b)
	if err != nil {
		fmt.Fprintf(errOut, "%v\n", err)
		return nil, 1
	}
	return v, 0
}

func cmdFmt(args []string, out io.Writer, errOut io.Writer) int {
	v, code := readValue(args, errOut)
	if v == nil {
		return code
	}
	fmt.Fprintln(out, edn.Render(v))
	return 0
}

func cmdCID(args []string, out io.Writer, errOut io.Writer) int {
	v, code := readValue(args, errOut)
	if v == nil {
		return code
	}
	id, err := edn.DocCID(v)
	if err != nil {
		fmt.Fprintf(errOut, "%v\n", err)
		return 1
	}
	fmt.Fprintln(out, id)
	return 0
}

func cmdDigest(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("digest", flag.ContinueOnError)
	fs.SetOutput(errOut)
	alg := fs.String("alg", "sha256", "digest algorithm (sha256, sha512, sha3-256)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	v, code := readValue(fs.Args(), errOut)
	if v == nil {
		return code
	}
	b, err := edn.CanonicalBytes(v)
	if err != nil {
		fmt.Fprintf(errOut, "%v\n", err)
		return 1
	}
	sum, err := cidutil.Digest(*alg, b)
	if err != nil {
		fmt.Fprintf(errOut, "%v\n", err)
		return 2
	}
	fmt.Fprintln(out, hex.EncodeToString(sum))
	return 0
}

func cmdCheck(args []string, out io.Writer, errOut io.Writer) int {
	v, code := readValue(args, errOut)
	if v == nil {
		return code
	}
	fmt.Fprintf(out, "ok: %s\n", v.Kind())
	return 0
}
