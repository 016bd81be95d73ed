// Package main provides the ndarray CLI.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/born-ml/ndarray/array"
)

const version = "v0.0.1-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stdout)
		return 0
	}

	var err error
	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "ndarray %s\n", version)
	case "broadcast":
		err = broadcast(args[1:], stdout)
	case "split":
		err = split(args[1:], stdout)
	default:
		usage(stderr)
		return 2
	}

	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "ndarray - n-dimensional array toolkit")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version                  Show version")
	fmt.Fprintln(w, "  broadcast <shape>...     Print the broadcast shape, e.g. broadcast 3,1 1,4")
	fmt.Fprintln(w, "  split <length> <parts>   Print the piece sizes of array_split")
}

// broadcast prints the common shape of every argument.
func broadcast(args []string, w io.Writer) error {
	if len(args) == 0 {
		return errors.New("broadcast: at least one shape required")
	}
	shapes := make([]array.Shape, len(args))
	for i, arg := range args {
		s, err := parseShape(arg)
		if err != nil {
			return err
		}
		shapes[i] = s
	}

	out, err := array.BroadcastShapesN(shapes...)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, out)
	return nil
}

// split prints the sizes of the pieces ArraySplit cuts a 1-D array into.
func split(args []string, w io.Writer) error {
	if len(args) != 2 {
		return errors.New("split: want <length> <parts>")
	}
	length, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.Wrap(err, "split: length")
	}
	parts, err := strconv.Atoi(args[1])
	if err != nil {
		return errors.Wrap(err, "split: parts")
	}

	a, err := array.Zeros[int](array.Shape{length})
	if err != nil {
		return err
	}
	pieces, err := a.ArraySplit(parts, 0)
	if err != nil {
		return err
	}

	sizes := make([]string, len(pieces))
	for i, p := range pieces {
		sizes[i] = strconv.Itoa(p.Len())
	}
	fmt.Fprintln(w, strings.Join(sizes, " "))
	return nil
}

// parseShape reads a comma-separated list of sizes. An empty string is
// the shape of a 0-D array.
func parseShape(s string) (array.Shape, error) {
	if s == "" {
		return array.Shape{}, nil
	}
	fields := strings.Split(s, ",")
	shape := make(array.Shape, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, errors.Wrapf(err, "shape %q", s)
		}
		shape[i] = n
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return shape, nil
}
