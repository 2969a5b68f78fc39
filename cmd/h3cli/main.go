// Copyright 2022  Il Sub Bang
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command h3cli is a thin smoke tool for manually exercising the h3go
// library: encode a point to a cell, decode a cell back to a point, or
// print a cell's boundary. It is not part of the library's API surface.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	h3 "github.com/h3grid/h3go"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "encode":
		err = runEncode(os.Args[2:])
	case "decode":
		err = runDecode(os.Args[2:])
	case "boundary":
		err = runBoundary(os.Args[2:])
	case "pentagons":
		err = runPentagons(os.Args[2:])
	case "-h", "-help", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "h3cli: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "h3cli:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  h3cli encode -lat <deg> -lng <deg> -res <0-15>
  h3cli decode -cell <hex>
  h3cli boundary -cell <hex>
  h3cli pentagons -res <0-15>`)
}

func runEncode(args []string) error {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	lat := fs.Float64("lat", 0, "latitude in degrees")
	lng := fs.Float64("lng", 0, "longitude in degrees")
	res := fs.Int("res", 9, "cell resolution (0-15)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cell, err := h3.LatLngToCell(h3.LatLng{Lat: *lat, Lng: *lng}, *res)
	if err != nil {
		return err
	}
	fmt.Println(cell)
	return nil
}

func runDecode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	cellStr := fs.String("cell", "", "cell index in hexadecimal")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cell, err := h3.ParseCell(*cellStr)
	if err != nil {
		return fmt.Errorf("parsing cell %q: %w", *cellStr, err)
	}
	p, err := h3.CellToLatLng(cell)
	if err != nil {
		return err
	}
	fmt.Printf("%f %f\n", p.Lat, p.Lng)
	return nil
}

func runBoundary(args []string) error {
	fs := flag.NewFlagSet("boundary", flag.ExitOnError)
	cellStr := fs.String("cell", "", "cell index in hexadecimal")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cell, err := h3.ParseCell(*cellStr)
	if err != nil {
		return fmt.Errorf("parsing cell %q: %w", *cellStr, err)
	}
	verts, err := h3.CellToBoundary(cell)
	if err != nil {
		return err
	}

	lines := make([]string, len(verts))
	for i, v := range verts {
		lines[i] = fmt.Sprintf("%f %f", v.Lat, v.Lng)
	}
	fmt.Println(strings.Join(lines, "\n"))
	return nil
}

func runPentagons(args []string) error {
	fs := flag.NewFlagSet("pentagons", flag.ExitOnError)
	res := fs.Int("res", 0, "resolution (0-15)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cells, err := h3.GetPentagons(*res)
	if err != nil {
		return err
	}
	for _, c := range cells {
		fmt.Println(c)
	}
	return nil
}
