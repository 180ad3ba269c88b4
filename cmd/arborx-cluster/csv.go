package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/kursatyurt/ArborX"
)

// loadPoints reads a CSV file of x,y,z rows. A trailing row with fewer than
// 3 fields after trimming is an error; blank lines are skipped.
func loadPoints(path string) ([]arborx.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var points []arborx.Point
	line := 0
	for {
		record, err := r.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading input line %d: %w", line, err)
		}
		if len(record) == 0 || (len(record) == 1 && record[0] == "") {
			continue
		}
		if len(record) < 3 {
			return nil, fmt.Errorf("line %d: expected x,y,z, got %d fields", line, len(record))
		}
		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid x: %w", line, err)
		}
		y, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid y: %w", line, err)
		}
		z, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid z: %w", line, err)
		}
		points = append(points, arborx.Point{X: x, Y: y, Z: z})
	}
	return points, nil
}
