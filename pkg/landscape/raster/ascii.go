package raster

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kant/landscapemetrics/pkg/landscape/internalerr"
)

// ParseASCII parses a whitespace-separated integer matrix. Blank lines
// and lines starting with '#' are skipped.
func ParseASCII(text string) (*Grid, error) {
	var cells [][]int

	for ln, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("raster: line %d: %q is not an integer: %w",
					ln+1, f, internalerr.ErrInvalidInput)
			}
			row[i] = v
		}
		cells = append(cells, row)
	}

	return New(cells)
}

// LoadASCII reads an ASCII matrix file from disk.
func LoadASCII(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseASCII(string(data))
}
