package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexiusacademia/goroark/internal/beam"
	"github.com/alexiusacademia/goroark/internal/nscp"
)

// parseLoad reads a point load written as P@a, P@a:kind or P@a:kind:label,
// e.g. "20000@2000:L:girder".
func parseLoad(s string) (beam.PointLoad, error) {
	at := strings.Index(s, "@")
	if at < 0 {
		return beam.PointLoad{}, fmt.Errorf("load %q: expected P@a", s)
	}
	p, err := strconv.ParseFloat(strings.TrimSpace(s[:at]), 64)
	if err != nil {
		return beam.PointLoad{}, fmt.Errorf("load %q: bad magnitude: %w", s, err)
	}

	rest := strings.SplitN(s[at+1:], ":", 3)
	a, err := strconv.ParseFloat(strings.TrimSpace(rest[0]), 64)
	if err != nil {
		return beam.PointLoad{}, fmt.Errorf("load %q: bad position: %w", s, err)
	}

	load := beam.PointLoad{P: p, A: a, Kind: nscp.Dead}
	if len(rest) > 1 {
		if load.Kind, err = nscp.ParseLoadType(rest[1]); err != nil {
			return beam.PointLoad{}, fmt.Errorf("load %q: %w", s, err)
		}
	}
	if len(rest) > 2 {
		load.Label = strings.TrimSpace(rest[2])
	}
	return load, nil
}

func parseLoads(specs []string) ([]beam.PointLoad, error) {
	loads := make([]beam.PointLoad, 0, len(specs))
	for _, s := range specs {
		l, err := parseLoad(s)
		if err != nil {
			return nil, err
		}
		loads = append(loads, l)
	}
	return loads, nil
}
