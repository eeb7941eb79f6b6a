package main

import (
	"encoding/json"
	"log"
	"os"
	"strconv"

	"github.com/Eliasin/projections/shared/geom"
	"github.com/Eliasin/projections/shared/state"
)

// parseVector parses three consecutive command line arguments as a vector.
func parseVector(args []string) (geom.Vector, error) {
	var components [3]float64
	for i := 0; i < 3; i++ {
		parsed, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return geom.Vector{}, err
		}
		components[i] = parsed
	}
	return geom.Vector{X: components[0], Y: components[1], Z: components[2]}, nil
}

func main() {
	// Make sure we have enough parameters.
	if len(os.Args) != 3 && len(os.Args) != 9 {
		log.Fatalln("Improper parameters.  This program requires the parameters:" +
			"\n\t(1) scene file path" +
			"\n\t(2) output file path" +
			"\n\t(3-8) region bounds, min x y z then max x y z (optional)")
	}

	// Read in the scene.
	scn, err := state.LoadScene(os.Args[1])
	if err != nil {
		log.Fatalf("Could not read in scene \"%s\": %v.\n", os.Args[1], err)
	}

	// Select the objects to project.
	objs := scn.Objects()
	if len(os.Args) == 9 {
		min, err := parseVector(os.Args[3:6])
		if err != nil {
			log.Fatalf("Could not parse region minimum: %v.\n", err)
		}
		max, err := parseVector(os.Args[6:9])
		if err != nil {
			log.Fatalf("Could not parse region maximum: %v.\n", err)
		}
		objs = scn.Within(min, max)
	}

	// Project every outline of every selected object.
	shapes := make([][]geom.Coord, 0)
	for _, obj := range objs {
		for _, outline := range obj.Outlines() {
			shape, err := scn.View.ProjectPoints(outline)
			if err != nil {
				log.Fatalf("Could not project scene: %v.\n", err)
			}
			shapes = append(shapes, shape)
		}
	}

	// Write the projected outlines out as JSON.
	data, err := json.MarshalIndent(shapes, "", "\t")
	if err != nil {
		log.Fatalf("Could not encode projected outlines: %v.\n", err)
	}
	if err := os.WriteFile(os.Args[2], data, 0644); err != nil {
		log.Fatalf("Could not write \"%s\": %v.\n", os.Args[2], err)
	}
}
