package main

import (
	"image/color"
	"log"
	"os"
	"strconv"

	"github.com/Eliasin/projections/shared/geom"
	"github.com/Eliasin/projections/shared/input"
	"github.com/Eliasin/projections/shared/screen"
	"github.com/Eliasin/projections/shared/state"
	"github.com/veandco/go-sdl2/sdl"
)

// snapshotPath is where the viewer writes scene snapshots on request.
const snapshotPath = "scene.snapshot"

// lineRadius is the thickness of drawn outlines and their endpoint markers.
const lineRadius = 3

// lineColour is the colour outlines are drawn in, against a white background.
var lineColour = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x00}

// backgroundFill is the raw pixel value the surface is cleared to each frame.
const backgroundFill uint32 = 0xFFFFFFFF

// draw renders every object's wireframe to the screen.
// All outlines are projected before any pixel changes, so a degenerate
// configuration returns an error with the previous frame still intact.
func draw(window *sdl.Window, surface *sdl.Surface, scn *state.Scene) error {
	shapes := make([][]geom.Coord, 0)
	for _, obj := range scn.Objects() {
		for _, outline := range obj.Outlines() {
			shape, err := scn.View.ProjectPoints(outline)
			if err != nil {
				return err
			}
			shapes = append(shapes, shape)
		}
	}

	// Clear the screen and draw each projected outline.
	surface.FillRect(nil, backgroundFill)
	for _, shape := range shapes {
		screen.DrawPolygon(surface, shape, lineColour, lineRadius)
	}

	// Update the screen.
	return window.UpdateSurface()
}

func main() {
	// Make sure we have enough parameters.
	if len(os.Args) != 3 && len(os.Args) != 4 {
		log.Fatalln("Improper parameters.  This program requires the parameters:" +
			"\n\t(1) window width" +
			"\n\t(2) window height" +
			"\n\t(3) scene file path (optional, built-in demo scene otherwise)")
	}

	// Parse the command line parameters.
	width, err := strconv.ParseUint(os.Args[1], 10, 64)
	if err != nil {
		log.Fatalf("Could not parse window width \"%s\": %v.\n", os.Args[1], err)
	}
	height, err := strconv.ParseUint(os.Args[2], 10, 64)
	if err != nil {
		log.Fatalf("Could not parse window height \"%s\": %v.\n", os.Args[2], err)
	}

	// Load the scene.
	var scn *state.Scene
	if len(os.Args) == 4 {
		scn, err = state.LoadScene(os.Args[3])
		if err != nil {
			log.Fatalf("Could not read in scene \"%s\": %v.\n", os.Args[3], err)
		}
	} else {
		scn, err = state.DemoScene()
		if err != nil {
			log.Fatalf("Could not build demo scene: %v.\n", err)
		}
	}

	// Set up the screen.
	window, surface, err := screen.StartScreen("Projections", int(width), int(height))
	if err != nil {
		log.Fatalf("Could not start screen: %v.\n", err)
	}
	defer screen.StopScreen(window)

	// Run the input/update/render loop.
	var prevUpdate, currentUpdate uint32
	for running := true; running; {
		prevUpdate = sdl.GetTicks()

		// Handle new inputs.  Viewpoint moves apply here, strictly between
		// frames, so each frame projects from a fixed eye point.
		for _, e := range input.Poll() {
			switch e {
			case input.Quit:
				running = false
			case input.Snapshot:
				if err := state.WriteSnapshot(snapshotPath, scn); err != nil {
					log.Printf("Could not write snapshot to \"%s\": %v.\n", snapshotPath, err)
				}
			default:
				if delta, moves := input.MoveDelta(e); moves {
					scn.View.Translate(delta)
				}
			}
		}

		// Draw the screen.  A frame that cannot be projected is skipped, not fatal.
		if err := draw(window, surface, scn); err != nil {
			log.Printf("Frame skipped: %v.\n", err)
		}

		// If there's still time before the next frame needs to be drawn, wait.
		currentUpdate = sdl.GetTicks()
		if currentUpdate-prevUpdate < screen.MsPerFrame {
			sdl.Delay(screen.MsPerFrame - (currentUpdate - prevUpdate))
		}
	}
}
