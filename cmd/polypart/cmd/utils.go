package cmd

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/arl/gobj"
	yaml "gopkg.in/yaml.v2"

	polypart "github.com/arl/go-polypart"
)

// confirmIfExists checks that a file exists, and ask the user confirmation to
// go forward.
//
// It returns true if the file doesn't exist, or if the user answered yes to the
// confirmation msg showed on command line. If ok is false or err is not nil,
// the operation on path should be aborted.
func confirmIfExists(path, msg string) (ok bool, err error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			// file does not exist
			return true, nil
		}
		return false, err
	}
	return askForConfirmation(msg), nil
}

// askForConfirmation show msg and ask for the user to type y or n (typing ENTER
// default to no)
func askForConfirmation(msg string) bool {
	fmt.Println(msg)
	reader := bufio.NewReader(os.Stdin)
	defaultInput := byte('N')

	for {
		input, _ := reader.ReadString('\n')
		c := string([]byte(input)[0])[0]
		if c == 10 {
			// ENTER
			c = defaultInput
		}
		switch c {
		case 'Y', 'y':
			return true
		case 'N', 'n':
			return false
		}
	}
}

func check(err error) {
	if err != nil {
		fmt.Printf("error, %v\n", err)
		os.Exit(-1)
	}
}

func unmarshalYAMLFile(path string, out interface{}) error {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(buf, out)
}

// loadPolygons reads a polygon set from path. OBJ files go through gobj,
// their face loops projected onto the XY plane; anything else is read as a
// polygon dump.
func loadPolygons(path string) ([]polypart.Polygon, error) {
	if filepath.Ext(path) == ".obj" {
		return loadOBJPolygons(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return polypart.ReadPolygons(f)
}

func loadOBJPolygons(path string) ([]polypart.Polygon, error) {
	of, err := gobj.Load(path)
	if err != nil {
		return nil, err
	}

	verts := of.Verts()
	polys := make([]polypart.Polygon, 0, len(of.Polys()))
	for _, face := range of.Polys() {
		if len(face) < 3 {
			return nil, fmt.Errorf("face with %d vertices in '%s'", len(face), path)
		}
		points := make([]polypart.Point, len(face))
		for i, idx := range face {
			v := verts[idx]
			points[i] = polypart.Point{X: v.X(), Y: v.Y()}
		}
		poly := polypart.NewPolygon(points, false)
		poly.SetOrientation(polypart.CounterClockwise)
		polys = append(polys, poly)
	}
	return polys, nil
}

// savePolygons writes the polygon set to path in dump format.
func savePolygons(path string, polys []polypart.Polygon, decimal bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return polypart.WritePolygons(f, polys, decimal)
}
