package cmd

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	yaml "gopkg.in/yaml.v2"

	polypart "github.com/arl/go-polypart"
)

func TestSettingsRoundTrip(t *testing.T) {
	want := NewSettings()
	want.Algorithm = "mono"
	want.Decimal = true

	buf, err := yaml.Marshal(want)
	if err != nil {
		t.Fatal(err)
	}

	dir, err := ioutil.TempDir("", "polypart")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "polypart.yml")
	if err := ioutil.WriteFile(path, buf, 0644); err != nil {
		t.Fatal(err)
	}

	var got Settings
	if err := unmarshalYAMLFile(path, &got); err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("want settings %+v, got %+v", want, got)
	}
}

func TestLoadPolygonsDump(t *testing.T) {
	dir, err := ioutil.TempDir("", "polypart")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	dump := "1\n3\n0\n0 0\n4 0\n0 4\n"
	path := filepath.Join(dir, "tri.dump")
	if err := ioutil.WriteFile(path, []byte(dump), 0644); err != nil {
		t.Fatal(err)
	}

	polys, err := loadPolygons(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(polys) != 1 || polys[0].NumPoints() != 3 {
		t.Fatalf("want 1 polygon with 3 vertices, got %v", polys)
	}
}

func TestLoadPolygonsOBJ(t *testing.T) {
	dir, err := ioutil.TempDir("", "polypart")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	// A single CW quad face: the loader must rewind it CCW.
	obj := `v 0 0 0
v 0 4 0
v 4 4 0
v 4 0 0
f 1 2 3 4
`
	path := filepath.Join(dir, "quad.obj")
	if err := ioutil.WriteFile(path, []byte(obj), 0644); err != nil {
		t.Fatal(err)
	}

	polys, err := loadPolygons(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(polys) != 1 || polys[0].NumPoints() != 4 {
		t.Fatalf("want 1 polygon with 4 vertices, got %v", polys)
	}
	if polys[0].IsHole() {
		t.Errorf("OBJ face loaded as hole")
	}
	if polys[0].Orientation() != polypart.CounterClockwise {
		t.Errorf("want counter-clockwise face after load, got %v", polys[0].Orientation())
	}
}
