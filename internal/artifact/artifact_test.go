package artifact

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func sample(name, dataset string) Artifact {
	return Artifact{
		Name:      name,
		Dataset:   dataset,
		Method:    "ctgan",
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Params:    map[string]string{"epochs": "300", "batch_size": "500"},
		Metrics:   map[string]float64{"accuracy": 0.91},
	}
}

func TestSaveAndLoadDir(t *testing.T) {
	Convey("While round-tripping artifact bundles through a directory tree", t, func() {
		dir := t.TempDir()
		So(os.Mkdir(filepath.Join(dir, "ctgan"), 0755), ShouldBeNil)

		first := sample("run-a", "D1")
		second := sample("run-b", "D2")
		So(Save(filepath.Join(dir, "a.bin"), first), ShouldBeNil)
		So(Save(filepath.Join(dir, "ctgan", "b.bin"), second), ShouldBeNil)

		Convey("Every bundle in the tree is loaded, in lexical order", func() {
			arts, err := LoadDir(dir)
			So(err, ShouldBeNil)
			So(arts, ShouldResemble, []Artifact{first, second})
		})

		Convey("Loading an empty directory yields no artifacts", func() {
			empty := t.TempDir()
			arts, err := LoadDir(empty)
			So(err, ShouldBeNil)
			So(arts, ShouldHaveLength, 0)
		})

		Convey("A file that is not a gob bundle fails the load with its path", func() {
			junk := filepath.Join(dir, "junk.bin")
			So(os.WriteFile(junk, []byte("not a bundle"), 0644), ShouldBeNil)

			_, err := LoadDir(dir)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "junk.bin")
		})

		Convey("A missing directory is an error", func() {
			_, err := LoadDir(filepath.Join(dir, "gone"))
			So(err, ShouldNotBeNil)
		})
	})
}
