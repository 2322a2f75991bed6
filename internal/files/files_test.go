package files

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestFilenames(t *testing.T) {
	Convey("While listing a data directory", t, func() {
		dir := t.TempDir()
		touch(t, dir, "a.csv", "b.csv", "notes.txt")
		So(os.Mkdir(filepath.Join(dir, "sub.csv"), 0755), ShouldBeNil)

		Convey("Only files with the extension are returned, in order", func() {
			names, err := Filenames(dir, ".csv", false)
			So(err, ShouldBeNil)
			So(names, ShouldResemble, []string{"a.csv", "b.csv"})
		})

		Convey("Directories never count, even with a matching name", func() {
			names, err := Filenames(dir, ".csv", false)
			So(err, ShouldBeNil)
			So(names, ShouldNotContain, "sub.csv")
		})

		Convey("The directory prefix is attached on request", func() {
			names, err := Filenames(dir, ".txt", true)
			So(err, ShouldBeNil)
			So(names, ShouldResemble, []string{filepath.Join(dir, "notes.txt")})
		})

		Convey("A missing directory is an error", func() {
			_, err := Filenames(filepath.Join(dir, "gone"), ".csv", false)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSyntheticDataFiles(t *testing.T) {
	Convey("While resolving synthetic files for an original data id", t, func() {
		dir := t.TempDir()
		touch(t, dir,
			"SD3Q1_0.csv",
			"SD3Q2_14.csv",
			"SD31Q1_0.csv", // belongs to D31, not D3
			"SD4Q1_0.csv",
			"SD3Q1_0.txt",
			"readme.csv",
		)

		Convey("Only the id's own files match", func() {
			names, err := SyntheticDataFiles(dir, "D3")
			So(err, ShouldBeNil)
			So(names, ShouldResemble, []string{"SD3Q1_0.csv", "SD3Q2_14.csv"})
		})

		Convey("A multi-digit id matches its own files", func() {
			names, err := SyntheticDataFiles(dir, "D31")
			So(err, ShouldBeNil)
			So(names, ShouldResemble, []string{"SD31Q1_0.csv"})
		})

		Convey("An id with no matches yields an empty list", func() {
			names, err := SyntheticDataFiles(dir, "D9")
			So(err, ShouldBeNil)
			So(names, ShouldHaveLength, 0)
		})

		Convey("A bare letter id is rejected", func() {
			_, err := SyntheticDataFiles(dir, "D")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "too short")
		})
	})
}
