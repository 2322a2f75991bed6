package config

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const sampleConfig = `
folders:
  sd_dir: /srv/experiment/synthetic
  results_dir: /srv/experiment/results
datasets:
  - D5
  - D6
seed: 7
`

func chdir(dir string) func() {
	wd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
	return func() { os.Chdir(wd) }
}

func TestLoad(t *testing.T) {
	Convey("While loading the experiment configuration", t, func() {
		dir := t.TempDir()
		restore := chdir(dir)
		Reset(restore)

		Convey("Without any config file the defaults apply", func() {
			cfg, err := Load("")
			So(err, ShouldBeNil)
			So(cfg, ShouldResemble, DefaultConfig())
		})

		Convey("An explicit path is loaded and layered over the defaults", func() {
			path := filepath.Join(dir, "custom.yml")
			So(os.WriteFile(path, []byte(sampleConfig), 0644), ShouldBeNil)

			cfg, err := Load(path)
			So(err, ShouldBeNil)
			So(cfg.Folders.SyntheticDir, ShouldEqual, "/srv/experiment/synthetic")
			So(cfg.Folders.ResultsDir, ShouldEqual, "/srv/experiment/results")
			So(cfg.Datasets, ShouldResemble, []string{"D5", "D6"})
			So(cfg.Seed, ShouldEqual, 7)

			Convey("Fields absent from the file keep their defaults", func() {
				So(cfg.Folders.DataDir, ShouldEqual, "data/original")
				So(cfg.Models, ShouldResemble, DefaultConfig().Models)
			})
		})

		Convey("The working directory is searched by default", func() {
			So(os.WriteFile("experiment_config.yml", []byte(sampleConfig), 0644), ShouldBeNil)

			cfg, err := Load("")
			So(err, ShouldBeNil)
			So(cfg.Seed, ShouldEqual, 7)
		})

		Convey("The parent directory is searched as a fallback", func() {
			So(os.WriteFile("experiment_config.yml", []byte(sampleConfig), 0644), ShouldBeNil)
			sub := filepath.Join(dir, "notebooks")
			So(os.Mkdir(sub, 0755), ShouldBeNil)
			Reset(chdir(sub))

			cfg, err := Load("")
			So(err, ShouldBeNil)
			So(cfg.Datasets, ShouldResemble, []string{"D5", "D6"})
		})

		Convey("A named file that does not exist is an error", func() {
			cfg, err := Load(filepath.Join(dir, "nope.yml"))
			So(err, ShouldNotBeNil)
			So(cfg, ShouldResemble, DefaultConfig())
		})

		Convey("Invalid YAML is an error", func() {
			path := filepath.Join(dir, "broken.yml")
			So(os.WriteFile(path, []byte("folders: [not: a: mapping"), 0644), ShouldBeNil)

			_, err := Load(path)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "failed to parse config file")
		})
	})
}

func TestSave(t *testing.T) {
	Convey("While saving a configuration", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "experiment_config.yml")

		cfg := DefaultConfig()
		cfg.Datasets = []string{"D9"}
		cfg.SetupParams = map[string]any{"fold": 10, "normalize": true}
		cfg.Seed = 1234
		So(cfg.Save(path), ShouldBeNil)

		Convey("The file loads back to the same configuration", func() {
			loaded, err := Load(path)
			So(err, ShouldBeNil)
			So(loaded, ShouldResemble, cfg)
		})

		Convey("An unwritable path is an error", func() {
			err := cfg.Save(filepath.Join(dir, "missing", "experiment_config.yml"))
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "failed to write config file")
		})
	})
}
