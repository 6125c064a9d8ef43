// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

//nolint:gochecknoinits // Configuration is loaded once, for the whole runtime.
func init() {
	loadFirstApplicationConfigFile()
	dotEnvPath := `.env`
	for range 5 {
		if err := godotenv.Load(dotEnvPath); err == nil {
			break
		}
		dotEnvPath = fmt.Sprintf(`../%v`, dotEnvPath)
	}
}

func MustLoadFromKey(key string, cfg any) {
	if err := viper.UnmarshalKey(key, cfg); err != nil {
		log.Panic(errors.Wrapf(err, "failed to load config by key %q", key))
	}
}

func loadFirstApplicationConfigFile() {
	for _, configFile := range findAllApplicationConfigFiles() {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err == nil {
			return
		} else if !errors.Is(err, os.ErrNotExist) {
			log.Panic(err)
		}
	}

	log.Panic(errors.New("could not find any application.yaml files"))
}

func findAllApplicationConfigFiles() []string {
	var dirs []string
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if executable, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(executable))
	}
	dirs = append(dirs, moduleRootDirs()...)

	var files []string
	for _, dir := range dirs {
		for _, pattern := range []string{
			filepath.Join(dir, ".testdata", "application.yaml"),
			filepath.Join(dir, "application.yaml"),
		} {
			if matches, err := filepath.Glob(pattern); err != nil {
				log.Println(errors.Wrapf(err, "glob failed for [%v]", pattern))
			} else {
				files = append(files, matches...)
			}
		}
	}

	return files
}

func moduleRootDirs() []string {
	//nolint:dogsled // Only the file of the caller frame matters.
	_, callerFile, _, _ := runtime.Caller(0)

	return []string{
		filepath.Join(filepath.Dir(callerFile), ".."),
		filepath.Join(filepath.Dir(callerFile), "..", ".."),
	}
}
