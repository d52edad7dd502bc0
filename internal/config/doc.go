// Package config manages user-level settings stored at ~/.studioutils/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the studio URL launch targets resolve against and an optional catalog file.
package config
