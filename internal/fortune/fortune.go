// Package fortune holds the fortune-cookie texts served by "cookie fortune".
//
// The built-in list is [Default]. A deployment may replace it with a YAML
// file and, optionally, have a [Store] reload that file whenever it changes
// on disk. Readers always receive an immutable snapshot, so a reload never
// affects a resolution that is already running.
package fortune

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmpty is returned when a fortune file holds no usable entries.
var ErrEmpty = errors.New("fortune list is empty")

// Default is the built-in fortune list.
var Default = []string{
	"A cookie a day keeps the sadness away.",
	"You will find a chocolate chip where you least expect it.",
	"Good things come to those who bake.",
	"Your code will compile on the first try. Today only.",
	"The crumbs you leave behind will lead someone home.",
	"An oven timer is just a countdown to happiness.",
	"Share your last cookie and gain a friend for life.",
	"Fortune favors the bold... and the well-frosted.",
	"You are the milk to someone's cookie.",
	"Beware of cookies that bite back.",
	"Patience: the dough must rest before it can rise.",
	"A surprise snack is headed your way.",
}

// File is the on-disk YAML layout:
//
//	fortunes:
//	  - "First fortune"
//	  - "Second fortune"
type File struct {
	Fortunes []string `yaml:"fortunes"`
}

// LoadFile reads and validates a fortune file. Blank entries are dropped;
// a file with no remaining entries is rejected with ErrEmpty.
func LoadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fortune file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fortune file: %w", err)
	}

	fortunes := make([]string, 0, len(f.Fortunes))
	for _, s := range f.Fortunes {
		if s = strings.TrimSpace(s); s != "" {
			fortunes = append(fortunes, s)
		}
	}
	if len(fortunes) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmpty)
	}
	return fortunes, nil
}
