package store

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

type SeedUser struct {
	Email     string `yaml:"email"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	FirstName string `yaml:"firstName"`
	LastName  string `yaml:"lastName"`
	Phone     string `yaml:"phone"`
	Confirmed bool   `yaml:"confirmed"`
}

// Seed is the initial content of the CMS.
type Seed struct {
	Users    []SeedUser `yaml:"users"`
	Lodges   []Lodge    `yaml:"lodges"`
	Products []Product  `yaml:"products"`
	Safaris  []Safari   `yaml:"safaris"`
}

// LoadSeed reads a seed file. An empty path loads the built-in catalogue.
func LoadSeed(path string) (Seed, error) {
	raw := defaultSeed
	if path != "" {
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			return Seed{}, fmt.Errorf("read seed: %w", err)
		}
	}
	return ParseSeed(raw)
}

func ParseSeed(raw []byte) (Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return Seed{}, fmt.Errorf("parse seed: %w", err)
	}
	return seed, nil
}
