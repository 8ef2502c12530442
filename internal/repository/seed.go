package repository

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed is the dataset substituted for collections that have no stored value
type Seed struct {
	Supplies  []models.Supply   `yaml:"supplies"`
	MenuItems []models.MenuItem `yaml:"menuItems"`
	Sales     []models.Sale     `yaml:"-"`
}

// DefaultSeed returns the embedded seed dataset
func DefaultSeed() (*Seed, error) {
	return ParseSeed(defaultSeed)
}

// LoadSeedFile reads a seed dataset from a YAML file.
// An empty path returns the embedded default.
func LoadSeedFile(path string) (*Seed, error) {
	if path == "" {
		return DefaultSeed()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes a YAML seed dataset
func ParseSeed(data []byte) (*Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}

	for i := range seed.MenuItems {
		if seed.MenuItems[i].SupplyRequirements == nil {
			seed.MenuItems[i].SupplyRequirements = []models.SupplyRequirement{}
		}
	}
	if seed.Supplies == nil {
		seed.Supplies = []models.Supply{}
	}
	if seed.MenuItems == nil {
		seed.MenuItems = []models.MenuItem{}
	}
	seed.Sales = []models.Sale{}

	return &seed, nil
}
