// Package shop defines the permanent stone upgrades purchasable with banked
// coins, and applies purchased levels to the stone's stats.
package shop

import (
	"fmt"
	"math"

	"github.com/vovakirdan/skipstone/internal/config"
	"github.com/vovakirdan/skipstone/internal/games/skip"
	"github.com/vovakirdan/skipstone/internal/storage"
)

// Hard caps for multiplicative stats. Past these the stone stops losing
// speed and the run never ends.
const (
	maxBounciness   = 0.95
	maxAerodynamics = 0.995
)

// Track is one upgrade line: which stat it raises, by how much per level,
// and how its cost grows.
type Track struct {
	Stat       string
	Name       string
	Desc       string
	BaseCost   int
	CostGrowth float64
	Delta      float64 // added to the stat per purchased level
	MaxLevel   int
}

// Tracks lists every purchasable upgrade, in display order.
var Tracks = []Track{
	{
		Stat:       "value",
		Name:       "Density",
		Desc:       "heavier impacts, more score per skip",
		BaseCost:   50,
		CostGrowth: 1.6,
		Delta:      2.0,
		MaxLevel:   10,
	},
	{
		Stat:       "weight",
		Name:       "Mass",
		Desc:       "harder hits, but gravity bites more",
		BaseCost:   40,
		CostGrowth: 1.5,
		Delta:      0.1,
		MaxLevel:   8,
	},
	{
		Stat:       "bounciness",
		Name:       "Elasticity",
		Desc:       "keep more height on every bounce",
		BaseCost:   60,
		CostGrowth: 1.7,
		Delta:      0.02,
		MaxLevel:   10,
	},
	{
		Stat:       "aerodynamics",
		Name:       "Polish",
		Desc:       "cut through the air with less drag",
		BaseCost:   80,
		CostGrowth: 1.8,
		Delta:      0.0005,
		MaxLevel:   10,
	},
	{
		Stat:       "max_power",
		Name:       "Arm Strength",
		Desc:       "raise the launch speed ceiling",
		BaseCost:   70,
		CostGrowth: 1.6,
		Delta:      2.0,
		MaxLevel:   10,
	},
}

// TrackByStat looks up an upgrade track by its stat key.
func TrackByStat(stat string) (Track, bool) {
	for _, tr := range Tracks {
		if tr.Stat == stat {
			return tr, true
		}
	}
	return Track{}, false
}

// Cost returns the price of buying the next level when the current level is
// the given one. Geometric growth, rounded to whole coins.
func (t Track) Cost(level int) int {
	return int(math.Round(float64(t.BaseCost) * math.Pow(t.CostGrowth, float64(level))))
}

// ApplyLevels folds purchased upgrade levels into the base player stats.
// Unknown stats in the map are ignored; multiplicative stats are capped.
func ApplyLevels(base config.PlayerConfig, levels map[string]int) skip.Stats {
	stats := skip.StatsFromConfig(base)

	for _, tr := range Tracks {
		level := levels[tr.Stat]
		if level <= 0 {
			continue
		}
		if level > tr.MaxLevel {
			level = tr.MaxLevel
		}
		bonus := tr.Delta * float64(level)

		switch tr.Stat {
		case "value":
			stats.Value += bonus
		case "weight":
			stats.Weight += bonus
		case "bounciness":
			stats.Bounciness = math.Min(stats.Bounciness+bonus, maxBounciness)
		case "aerodynamics":
			stats.Aerodynamics = math.Min(stats.Aerodynamics+bonus, maxAerodynamics)
		case "max_power":
			stats.MaxPower += bonus
		}
	}

	return stats
}

// Item is a track joined with the player's current progress on it.
type Item struct {
	Track
	Level    int
	NextCost int // 0 when maxed
	Maxed    bool
}

// Service ties the upgrade catalog to the persistent wallet and levels.
type Service struct {
	store *storage.Store
}

// NewService creates a shop service backed by the given store.
func NewService(store *storage.Store) *Service {
	return &Service{store: store}
}

// Items returns the full catalog with the player's current levels and next
// prices.
func (s *Service) Items() ([]Item, error) {
	levels, err := s.store.UpgradeLevels()
	if err != nil {
		return nil, fmt.Errorf("shop: cannot load upgrade levels: %w", err)
	}

	items := make([]Item, 0, len(Tracks))
	for _, tr := range Tracks {
		it := Item{Track: tr, Level: levels[tr.Stat]}
		if it.Level >= tr.MaxLevel {
			it.Maxed = true
		} else {
			it.NextCost = tr.Cost(it.Level)
		}
		items = append(items, it)
	}
	return items, nil
}

// Buy purchases the next level of the given stat: debits the wallet and
// stores the new level. Returns the updated item.
func (s *Service) Buy(stat string) (Item, error) {
	tr, ok := TrackByStat(stat)
	if !ok {
		return Item{}, fmt.Errorf("shop: unknown upgrade %q", stat)
	}

	levels, err := s.store.UpgradeLevels()
	if err != nil {
		return Item{}, fmt.Errorf("shop: cannot load upgrade levels: %w", err)
	}
	level := levels[stat]
	if level >= tr.MaxLevel {
		return Item{}, fmt.Errorf("shop: %s is already at max level", tr.Name)
	}

	cost := tr.Cost(level)
	if err := s.store.SpendCoins(cost); err != nil {
		return Item{}, fmt.Errorf("shop: cannot buy %s: %w", tr.Name, err)
	}
	if err := s.store.SetUpgradeLevel(stat, level+1); err != nil {
		return Item{}, fmt.Errorf("shop: cannot record purchase: %w", err)
	}

	it := Item{Track: tr, Level: level + 1}
	if it.Level >= tr.MaxLevel {
		it.Maxed = true
	} else {
		it.NextCost = tr.Cost(it.Level)
	}
	return it, nil
}

// PlayerStats loads the purchased levels and applies them to the base
// config, yielding the stats the next run starts with.
func (s *Service) PlayerStats(base config.PlayerConfig) (skip.Stats, error) {
	levels, err := s.store.UpgradeLevels()
	if err != nil {
		return skip.Stats{}, fmt.Errorf("shop: cannot load upgrade levels: %w", err)
	}
	return ApplyLevels(base, levels), nil
}
