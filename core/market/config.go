package market

// Config tunes the market price resolver.
type Config struct {
	// EpsFraction is the share of an item's price range used as the clustering radius.
	EpsFraction float64 `mapstructure:"eps_fraction" default:"0.05"`
	// MinEps floors the clustering radius, in copper.
	MinEps float64 `mapstructure:"min_eps" default:"1000"`
	// MinSamples is the neighborhood size, the point itself included, that makes a core point.
	MinSamples int `mapstructure:"min_samples" default:"2"`
	// MinObservations is the listing count below which the minimum price is used as is.
	MinObservations int `mapstructure:"min_observations" default:"3"`
}

// DefaultConfig returns the stock resolver tuning.
func DefaultConfig() Config {
	return Config{
		EpsFraction:     0.05,
		MinEps:          1000,
		MinSamples:      2,
		MinObservations: 3,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.EpsFraction <= 0 {
		c.EpsFraction = d.EpsFraction
	}
	if c.MinEps < 0 {
		c.MinEps = d.MinEps
	}
	if c.MinSamples <= 0 {
		c.MinSamples = d.MinSamples
	}
	if c.MinObservations <= 0 {
		c.MinObservations = d.MinObservations
	}
	return c
}
