package configs

import "time"

// Keeper configures the in-process automation caller that periodically
// polls open campaigns and triggers finalization once their deadline has
// passed. Disable it when an external caller performs the upkeep.
type Keeper struct {
	Enabled  bool          `env:"ENABLED" envDefault:"true"`
	Interval time.Duration `env:"INTERVAL" envDefault:"30s"`
}
