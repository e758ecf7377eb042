package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"

	"fantasywar/internal/league"
)

type Config struct {
	League   League
	Auction  Auction
	Data     Data
	Telegram Telegram
	Watch    Watch
}

type League struct {
	Name        string             `envconfig:"LEAGUE_NAME" default:"Fantasy Analytical League"`
	Teams       int                `envconfig:"LEAGUE_TEAMS" default:"16"`
	SeasonGames int                `envconfig:"SEASON_GAMES" default:"17"`
	MinGames    int                `envconfig:"MIN_GAMES" default:"1"`
	FlexSlots   int                `envconfig:"FLEX_SLOTS" default:"2"`
	FlexShares  map[string]float64 `envconfig:"FLEX_SHARES"`
}

type Auction struct {
	Budget int `envconfig:"AUCTION_BUDGET" default:"200"`
	Floor  int `envconfig:"AUCTION_FLOOR" default:"1"`
}

type Data struct {
	BaseURL  string        `envconfig:"DATA_BASE_URL"`
	CacheDir string        `envconfig:"CACHE_DIR" default:"data/cache"`
	CacheTTL time.Duration `envconfig:"CACHE_TTL" default:"168h"`
}

type Telegram struct {
	Token  string `envconfig:"TELEGRAM_TOKEN"`
	ChatID int64  `envconfig:"CHAT_ID"`
}

type Watch struct {
	Cron string `envconfig:"WATCH_CRON"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// BuildLeague applies the environment overrides on top of the default
// roster shape. Flex shares arrive as POSITION:WEIGHT pairs.
func (c *Config) BuildLeague() league.League {
	lg := league.Default()
	lg.Name = c.League.Name
	lg.Teams = c.League.Teams
	lg.SeasonGames = c.League.SeasonGames
	lg.MinGames = c.League.MinGames
	lg.FlexSlots = c.League.FlexSlots
	if len(c.League.FlexShares) > 0 {
		lg.FlexShares = make(map[league.Position]float64, len(c.League.FlexShares))
		for pos, w := range c.League.FlexShares {
			lg.FlexShares[league.Position(pos)] = w
		}
	}
	return lg
}
