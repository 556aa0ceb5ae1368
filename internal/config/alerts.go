package config

type Alerts struct {
	Enabled  bool    `env:"ALERTS_ENABLED" envDefault:"true"`
	MinScore float64 `env:"ALERTS_MIN_SCORE" envDefault:"100"`
	Webhook  string  `env:"DISCORD_WEBHOOK" json:"-"`
	Secret   string  `env:"ALERTS_SECRET" envDefault:"change-me" json:"-"`
}
