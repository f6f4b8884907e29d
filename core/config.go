package core

import (
	"github.com/fox-one/pkg/store/db"
)

// Config lendpool config
type Config struct {
	App    App       `json:"app"`
	DB     db.Config `json:"db"`
	Admins []string  `json:"admins"`
}

// IsAdmin check if the account may create pools
func (c *Config) IsAdmin(account string) bool {
	if len(c.Admins) <= 0 {
		return false
	}

	for _, a := range c.Admins {
		if a == account {
			return true
		}
	}

	return false
}

// App app config
type App struct {
	Location string `json:"location"`
}
