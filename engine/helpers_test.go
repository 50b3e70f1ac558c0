package engine

import "github.com/decogo/zhl16/config"

func defaultTestConfig() config.Deco {
	return config.Default()
}
