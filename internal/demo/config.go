package demo

import (
	"strconv"
	"strings"

	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/errorkit"
)

const ErrInvalidList errorkit.Error = "ErrInvalidList"

type Config struct {
	// Precision is the number of decimals used when printing averages and rates.
	Precision int `env:"WINDOWDEMO_PRECISION" default:"2"`
}

func LoadConfig() (Config, error) {
	var c Config
	if err := env.Load(&c); err != nil {
		return Config{}, err
	}
	if c.Precision < 0 {
		c.Precision = 0
	}
	return c, nil
}

func (c Config) FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', c.Precision, 64)
}

func parseInts(raw string) ([]int, error) {
	return parseList(raw, strconv.Atoi)
}

func parseList[T any](raw string, parse func(string) (T, error)) ([]T, error) {
	var vs []T
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := parse(part)
		if err != nil {
			return nil, ErrInvalidList.Wrap(err)
		}
		vs = append(vs, v)
	}
	return vs, nil
}
