package demo

import (
	"context"
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/Pallinder/go-randomdata"
	"github.com/dataiter/windowkit/pkg/groupkit"
	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
)

var defaultNames = []string{"Alan", "Adam", "Wes", "Will", "Albert", "Steven"}

type GroupByCommand struct {
	Key    string `flag:"key" default:"first" enum:"first,last,len," desc:"what to group the names by"`
	Sorted bool   `flag:"sorted" desc:"sort the names by the key before grouping consecutive runs"`
	Names  string `flag:"names" desc:"comma separated names to group instead of the built-in list"`
	Random int    `flag:"random" default:"0" desc:"group N random first names instead of the built-in list"`

	Config Config
}

func (cmd GroupByCommand) Summary() string { return "group names consecutively and by key" }

func (cmd GroupByCommand) ServeCLI(w cli.Response, r *cli.Request) {
	run(w, r, "groupby", func(ctx context.Context) error {
		names, err := cmd.names()
		if err != nil {
			return err
		}
		key := groupKey(cmd.Key)
		logger.Debug(ctx, "grouping names",
			logging.Field("key", cmd.Key),
			logging.Field("sorted", cmd.Sorted),
			logging.Field("names", len(names)))

		section(w, "groupby")
		fmt.Fprintf(w, "names: %v\n\n", names)
		for i, name := range names {
			fmt.Fprintf(w, "step %d: key(%q) = %q\n", i+1, name, key(name))
		}

		if cmd.Sorted {
			fmt.Fprintf(w, "\nconsecutive groups after sorting by key:\n")
			groups, err := groupkit.SortedConsecutive(names, key)
			if err != nil {
				return err
			}
			for _, g := range groups {
				fmt.Fprintf(w, "  %s: %v\n", g.Key, g.Values)
			}
		} else {
			fmt.Fprintf(w, "\nconsecutive groups (a key may repeat):\n")
			groups, err := groupkit.Consecutive(slices.Values(names), key)
			if err != nil {
				return err
			}
			for k, vs := range groups {
				fmt.Fprintf(w, "  %s: %v\n", k, vs)
			}
		}

		fmt.Fprintf(w, "\ngroups collected by key:\n")
		groups, err := groupkit.By(names, key)
		if err != nil {
			return err
		}
		for _, g := range groups {
			fmt.Fprintf(w, "  %s: %v\n", g.Key, g.Values)
		}
		return nil
	})
}

func (cmd GroupByCommand) names() ([]string, error) {
	switch {
	case 0 < cmd.Random:
		names := make([]string, 0, cmd.Random)
		for i := 0; i < cmd.Random; i++ {
			names = append(names, randomdata.FirstName(randomdata.RandomGender))
		}
		return names, nil
	case cmd.Names != "":
		return parseList(cmd.Names, func(s string) (string, error) { return s, nil })
	default:
		return slices.Clone(defaultNames), nil
	}
}

func groupKey(name string) func(string) string {
	switch name {
	case "last":
		return func(s string) string {
			rs := []rune(s)
			if len(rs) == 0 {
				return ""
			}
			return string(rs[len(rs)-1])
		}
	case "len":
		return func(s string) string { return fmt.Sprintf("%02d", utf8.RuneCountInString(s)) }
	default:
		return func(s string) string {
			rs := []rune(s)
			if len(rs) == 0 {
				return ""
			}
			return string(rs[0])
		}
	}
}
