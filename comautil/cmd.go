/*
Copyright © 2018 the COMA authors.
This file is part of COMA.

COMA is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

COMA is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with COMA.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package comautil holds the command-line interface to the COMA gas coma
// model.
package comautil

import (
	"fmt"
	"strings"

	"github.com/ctessum/unit"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/spatialmodel/coma"
	"github.com/spatialmodel/coma/aperture"
	"github.com/spatialmodel/coma/bib"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to COMA.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Q",
			usage: `
              Q is the gas production rate in molecules per second.`,
			defaultVal: 1.0e28,
			flagsets:   []*pflag.FlagSet{haserCmd.Flags()},
		},
		{
			name: "v",
			usage: `
              v is the radial outflow speed in km/s.`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{haserCmd.Flags()},
		},
		{
			name: "parent",
			usage: `
              parent is the photodissociation lengthscale of the parent
              species in km.`,
			defaultVal: 2.4e4,
			flagsets:   []*pflag.FlagSet{haserCmd.Flags()},
		},
		{
			name: "daughter",
			usage: `
              daughter is the photodissociation lengthscale of the daughter
              species in km. Zero means there is no daughter species.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{haserCmd.Flags()},
		},
		{
			name: "rho",
			usage: `
              rho is the projected distance in km at which the volume and
              column densities are reported.`,
			defaultVal: 1.0e4,
			flagsets:   []*pflag.FlagSet{haserCmd.Flags()},
		},
		{
			name: "aperture",
			usage: `
              aperture is the observing aperture kind: circular, annular,
              rectangular, or gaussian.`,
			defaultVal: "circular",
			flagsets:   []*pflag.FlagSet{haserCmd.Flags()},
		},
		{
			name: "size",
			usage: `
              size lists the aperture dimensions in km: the radius of a
              circular aperture, the inner and outer radii of an annular
              aperture, the side lengths of a rectangular aperture, or the
              standard deviation of a gaussian aperture.`,
			defaultVal: []string{"1e4"},
			flagsets:   []*pflag.FlagSet{haserCmd.Flags()},
		},
		{
			name: "source",
			usage: `
              source selects the literature source of the lookup. An empty
              string selects the default source for the species.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{speciesCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("COMA")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case []string:
				if option.shorthand == "" {
					set.StringSlice(option.name, option.defaultVal.([]string), option.usage)
				} else {
					set.StringSliceP(option.name, option.shorthand, option.defaultVal.([]string), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(haserCmd)
	Root.AddCommand(speciesCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("coma: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "coma",
	Short: "A cometary gas coma model.",
	Long: `COMA models the spatial distribution of gas species outgassed from a
comet nucleus and computes the column density and total molecule count
observed through a telescope aperture.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'COMA_var' where 'var' is
the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

// Version holds the version of this program.
var Version = "development"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("COMA v%s\n", Version)
		return nil
	},
	DisableAutoGenTag: true,
}

// haserCmd evaluates a Haser model.
var haserCmd = &cobra.Command{
	Use:   "haser",
	Short: "Compute gas coma observables with the Haser model.",
	Long: `haser builds a two-species photodissociation coma model from the
production rate, outflow speed, and lengthscale flags, and reports the
volume density and column density at the projected distance rho along with
the total number of molecules in the observing aperture.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		model, err := HaserFromConfig(Cfg)
		if err != nil {
			return err
		}
		ap, err := ApertureFromConfig(Cfg)
		if err != nil {
			return err
		}
		rho := coma.Kilometers(Cfg.GetFloat64("rho"))

		n, err := model.VolumeDensity(rho)
		if err != nil {
			return err
		}
		fmt.Printf("volume density at rho: %g m^-3\n", n.Value())

		sigma, err := model.ColumnDensity(rho, nil)
		if err != nil {
			return err
		}
		if sigma == nil {
			fmt.Println("column density at rho: unavailable")
		} else {
			fmt.Printf("column density at rho: %g m^-2\n", sigma.Value())
		}

		total, err := model.TotalNumber(ap, nil)
		if err != nil {
			return err
		}
		if total == nil {
			fmt.Println("total number in aperture: unavailable")
		} else {
			fmt.Printf("total number in aperture: %g\n", total.Value())
		}
		return nil
	},
	DisableAutoGenTag: true,
}

// speciesCmd looks up photodissociation properties.
var speciesCmd = &cobra.Command{
	Use:   "species [species]",
	Short: "Look up photodissociation properties of a gas species.",
	Long: `species prints the photodissociation lengthscale and timescale at
1 au of the named gas species, together with the publications the values
are taken from.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := Cfg.GetString("source")

		gamma, err := coma.PhotoLengthscale(args[0], source)
		if err == nil {
			fmt.Printf("lengthscale: %g km\n", gamma.Value()/1e3)
		} else {
			fmt.Println(err)
		}

		tau, err := coma.PhotoTimescale(args[0], source)
		if err == nil {
			for _, t := range tau {
				fmt.Printf("timescale: %g s\n", t.Value())
			}
		} else {
			fmt.Println(err)
		}

		for task, codes := range bib.References() {
			fmt.Printf("%s: %s\n", task, strings.Join(codes, ", "))
		}
		return nil
	},
	DisableAutoGenTag: true,
}

// HaserFromConfig builds a Haser model from the configuration flags.
func HaserFromConfig(cfg *viper.Viper) (*coma.Haser, error) {
	var daughter *unit.Unit
	if d := cfg.GetFloat64("daughter"); d != 0 {
		daughter = coma.Kilometers(d)
	}
	return coma.NewHaser(
		coma.PerSecond(cfg.GetFloat64("Q")),
		coma.KilometersPerSecond(cfg.GetFloat64("v")),
		coma.Kilometers(cfg.GetFloat64("parent")),
		daughter,
	)
}

// ApertureFromConfig builds an observing aperture from the configuration
// flags.
func ApertureFromConfig(cfg *viper.Viper) (aperture.Aperture, error) {
	sizes, err := sizesFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	kind := cfg.GetString("aperture")
	switch strings.ToLower(kind) {
	case "circular":
		if len(sizes) != 1 {
			return nil, fmt.Errorf("coma: a circular aperture needs 1 size (radius) but %d were given", len(sizes))
		}
		return &aperture.Circular{Radius: sizes[0]}, nil
	case "annular":
		if len(sizes) != 2 {
			return nil, fmt.Errorf("coma: an annular aperture needs 2 sizes (inner, outer) but %d were given", len(sizes))
		}
		return &aperture.Annular{Inner: sizes[0], Outer: sizes[1]}, nil
	case "rectangular":
		if len(sizes) != 2 {
			return nil, fmt.Errorf("coma: a rectangular aperture needs 2 sizes (side lengths) but %d were given", len(sizes))
		}
		return &aperture.Rectangular{DimX: sizes[0], DimY: sizes[1]}, nil
	case "gaussian":
		if len(sizes) != 1 {
			return nil, fmt.Errorf("coma: a gaussian aperture needs 1 size (sigma) but %d were given", len(sizes))
		}
		return &aperture.Gaussian{Sigma: sizes[0]}, nil
	default:
		return nil, fmt.Errorf("coma: unknown aperture kind %q; choose circular, annular, rectangular, or gaussian", kind)
	}
}

func sizesFromConfig(cfg *viper.Viper) ([]*unit.Unit, error) {
	raw := cfg.GetStringSlice("size")
	sizes := make([]*unit.Unit, len(raw))
	for i, s := range raw {
		v, err := cast.ToFloat64E(s)
		if err != nil {
			return nil, fmt.Errorf("coma: aperture size %q: %v", s, err)
		}
		sizes[i] = coma.Kilometers(v)
	}
	return sizes, nil
}
