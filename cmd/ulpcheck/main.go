// Copyright 2025 external-arm-optimized-routines Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command ulpcheck measures the ULP error of the vectorized math routines
// against the Go standard library reference and checks it against each
// function's accuracy contract.
//
// Usage:
//
//	ulpcheck list
//	ulpcheck run                       # verify every contract
//	ulpcheck run cosf atan --scale 10  # deeper sweep of two functions
//	ulpcheck run --config ulp.toml     # per-function tolerance overrides
//
// The sampling seed defaults to the ULPCHECK_SEED environment variable when
// it is set, so CI runs can pin or rotate it without changing invocations.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/courbet-space/external-arm-optimized-routines/vmath"
	vmathmath "github.com/courbet-space/external-arm-optimized-routines/vmath/math"
)

var (
	cfgFile string
	seed    int64
	scale   float64
)

var rootCmd = &cobra.Command{
	Use:          "ulpcheck",
	Short:        "Verify the accuracy contracts of the vectorized math routines",
	SilenceUsage: true,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered accuracy contracts",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, c := range vmathmath.Contracts() {
			fenv := ""
			if c.WantFPExceptions {
				fenv = " fenv"
			}
			fmt.Printf("%-8s %-6s domain [%g, %g]  bound %.2f ulp%s\n",
				c.Name, c.Precision, c.DomainLo, c.DomainHi, c.ULPBound, fenv)
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run [function...]",
	Short: "Verify contracts and report the worst observed error",
	RunE:  runVerify,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "TOML config file")
	runCmd.Flags().Int64Var(&seed, "seed", defaultSeed(), "random seed for interval sampling")
	runCmd.Flags().Float64Var(&scale, "scale", 1.0, "multiplier on per-interval sample counts")
	rootCmd.AddCommand(listCmd, runCmd)
}

func defaultSeed() int64 {
	if s := os.Getenv("ULPCHECK_SEED"); s != "" {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			return v
		}
	}
	return 42
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgFile)
	if err != nil {
		return err
	}
	if cfg.Scale != 0 && !cmd.Flags().Changed("scale") {
		scale = cfg.Scale
	}
	if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
		seed = cfg.Seed
	}

	selected := vmathmath.Contracts()
	if len(args) > 0 {
		selected = nil
		for _, name := range args {
			c, ok := vmathmath.LookupContract(name)
			if !ok {
				return fmt.Errorf("unknown function %q", name)
			}
			selected = append(selected, c)
		}
	}

	fmt.Printf("vector width %d bytes (%s), seed %d, scale %g\n",
		vmath.VectorBytes(), vmath.VectorLevel(), seed, scale)

	failed := 0
	for _, c := range selected {
		bound := c.ULPBound
		if t, ok := cfg.Tolerance[c.Name]; ok {
			bound = t
		}
		v := vmathmath.VerifyContract(c, seed, scale)
		status := "ok"
		if v.MaxULP > bound {
			status = "FAIL"
			failed++
		}
		fmt.Printf("%-8s %-6s max %.3f ulp (bound %.2f) worst at %x, %d samples  [%s]\n",
			c.Name, c.Precision, v.MaxULP, bound, v.WorstAt, v.Samples, status)
	}
	if failed > 0 {
		return fmt.Errorf("%d contract(s) exceeded their bound", failed)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
