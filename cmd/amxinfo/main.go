// Copyright 2025 go-amx Authors
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

// amxinfo reports AMX coprocessor capability and sanity-checks the
// matmul engine.
//
// Usage:
//
//	amxinfo
//	amxinfo check
//	amxinfo bench -n 1024
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-amx/amx"
	"github.com/ajroetker/go-amx/matmul"
	"github.com/ajroetker/go-amx/matrix"
)

func main() {
	root := &cobra.Command{
		Use:   "amxinfo",
		Short: "Inspect the AMX coprocessor and the go-amx engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			level := amx.Detect()
			cmd.Printf("capability:  %s\n", level)
			cmd.Printf("available:   %v\n", amx.IsAvailable())
			cmd.Printf("perf. cores: %d\n", amx.PerformanceCores())
			return nil
		},
	}

	check := &cobra.Command{
		Use:   "check",
		Short: "Run the 256x256 exact-result self-check",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := matrix.NewFill(256, 256, 1.0)
			if err != nil {
				return err
			}
			b, err := matrix.NewFill(256, 256, 2.0)
			if err != nil {
				return err
			}
			c, err := matmul.MatMul(a, b)
			if err != nil {
				return err
			}
			for i := 0; i < c.Rows(); i++ {
				for j := 0; j < c.Cols(); j++ {
					if got := c.At(i, j); got != 512.0 {
						return fmt.Errorf("self-check failed: c[%d,%d] = %v, want 512", i, j, got)
					}
				}
			}
			cmd.Println("ok: all 65536 elements are exactly 512.0")
			return nil
		},
	}

	var benchN int
	bench := &cobra.Command{
		Use:   "bench",
		Short: "Time an NxN multiply through the automatic strategy",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := matrix.NewFill(benchN, benchN, 1.0)
			if err != nil {
				return err
			}
			b, err := matrix.NewFill(benchN, benchN, 2.0)
			if err != nil {
				return err
			}

			start := time.Now()
			c, err := matmul.MatMul(a, b)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)
			c.Release()

			flops := 2 * float64(benchN) * float64(benchN) * float64(benchN)
			cmd.Printf("%dx%d multiply: %v (%.2f GFLOP/s, strategy %s)\n",
				benchN, benchN, elapsed, flops/elapsed.Seconds()/1e9, amx.Detect())
			return nil
		},
	}
	bench.Flags().IntVarP(&benchN, "size", "n", 1024, "matrix edge length")

	root.AddCommand(check, bench)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
