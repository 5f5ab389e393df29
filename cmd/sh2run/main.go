// Command sh2run loads a flat SH-2 ROM image and runs it against a
// RAM+ROM+optional-serial bus, driven by a cobra CLI in the manner of
// the rest of this module's reference tooling.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-sh2/sh2"
	"github.com/go-sh2/sh2/bus"
)

func main() {
	var (
		ramSize    int
		romAddr    uint32
		ramAddr    uint32
		maxCycles  uint64
		verbose    bool
		serialAddr string
	)

	rootCmd := &cobra.Command{
		Use:   "sh2run [rom]",
		Short: "Run a flat SH-2 ROM image against a simple memory bus",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			image, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("sh2run: reading rom: %w", err)
			}

			router := bus.NewRouter()
			router.Map(romAddr, uint32(len(image)), bus.NewROM(image))
			router.Map(ramAddr, uint32(ramSize), bus.NewRAM(ramSize))

			var serial *bus.SerialPort
			if serialAddr != "" {
				serial, err = bus.ListenSerial(serialAddr)
				if err != nil {
					return fmt.Errorf("sh2run: opening serial console: %w", err)
				}
				defer serial.Close()
				router.Map(0xF0000000, 12, serial)
			}

			cpu, err := sh2.New(router)
			if err != nil {
				return fmt.Errorf("sh2run: %w", err)
			}
			cpu.PowerOn()

			var cycles uint64
			for maxCycles == 0 || cycles < maxCycles {
				if cpu.State() == sh2.StatePowerOff {
					break
				}
				cpu.Cycle()
				if serial != nil {
					if _, err := serial.Poll(); err != nil {
						return fmt.Errorf("sh2run: %w", err)
					}
				}
				cycles++
				if verbose {
					r := cpu.Registers()
					fmt.Fprintf(cmd.OutOrStdout(), "cycle %d: pc=%#08x state=%s\n", cycles, r.PC, cpu.State())
				}
			}
			return nil
		},
	}

	rootCmd.Flags().IntVar(&ramSize, "ram-size", 64*1024, "RAM region size in bytes")
	rootCmd.Flags().Uint32Var(&romAddr, "rom-addr", 0, "base address the ROM image is mapped at")
	rootCmd.Flags().Uint32Var(&ramAddr, "ram-addr", 0x00010000, "base address RAM is mapped at")
	rootCmd.Flags().Uint64Var(&maxCycles, "max-cycles", 0, "stop after this many cycles (0 = unlimited)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace PC and state every cycle")
	rootCmd.Flags().StringVarP(&serialAddr, "serial", "s", "", "listen address for a TCP serial console (disabled if empty)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
