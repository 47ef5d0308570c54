// Command adcdump reads the Juno ADC rails and prints calibrated values.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"junoadc-go/bus"
	adc "junoadc-go/drivers/junoadc"
	"junoadc-go/regblock"
	"junoadc-go/services/junoadc"
	"junoadc-go/services/logger"
	"junoadc-go/services/sensor"
	"junoadc-go/setups"
)

type opts struct {
	source  string
	base    uint64
	i2cDev  string
	i2cAddr uint16
	raw     bool
	seeds   []string
	every   time.Duration
	count   int
	verbose bool
}

func main() {
	var o opts
	cmd := &cobra.Command{
		Use:           "adcdump",
		Short:         "Read calibrated current, voltage, power and energy from the Juno ADC",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), o, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.source, "source", "sim", "register source: sim | devmem | i2c")
	f.Uint64Var(&o.base, "base", adc.SysRegsBase, "physical base of the V2M system registers (devmem)")
	f.StringVar(&o.i2cDev, "i2c-dev", "/dev/i2c-0", "i2c-dev adapter of the board controller (i2c)")
	f.Uint16Var(&o.i2cAddr, "i2c-addr", 0x50, "7-bit address of the board controller (i2c)")
	f.BoolVar(&o.raw, "raw", false, "add the masked register field as a RAW column")
	f.StringArrayVar(&o.seeds, "set", nil, "seed a sim register, e.g. current.big=0x64 (repeatable)")
	f.DurationVar(&o.every, "every", 0, "poll interval; 0 prints one table and exits")
	f.IntVar(&o.count, "count", 0, "number of polls when --every is set; 0 runs until interrupted")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "echo driver log lines to stderr")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "adcdump:", err)
		os.Exit(1)
	}
}

func openSource(o opts) (regblock.Block, func() error, error) {
	switch o.source {
	case "sim":
		mem, err := simBlock(o.seeds)
		return mem, func() error { return nil }, err
	case "devmem":
		return openDevMem(o.base)
	case "i2c":
		return openI2C(o.i2cDev, o.i2cAddr)
	}
	return nil, nil, fmt.Errorf("unknown source %q", o.source)
}

func run(ctx context.Context, o opts, stdout, stderr io.Writer) error {
	regs, closeFn, err := openSource(o)
	if err != nil {
		return err
	}
	defer closeFn()

	b := bus.NewBus(64)
	level := logger.Warn
	if o.verbose {
		level = logger.Debug
	}
	lctx, cancel := context.WithCancel(ctx)
	defer cancel()
	(&logger.Service{W: stderr}).Start(lctx, b.NewConnection("logsvc"))

	sens, err := setups.StartJuno(regs, logger.NewBusLogger(b.NewConnection("adc"), level))
	if err != nil {
		return err
	}

	var dev *adc.Device
	if o.raw {
		dev = adc.New(regs)
	}
	if o.every <= 0 {
		return printTable(stdout, sens, dev)
	}
	tick := time.NewTicker(o.every)
	defer tick.Stop()
	for n := 0; o.count == 0 || n < o.count; n++ {
		if n > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-tick.C:
			}
		}
		if err := printTable(stdout, sens, dev); err != nil {
			return err
		}
	}
	return nil
}

// printTable writes one row per sensor. A non-nil dev adds the raw field.
func printTable(w io.Writer, sens *sensor.Module, dev *adc.Device) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if dev != nil {
		fmt.Fprintln(tw, "MEASUREMENT\tRAIL\tRAW\tVALUE\tUNIT")
	} else {
		fmt.Fprintln(tw, "MEASUREMENT\tRAIL\tVALUE\tUNIT")
	}
	for i, el := range sens.Elements() {
		id, ok := el.Target.(junoadc.CallID)
		if !ok {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t", id.Type, id.Channel)
		if dev != nil {
			raw, err := dev.Raw(id.Type, id.Channel)
			if err != nil {
				fmt.Fprintf(tw, "%s\t", err)
			} else {
				fmt.Fprintf(tw, "%#x\t", raw)
			}
		}
		v, err := sens.Read(i)
		if err != nil {
			fmt.Fprintf(tw, "%s\t%s\n", err, el.Unit)
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\n", v, el.Unit)
	}
	fmt.Fprintln(tw)
	return tw.Flush()
}
