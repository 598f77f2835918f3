package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/spf13/cobra"
)

var calcFlags struct {
	qmin, qmax float64
	points     int
	out        string
}

var calcCmd = &cobra.Command{
	Use:   "calc MODEL.yaml",
	Short: "Evaluate the model reflectivity on a q grid",
	Args:  cobra.ExactArgs(1),
	RunE:  runCalc,
}

func init() {
	calcCmd.Flags().Float64Var(&calcFlags.qmin, "qmin", 0.005, "lowest q (1/Å)")
	calcCmd.Flags().Float64Var(&calcFlags.qmax, "qmax", 0.3, "highest q (1/Å)")
	calcCmd.Flags().IntVar(&calcFlags.points, "points", 200, "number of q points")
	calcCmd.Flags().StringVarP(&calcFlags.out, "output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	if calcFlags.points < 2 || calcFlags.qmin <= 0 || calcFlags.qmax <= calcFlags.qmin {
		return fmt.Errorf("invalid q grid: [%g, %g] with %d points",
			calcFlags.qmin, calcFlags.qmax, calcFlags.points)
	}

	model, err := loadModel(args[0])
	if err != nil {
		return err
	}

	q := make([]float64, calcFlags.points)
	step := (calcFlags.qmax - calcFlags.qmin) / float64(calcFlags.points-1)
	for i := range q {
		q[i] = calcFlags.qmin + float64(i)*step
	}

	r, err := model.Model(q)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if calcFlags.out != "" {
		f, err := os.Create(calcFlags.out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# q (1/Å)  R")
	for i := range q {
		fmt.Fprintf(bw, "%.8g %.8g\n", q[i], r[i])
	}
	if err := bw.Flush(); err != nil {
		return err
	}

	log.WithField("points", len(q)).Debug("curve written")
	return nil
}
