package main

import (
	"fmt"
	"os"
	"time"

	"github.com/apex/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/haydenrob/refnx/analysis"
	"github.com/haydenrob/refnx/dataset"
)

var fitFlags struct {
	maxiter int
	seed    int64
	sample  int
	burn    int
	thin    int
	workers int
}

var fitCmd = &cobra.Command{
	Use:   "fit MODEL.yaml DATA",
	Short: "Refine a model against measured data",
	Long: `Refine the varying parameters of MODEL.yaml against DATA
(column text or ORSO .ort) with differential evolution. With --sample N,
follow the fit with N steps of ensemble MCMC and report median values
with 68% credible intervals.`,
	Args: cobra.ExactArgs(2),
	RunE: runFit,
}

func init() {
	fitCmd.Flags().IntVar(&fitFlags.maxiter, "maxiter", 1000, "DE generation budget")
	fitCmd.Flags().Int64Var(&fitFlags.seed, "seed", 0, "RNG seed (0 = fixed default)")
	fitCmd.Flags().IntVar(&fitFlags.sample, "sample", 0, "MCMC steps after the fit (0 = skip)")
	fitCmd.Flags().IntVar(&fitFlags.burn, "burn", 0, "MCMC steps to discard (default sample/2)")
	fitCmd.Flags().IntVar(&fitFlags.thin, "thin", 1, "keep every thin-th MCMC step")
	fitCmd.Flags().IntVar(&fitFlags.workers, "workers", 0, "parallel posterior evaluations (0 = all CPUs)")
	rootCmd.AddCommand(fitCmd)
}

func runFit(cmd *cobra.Command, args []string) error {
	model, err := loadModel(args[0])
	if err != nil {
		return err
	}
	data, err := dataset.Load(args[1])
	if err != nil {
		return err
	}
	data.SortQ()

	obj, err := analysis.NewObjective(model, data)
	if err != nil {
		return err
	}
	varying := obj.Varying()
	if len(varying) == 0 {
		return analysis.ErrNoVarying
	}
	log.WithFields(log.Fields{
		"dataset": data.Name,
		"points":  data.Len(),
		"varying": len(varying),
	}).Info("starting fit")

	ctx := cmd.Context()

	deOpts := analysis.DefaultDEOptions()
	deOpts.MaxIter = fitFlags.maxiter
	deOpts.Seed = fitFlags.seed
	bar := newBar(fitFlags.maxiter, "differential evolution")
	deOpts.Progress = func(gen, maxIter int, best float64) {
		_ = bar.Set(gen)
	}

	fitter := analysis.NewCurveFitter(obj)
	start := time.Now()
	res, err := fitter.Fit(ctx, deOpts)
	_ = bar.Finish()
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"chisqr":      fmt.Sprintf("%.4g", res.Chisqr),
		"generations": res.Generations,
		"converged":   res.Converged,
		"elapsed":     time.Since(start).Round(time.Millisecond).String(),
	}).Info("fit complete")

	if fitFlags.sample > 0 {
		smOpts := analysis.DefaultSamplerOptions(fitFlags.sample)
		smOpts.Seed = fitFlags.seed
		smOpts.Workers = fitFlags.workers
		sbar := newBar(fitFlags.sample, "MCMC sampling")
		smOpts.Progress = func(step, steps int) {
			_ = sbar.Set(step)
		}

		chain, err := fitter.Sample(ctx, smOpts)
		_ = sbar.Finish()
		if err != nil {
			return err
		}

		burn := fitFlags.burn
		if burn == 0 {
			burn = fitFlags.sample / 2
		}
		stats, err := analysis.ProcessChain(chain, burn, fitFlags.thin, varying)
		if err != nil {
			return err
		}
		log.WithField("acceptance",
			fmt.Sprintf("%.2f", chain.AcceptanceFraction())).Info("sampling complete")
		for _, s := range stats {
			fmt.Fprintf(os.Stdout, "%-40s %12.6g ± %.6g  [%.6g, %.6g]\n",
				s.Name, s.Median, s.Stderr, s.Lo, s.Hi)
		}
		return nil
	}

	for _, p := range varying {
		fmt.Fprintf(os.Stdout, "%-40s %12.6g\n", p.Name(), p.Value())
	}
	return nil
}

func newBar(total int, desc string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(desc),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(os.Stderr) }),
	)
}
