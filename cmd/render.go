package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/risk-atlas/internal/render"
)

var renderOutDir string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Run one render session and write widget payloads to a directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := newDashServer()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		doc, fc, err := srv.loadSession(ctx)
		if err != nil {
			return err
		}

		target, err := render.NewDirTarget(renderOutDir)
		if err != nil {
			return err
		}

		tasks := render.BuildTasks(doc, srv.theme, srv.clock, srv.mapPayload(doc, fc))
		results := srv.orch.Run(ctx, target, tasks)

		failed := 0
		for _, res := range results {
			if !res.OK {
				failed++
			}
		}
		zap.L().Info("render written",
			zap.String("dir", renderOutDir),
			zap.Int("widgets", len(results)),
			zap.Int("failed", failed),
		)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderOutDir, "out", "out", "output directory for widget payloads")
	rootCmd.AddCommand(renderCmd)
}
