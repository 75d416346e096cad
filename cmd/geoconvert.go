package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/risk-atlas/internal/shapeconv"
)

var (
	geoconvertOut       string
	geoconvertNameField string
	geoconvertNameKey   string
)

var geoconvertCmd = &cobra.Command{
	Use:   "geoconvert <shapefile>",
	Short: "Convert an administrative-boundary shapefile to GeoJSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		shpPath := args[0]
		if geoconvertOut == "" {
			return eris.New("geoconvert: --out is required")
		}

		n, err := shapeconv.Convert(shpPath, geoconvertOut, geoconvertNameField, geoconvertNameKey)
		if err != nil {
			return err
		}

		zap.L().Info("geometry converted",
			zap.String("shapefile", shpPath),
			zap.String("out", geoconvertOut),
			zap.Int("features", n),
		)
		return nil
	},
}

func init() {
	geoconvertCmd.Flags().StringVar(&geoconvertOut, "out", "", "output GeoJSON path")
	geoconvertCmd.Flags().StringVar(&geoconvertNameField, "name-field", "NAME_1", "shapefile attribute holding the region name")
	geoconvertCmd.Flags().StringVar(&geoconvertNameKey, "name-key", "NAME_1", "GeoJSON property key to write the region name under")
	rootCmd.AddCommand(geoconvertCmd)
}
