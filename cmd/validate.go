package cmd

import (
	"github.com/spf13/cobra"
	"github.com/stevedore-dev/stevedore/internal/core/domain"
	"github.com/stevedore-dev/stevedore/internal/core/services"
	logger "github.com/stevedore-dev/stevedore/internal/core/services/log"
)

var ValidateCommand = &cobra.Command{
	Use:   "validate",
	Short: "Validate the pipeline file",
	RunE: func(cmd *cobra.Command, args []string) error {

		pipeline, err := domain.NewPipeline(cwd)
		if err != nil {
			return err
		}

		if err := services.ValidatePipeline(pipeline); err != nil {
			return err
		}

		logger.Log().Info("Pipeline " + pipeline.Name + " is valid")
		return nil
	},
}
