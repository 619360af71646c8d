package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	logger "github.com/stevedore-dev/stevedore/internal/core/services/log"
	"go.uber.org/zap"
)

var resolveOutput string
var resolveCheck bool

var ResolveCommand = &cobra.Command{
	Use:   "resolve [target]",
	Short: "Resolve the current git ref and print the derived tags",
	Long: `This command resolves the current git ref (CI environment first,
local .git second) and prints the image tags a build would produce.
With --check the command exits with code 1 when a derived tag already
exists in the registry, which lets workflows skip redundant builds.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {

		pipelineService, _, err := newPipelineService(cwd, nil, nil)
		if err != nil {
			return err
		}

		var targets []string
		if len(args) == 1 {
			targets = args
		}

		plan, err := pipelineService.Plan(targets)
		if err != nil {
			return err
		}

		if resolveOutput == "json" {
			out, err := json.MarshalIndent(plan, "", "  ")
			if err != nil {
				return err
			}
			cmd.Println(string(out))
		} else {
			cmd.Printf("ref: %s (%s) @ %s\n", plan.Ref.Name, plan.Ref.Type, plan.Ref.ShortSHA())
			for _, entry := range plan.Targets {
				for _, tag := range entry.Tags {
					cmd.Printf("%s:%s\n", entry.Image, tag)
				}
			}
		}

		if resolveCheck {
			client := newOciClient()
			for _, entry := range plan.Targets {
				for _, tag := range entry.Tags {
					exists, err := client.TagExists(entry.Image, tag)
					if err != nil {
						return fmt.Errorf("failed to check tag %s:%s: %w", entry.Image, tag, err)
					}
					if exists {
						logger.Log().Warn("Tag already exists", zap.String("image", entry.Image), zap.String("tag", tag))
						os.Exit(1)
					}
				}
			}
		}

		return nil
	},
}

func init() {
	ResolveCommand.Flags().StringVarP(&resolveOutput, "output", "o", "text", "Output format (text, json)")
	ResolveCommand.Flags().BoolVar(&resolveCheck, "check", false, "Exit with code 1 when a derived tag already exists in the registry")
}
