package cmd

import (
	"github.com/spf13/cobra"
	"github.com/stevedore-dev/stevedore/internal/core/domain"
	"github.com/stevedore-dev/stevedore/internal/core/services/registry"
)

var TagsCommand = &cobra.Command{
	Use:   "tags [repo]",
	Short: "List remote tags for a repository",
	Long: `This command lists the tags a repository currently carries. Without
an argument the repository of the pipeline's first target is used. The
highest semver among the tags is marked as latest.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {

		var repo string
		if len(args) == 1 {
			repo = args[0]
		} else {
			pipeline, err := domain.NewPipeline(cwd)
			if err != nil {
				return err
			}
			repo = pipeline.ImageFor(pipeline.Targets[0])
		}

		client := newOciClient()
		tags, err := client.Tags(repo)
		if err != nil {
			return err
		}

		latest := registry.LatestSemver(tags)
		for _, tag := range tags {
			if latest != nil && tag == latest.Original() {
				cmd.Printf("%s (latest semver)\n", tag)
			} else {
				cmd.Println(tag)
			}
		}

		return nil
	},
}
