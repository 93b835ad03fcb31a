package commands

import "github.com/spf13/cobra"

func init() {
	rootCmd.AddCommand(commentsCmd)
	rootCmd.AddCommand(tasksCmd)
}

var commentsCmd = &cobra.Command{
	Use:   "comments <user id>",
	Short: "Writes the comments of the user's latest post to user-<id>-post-<post>-comments.json.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseUserId(args[0])
		if err != nil {
			return err
		}
		_, err = client.CommentsForLastPost(cmd.Context(), id)
		return err
	},
}

var tasksCmd = &cobra.Command{
	Use:   "tasks <user id>",
	Short: "Prints the user's todos that are not completed.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseUserId(args[0])
		if err != nil {
			return err
		}
		return client.OpenTasks(cmd.Context(), id)
	},
}
