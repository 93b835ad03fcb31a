package commands

import "github.com/spf13/cobra"

const (
	demoUserData = `{"name":"John Doe","username":"johndoe","email":"johndoe@example.com"}`
	demoUserId   = 3
	demoUsername = "Bret"
)

func init() {
	rootCmd.AddCommand(demoCmd)
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Plays the demo sequence, same as running without a command.",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	_, _, err := client.CreateUser(ctx, demoUserData)
	if err != nil {
		return err
	}

	err = client.DeleteUser(ctx, demoUserId)
	if err != nil {
		return err
	}

	body, ok, err := client.ListUsers(ctx)
	if err != nil {
		return err
	}
	printBody(cmd, "All users: ", body, ok)

	body, ok, err = client.GetUserByID(ctx, demoUserId)
	if err != nil {
		return err
	}
	printBody(cmd, "User by id: ", body, ok)

	body, ok, err = client.GetUserByUsername(ctx, demoUsername)
	if err != nil {
		return err
	}
	printBody(cmd, "User by username: ", body, ok)

	_, err = client.CommentsForLastPost(ctx, demoUserId)
	if err != nil {
		return err
	}
	return client.OpenTasks(ctx, demoUserId)
}

