package commands

import (
	"fmt"
	"strings"
	"userapi/lib/userapi"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

const maxSuggestions = 3

var listAsTable bool

func init() {
	listCmd.Flags().BoolVar(&listAsTable, "table", false, "Render id, name, username and email as a table.")

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(findCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <json>",
	Short: "Writes the user to user.json and POSTs to the collection.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, ok, err := client.CreateUser(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printBody(cmd, "", body, ok)
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id> <json>",
	Short: "Writes the user to updated_user.json and PUTs to the user.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseUserId(args[0])
		if err != nil {
			return err
		}
		body, ok, err := client.UpdateUser(cmd.Context(), id, args[1])
		if err != nil {
			return err
		}
		printBody(cmd, "", body, ok)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Deletes a user.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseUserId(args[0])
		if err != nil {
			return err
		}
		return client.DeleteUser(cmd.Context(), id)
	},
}

var listCmd = &cobra.Command{
	Use:   "list [--table]",
	Short: "Lists all users.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		body, ok, err := client.ListUsers(cmd.Context())
		if err != nil {
			return err
		}
		if !listAsTable || !ok {
			printBody(cmd, "", body, ok)
			return nil
		}

		users, err := userapi.ParseUsers([]byte(body))
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetStyle(table.StyleRounded)
		t.SetOutputMirror(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"ID", "Name", "Username", "Email"})
		for _, u := range users {
			t.AppendRow(table.Row{u.ID, u.Name, u.Username, u.Email})
		}
		t.Render()
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Gets a user by id.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseUserId(args[0])
		if err != nil {
			return err
		}
		body, ok, err := client.GetUserByID(cmd.Context(), id)
		if err != nil {
			return err
		}
		printBody(cmd, "", body, ok)
		return nil
	},
}

var findCmd = &cobra.Command{
	Use:   "find <username>",
	Short: "Gets users by exact username, suggesting close usernames when none match.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := args[0]
		body, ok, err := client.GetUserByUsername(cmd.Context(), username)
		if err != nil {
			return err
		}
		printBody(cmd, "", body, ok)
		if !ok || strings.TrimSpace(body) != "[]" {
			return nil
		}

		all, ok, err := client.ListUsers(cmd.Context())
		if err != nil || !ok {
			return err
		}
		users, err := userapi.ParseUsers([]byte(all))
		if err != nil {
			return err
		}
		suggestions := userapi.SuggestUsernames(users, username, maxSuggestions)
		if len(suggestions) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "Did you mean: %s?\n", strings.Join(suggestions, ", "))
		}
		return nil
	},
}
