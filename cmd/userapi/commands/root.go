package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"
	"userapi/lib/restyutil"
	"userapi/lib/serviceutil"
	"userapi/lib/telemetry"
	"userapi/lib/userapi"

	"github.com/spf13/cobra"
)

var (
	configPath string
	baseUrl    string
	outputDir  string
	attachBody bool
	verbose    bool
)

// set up by the root command's PersistentPreRunE before any command runs
var (
	client *userapi.Client
	tel    telemetry.Telemetry
)

var rootCmd = &cobra.Command{
	Use:   "userapi",
	Short: "userapi is a CLI for a REST users collection and its posts, comments and todos.",
	Long: `userapi is a CLI for a REST users collection and its posts, comments and todos.

Without a command it plays the demo sequence: create a user, delete user 3,
list users, look one up by id and by username, then write the comments of
user 3's latest post to a file and print user 3's open tasks.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runDemo,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file to read instead of the nearest userapi.json5.")
	flags.StringVar(&baseUrl, "base-url", "", "The users collection url.")
	flags.StringVar(&outputDir, "out", "", "Directory that written files go to.")
	flags.BoolVar(&attachBody, "attach-body", false, "Send the create/update payload with the request instead of only writing it to disk.")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging and request dumps.")
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.BaseUrl = baseUrl
	}
	if flags.Changed("out") {
		cfg.OutputDir = outputDir
	}
	if flags.Changed("attach-body") {
		cfg.AttachRequestBody = attachBody
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	err = validateConfig(cfg)
	if err != nil {
		return err
	}

	telemetry.InitSlog(cfg.Verbose)

	tel, err = telemetry.Setup(cmd.Context(), "userapi", cfg.Telemetry)
	if err != nil {
		slog.Warn("failed to set up telemetry, continuing without it", "err", err)
	}

	var dumps restyutil.InstrumentOutput
	if cfg.Verbose && cfg.DumpDir != "" {
		output, err := restyutil.NewFilesystemOutput(cfg.DumpDir)
		if err != nil {
			slog.Warn("failed to prepare request dump directory", "dir", cfg.DumpDir, "err", err)
		} else {
			slog.Debug("writing request dumps", "dir", output.Dir())
			dumps = output
		}
	}

	client, err = userapi.NewClient(userapi.Options{
		BaseUrl:           cfg.BaseUrl,
		OutputDir:         cfg.OutputDir,
		AttachRequestBody: cfg.AttachRequestBody,
		Stdout:            cmd.OutOrStdout(),
		InstrumentOutput:  dumps,
	})
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	slog.Debug("client ready", "base_url", client.BaseUrl(), "output_dir", client.OutputDir())
	return nil
}

func parseUserId(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid user id %q", arg)
	}
	return id, nil
}

// printBody prints a response body, or "null" when the request failed.
func printBody(cmd *cobra.Command, prefix, body string, ok bool) {
	if !ok {
		body = "null"
	}
	fmt.Fprintln(cmd.OutOrStdout(), prefix+body)
}

func shutdownTelemetry() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	err := tel.Shutdown(ctx)
	if err != nil {
		slog.Warn("failed to flush telemetry", "err", err)
	}
}

func ExecuteContext(ctx context.Context) {
	err := rootCmd.ExecuteContext(ctx)
	shutdownTelemetry()
	if err != nil {
		serviceutil.Fatal("command failed", err)
	}
}
