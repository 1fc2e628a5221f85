package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"taxguide/internal/advisor"
	"taxguide/internal/calculation"
	"taxguide/internal/config"
	"taxguide/internal/output"
	"taxguide/internal/tui"
)

// zapEngineLogger adapts a zap sugared logger to the engine's Logger interface.
type zapEngineLogger struct{ s *zap.SugaredLogger }

func (l zapEngineLogger) Debugf(format string, args ...any) { l.s.Debugf(format, args...) }
func (l zapEngineLogger) Infof(format string, args ...any)  { l.s.Infof(format, args...) }
func (l zapEngineLogger) Warnf(format string, args ...any)  { l.s.Warnf(format, args...) }
func (l zapEngineLogger) Errorf(format string, args ...any) { l.s.Errorf(format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "taxguide %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "taxguide",
	Short: "Indian income tax regime advisor",
	Long:  "Compares the New and Old Indian income tax regimes for a given financial profile, either from a YAML file or through an interactive Gemini-backed chat.",
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [profile-file]",
	Short: "Compare both regimes for a YAML profile",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		profileFile := args[0]

		parser := config.NewInputParser()
		profile, err := parser.LoadProfile(profileFile)
		if err != nil {
			log.Fatal(err)
		}

		rulesFile, _ := cmd.Flags().GetString("rules")
		rules, err := parser.LoadRegimeRules(rulesFile)
		if err != nil {
			log.Fatal(err)
		}

		engine := calculation.NewEngineWithRules(rules)
		debugMode, _ := cmd.Flags().GetBool("debug")
		if debugMode {
			zl, err := zap.NewDevelopment()
			if err != nil {
				log.Fatal(err)
			}
			defer func() { _ = zl.Sync() }()
			engine.SetLogger(zapEngineLogger{zl.Sugar()})
		}

		result := engine.Compare(profile.Input)

		outputFormat, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(outputFormat)
		if f == nil {
			log.Fatalf("unknown output format %q (want table, json, csv or markdown)", outputFormat)
		}
		data, err := f.Format(&result)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [profile-file]",
	Short: "Validate a profile file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		profileFile := args[0]

		parser := config.NewInputParser()
		if _, err := parser.LoadProfile(profileFile); err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Profile file %s is valid\n", profileFile)
	},
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the tax advisor",
	Long:  "Starts an interactive conversation that gathers your income details and runs the regime comparison for you. Requires GEMINI_API_KEY in the environment or a .env file.",
	Run: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()

		debugMode, _ := cmd.Flags().GetBool("debug")
		logger := zap.NewNop()
		if debugMode {
			// The TUI owns the terminal, so debug logs go to a file.
			zcfg := zap.NewDevelopmentConfig()
			zcfg.OutputPaths = []string{"taxguide.log"}
			zcfg.ErrorOutputPaths = []string{"taxguide.log"}
			zl, err := zcfg.Build()
			if err != nil {
				log.Fatal(err)
			}
			defer func() { _ = zl.Sync() }()
			logger = zl
		}

		rulesFile, _ := cmd.Flags().GetString("rules")
		rules, err := config.NewInputParser().LoadRegimeRules(rulesFile)
		if err != nil {
			log.Fatal(err)
		}
		engine := calculation.NewEngineWithRules(rules)

		ctx := context.Background()
		gcfg := advisor.DefaultGeminiConfig()
		if model, _ := cmd.Flags().GetString("model"); model != "" {
			gcfg.Model = model
		}
		client, err := advisor.NewGeminiClient(ctx, gcfg, logger)
		if err != nil {
			log.Fatal(err)
		}

		var knowledge []advisor.KnowledgeFile
		if dir, _ := cmd.Flags().GetString("knowledge"); dir != "" {
			fmt.Printf("Uploading knowledge documents from %s...\n", dir)
			knowledge, err = client.UploadKnowledgeDir(ctx, dir)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("%d document(s) ready\n", len(knowledge))
		}

		session := advisor.NewSession(client, engine, advisor.SessionConfig{
			Knowledge: knowledge,
		}, logger)

		if err := tui.Run(session); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	calculateCmd.Flags().StringP("format", "f", "table", "Output format (table, json, csv, markdown)")
	calculateCmd.Flags().String("rules", "", "Path to a regime rules YAML file (defaults to built-in FY 2025-26 rules)")
	calculateCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	chatCmd.Flags().String("model", "", "Gemini model name (default gemini-2.0-flash)")
	chatCmd.Flags().String("knowledge", "", "Directory of PDF/text documents to upload as reference material")
	chatCmd.Flags().String("rules", "", "Path to a regime rules YAML file")
	chatCmd.Flags().Bool("debug", false, "Write debug logs to taxguide.log")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
