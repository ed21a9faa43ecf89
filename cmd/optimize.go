package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gaurabsaha12345/master-prompter/internal/audit"
	"github.com/gaurabsaha12345/master-prompter/internal/config"
	"github.com/gaurabsaha12345/master-prompter/internal/logger"
	"github.com/gaurabsaha12345/master-prompter/internal/prompt"
	"github.com/spf13/cobra"
)

var (
	optimizeCategory     string
	optimizeRole         string
	optimizeIdea         string
	optimizeSources      []string
	optimizeImage        string
	optimizeTones        []string
	optimizeOutputLength string
	optimizeOutputFormat string
	optimizeExtras       []string
	optimizeTemperature  float64
	optimizeResolution   string
	optimizeModel        string
	optimizeProvider     string
	optimizeOutPath      string
	optimizeFromPath     string
	optimizeRecord       bool
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Assemble a structured prompt from flags or a JSON request file",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		if flags.Changed("resolution") && !prompt.ValidResolution(optimizeResolution) {
			return fmt.Errorf("--resolution must be one of: %s", strings.Join(prompt.Resolutions(), ", "))
		}
		if flags.Changed("provider") && !prompt.ValidProvider(optimizeProvider) {
			return fmt.Errorf("--provider must be one of: %s", strings.Join(prompt.Providers(), ", "))
		}

		fields, err := collectFields(cmd)
		if err != nil {
			return err
		}

		if strings.TrimSpace(fields.Category) == "" || strings.TrimSpace(fields.Idea) == "" {
			fmt.Fprintln(os.Stderr, "Error: --category and --idea are required (or provide them via --from).")
			os.Exit(2)
		}
		if !prompt.ValidCategory(fields.Category) {
			fmt.Fprintln(os.Stderr, "Error: --category must be one of Content Writing | Design | Code | Image Generation.")
			os.Exit(2)
		}

		out, err := prompt.Assemble(fields)
		if err != nil {
			var verr *prompt.ValidationError
			if errors.As(err, &verr) {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(2)
			}
			return err
		}

		if optimizeOutPath == "" {
			fmt.Print(out)
		} else {
			if err := os.WriteFile(optimizeOutPath, []byte(out), 0644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}

		if optimizeRecord {
			if err := recordOptimize(fields, out); err != nil {
				logger.Warn("record optimize failed: %v", err)
			}
		}

		return nil
	},
}

// collectFields merges the optional --from request file with explicit flags.
// A flag the user passed wins over the file value for that key; repeatable
// flags replace the file's list entirely.
func collectFields(cmd *cobra.Command) (prompt.Fields, error) {
	var fields prompt.Fields

	if optimizeFromPath != "" {
		data, err := os.ReadFile(optimizeFromPath)
		if err != nil {
			return fields, fmt.Errorf("read request: %w", err)
		}
		if err := json.Unmarshal(data, &fields); err != nil {
			return fields, fmt.Errorf("parse request: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("category") {
		fields.Category = optimizeCategory
	}
	if flags.Changed("role") {
		fields.Role = optimizeRole
	}
	if flags.Changed("idea") {
		fields.Idea = optimizeIdea
	}
	if flags.Changed("source") {
		fields.Sources = optimizeSources
	}
	if flags.Changed("image") {
		fields.Image = optimizeImage
	}
	if flags.Changed("tone") {
		fields.Tones = optimizeTones
	}
	if flags.Changed("output-length") {
		fields.OutputLength = optimizeOutputLength
	}
	if flags.Changed("output-format") {
		fields.OutputFormat = optimizeOutputFormat
	}
	if flags.Changed("extra") {
		fields.Extras = optimizeExtras
	}
	if flags.Changed("temperature") {
		t := optimizeTemperature
		fields.Temperature = &t
	}
	if flags.Changed("resolution") {
		fields.MediaResolution = optimizeResolution
	}
	if flags.Changed("model") {
		fields.Model = optimizeModel
	}
	if flags.Changed("provider") {
		fields.Provider = optimizeProvider
	}

	fields.Sources = prompt.NormalizeList(fields.Sources)
	fields.Tones = prompt.NormalizeList(fields.Tones)
	fields.Extras = prompt.NormalizeList(fields.Extras)

	return fields, nil
}

func recordOptimize(fields prompt.Fields, out string) error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	auditCfg := cfg.Audit
	auditCfg.Enabled = true
	return audit.New(auditCfg).Record("cli", fields, out)
}

func init() {
	optimizeCmd.Flags().StringVar(&optimizeCategory, "category", "", "Content Writing | Design | Code | Image Generation")
	optimizeCmd.Flags().StringVar(&optimizeRole, "role", "", "Optional role, e.g., 'Act as a senior copywriter'")
	optimizeCmd.Flags().StringVar(&optimizeIdea, "idea", "", "Initial idea in plain words")
	optimizeCmd.Flags().StringArrayVar(&optimizeSources, "source", nil, "Reference URL or note (repeatable)")
	optimizeCmd.Flags().StringVar(&optimizeImage, "image", "", "Screenshot/image description")
	optimizeCmd.Flags().StringArrayVar(&optimizeTones, "tone", nil, "Tone/style (repeatable)")
	optimizeCmd.Flags().StringVar(&optimizeOutputLength, "output-length", "", "Desired output length, e.g., 800 words")
	optimizeCmd.Flags().StringVar(&optimizeOutputFormat, "output-format", "", "Desired output format, e.g., markdown table")
	optimizeCmd.Flags().StringArrayVar(&optimizeExtras, "extra", nil, "Extra elements (repeatable)")
	optimizeCmd.Flags().Float64Var(&optimizeTemperature, "temperature", 0, "Creativity/control scale (e.g., 0.0-1.0)")
	optimizeCmd.Flags().StringVar(&optimizeResolution, "resolution", "", "Media resolution preference: low, medium, high")
	optimizeCmd.Flags().StringVar(&optimizeModel, "model", "", "Target model identifier (for guidance)")
	optimizeCmd.Flags().StringVar(&optimizeProvider, "provider", "", "Target provider: ChatGPT, Grok, Perplexity, Gemini, MiniMax")
	optimizeCmd.Flags().StringVar(&optimizeOutPath, "out", "", "Write prompt to file (default: stdout)")
	optimizeCmd.Flags().StringVar(&optimizeFromPath, "from", "", "Load JSON with inputs; explicit flags take precedence")
	optimizeCmd.Flags().BoolVar(&optimizeRecord, "record", false, "Record the request and output to the audit log")
	rootCmd.AddCommand(optimizeCmd)
}
