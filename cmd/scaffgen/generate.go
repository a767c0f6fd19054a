package scaffgen

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/scaffgen/pkg/config"
	"github.com/arthur-debert/scaffgen/pkg/gen"
	"github.com/arthur-debert/scaffgen/pkg/logging"
	"github.com/arthur-debert/scaffgen/pkg/types"
)

func newGenerateCmd() *cobra.Command {
	var (
		baseDir   string
		varsFiles []string
		varFlags  []string
	)

	cmd := &cobra.Command{
		Use:     "generate <template-file>",
		Aliases: []string{"gen"},
		Short:   MsgGenerateShort,
		Long:    MsgGenerateLong,
		Example: MsgGenerateExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.generate")

			workDir, err := os.Getwd()
			if err != nil {
				return err
			}
			cfg, err := config.Load(workDir)
			if err != nil {
				return err
			}

			input, err := readTemplate(args[0])
			if err != nil {
				return err
			}

			vars, err := collectVars(cfg, varsFiles, varFlags)
			if err != nil {
				return err
			}

			if baseDir == "" {
				baseDir = cfg.BaseDir
			}
			logger.Debug().
				Str("template", args[0]).
				Str("baseDir", baseDir).
				Int("vars", len(vars)).
				Msg("starting generation")

			generator := gen.New(gen.WithBaseDir(baseDir))
			result, err := generator.Generate(input, vars)
			if err != nil {
				return err
			}
			if result.Message != "" {
				fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&baseDir, "dir", "d", "", "Base directory target paths are resolved against")
	cmd.Flags().StringSliceVar(&varsFiles, "vars", nil, "Variable file (YAML, TOML or JSON); repeatable")
	cmd.Flags().StringArrayVar(&varFlags, "var", nil, "Variable binding key=value; repeatable")

	return cmd
}

// readTemplate reads the document template from a file, or stdin for "-".
func readTemplate(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// collectVars layers variable bindings: config defaults, then vars files in
// order, then --var flags.
func collectVars(cfg *config.Config, varsFiles, varFlags []string) (types.Vars, error) {
	layers := []types.Vars{cfg.Vars}
	for _, path := range varsFiles {
		fileVars, err := config.LoadVarsFile(path)
		if err != nil {
			return nil, err
		}
		layers = append(layers, fileVars)
	}

	flagVars := types.Vars{}
	for _, binding := range varFlags {
		key, value, found := strings.Cut(binding, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --var binding %q, expected key=value", binding)
		}
		flagVars[key] = value
	}
	layers = append(layers, flagVars)

	return config.MergeVars(layers...), nil
}
