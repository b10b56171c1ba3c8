package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chemtab-labs/sdfix-cli/internal/core/ports/driving"
)

var (
	failedBlockFile string
	outputDir       string
)

var convertCmd = &cobra.Command{
	Use:   "convert <input-file>",
	Short: "Convert an SDF-like file to a standard SDF file",
	Long: `Repairs every molecule block of the given SDF-like file and writes
the structurally complete, fully tagged blocks to
<output-dir>/converted_<input-file>. Blocks that parse but lack
required tags can be collected in a separate file via
--failed-block-file.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&failedBlockFile, "failed-block-file", "",
		"file name for blocks missing required tags (skipped when unset)")
	convertCmd.Flags().StringVar(&outputDir, "output-dir", "",
		"destination directory (defaults to the input file's directory)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	if converter == nil {
		return errors.New("converter service not configured")
	}

	req := driving.ConvertRequest{
		InputPath:           args[0],
		FailedBlockFileName: failedBlockFile,
		OutputDir:           outputDir,
	}
	if configStore != nil {
		if req.FailedBlockFileName == "" {
			req.FailedBlockFileName = configStore.GetString("convert.failed_block_file")
		}
		if req.OutputDir == "" {
			req.OutputDir = configStore.GetString("convert.output_dir")
		}
	}

	result, err := converter.Convert(context.Background(), req)
	if err != nil {
		return fmt.Errorf("convert failed: %w", err)
	}

	name := filepath.Base(req.InputPath)
	cmd.Printf("Processing on %s finished.\n", name)
	cmd.Printf("Except for %d failed and %d rejected molecule blocks, "+
		"%d molecules have been converted to a read-friendly SDF.\n",
		result.NumFailed, result.NumRejected, result.NumValid)
	if result.OutputPath != "" {
		cmd.Printf("Converted SDF saved to %s.\n", result.OutputPath)
	} else {
		cmd.Println("No valid molecule blocks; no converted file written.")
	}
	cmd.Printf("The maximum number of atoms among converted molecules is %d.\n",
		result.MaxAtoms)

	return nil
}
