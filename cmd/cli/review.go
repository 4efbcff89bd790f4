package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var (
	flagFilename string
	flagLanguage string
	plainOutput  bool
)

var reviewCmd = &cobra.Command{
	Use:   "review [file]",
	Short: "Submit a source file for an AI code review",
	Long: `Submit a source file to the snippet-review server and print the
generated review.

The language is guessed from the file extension unless --language is given.

Examples:
  review-cli review main.go
  review-cli review --language python --filename job.py script.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	reviewCmd.Flags().StringVarP(&flagFilename, "filename", "f", "", "Filename to attach to the review (defaults to the file's base name)")
	reviewCmd.Flags().StringVarP(&flagLanguage, "language", "l", "", "Language tag for the snippet (defaults to a guess from the extension)")
	reviewCmd.Flags().BoolVar(&plainOutput, "plain", false, "Print the raw markdown without terminal rendering")
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	filename := flagFilename
	if filename == "" {
		filename = filepath.Base(args[0])
	}
	language := flagLanguage
	if language == "" {
		language = languageFromExt(filename)
	}

	titleColor.Printf("Reviewing %s", filename)
	if language != "" {
		dimColor.Printf(" (%s)", language)
	}
	fmt.Println()

	client := newAPIClient()
	result, err := client.submitReview(cmd.Context(), string(data), filename, language)
	if err != nil {
		errorColor.Printf("Review failed: %v\n", err)
		return err
	}

	if plainOutput {
		fmt.Println(result.ReviewText)
	} else {
		rendered, err := glamour.Render(result.ReviewText, "dark")
		if err != nil {
			fmt.Println(result.ReviewText)
		} else {
			fmt.Print(rendered)
		}
	}

	dimColor.Printf("review id: %s\n", result.ID)
	return nil
}

// languageFromExt guesses the language tag from a file extension. Unknown
// extensions yield an empty string so the server applies its default.
func languageFromExt(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".go":
		return "go"
	case ".py":
		return "python"
	case ".js", ".mjs":
		return "javascript"
	case ".ts":
		return "typescript"
	case ".rs":
		return "rust"
	case ".java":
		return "java"
	case ".rb":
		return "ruby"
	case ".c", ".h":
		return "c"
	case ".cc", ".cpp", ".hpp":
		return "cpp"
	case ".cs":
		return "csharp"
	case ".sh":
		return "bash"
	case ".sql":
		return "sql"
	default:
		return ""
	}
}
