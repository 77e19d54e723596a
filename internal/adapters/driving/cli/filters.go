package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "List registered content filters",
	Long: `List the content filters in selection order, with the file extensions and
sniffed MIME types each one handles.`,
	Args: cobra.NoArgs,
	RunE: runFilters,
}

func init() {
	rootCmd.AddCommand(filtersCmd)
}

func runFilters(cmd *cobra.Command, _ []string) error {
	if catalogue == nil {
		return errors.New("filter catalogue not configured")
	}

	infos := catalogue.Filters()
	if len(infos) == 0 {
		cmd.Println("No filters registered.")
		return nil
	}

	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, []string{
			info.Name,
			joinOrDash(info.Extensions),
			joinOrDash(info.MIMETypes),
		})
	}

	cmd.Println(titleStyle.Render("Content Filters"))
	cmd.Println(renderTable([]string{"Name", "Extensions", "MIME Types"}, rows))
	return nil
}

func joinOrDash(list []string) string {
	if len(list) == 0 {
		return "-"
	}
	return strings.Join(list, " ")
}
