package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/isaac-munyaka/portfolio"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List the projects the server would render",
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := portfolio.LoadContent(contentFile)
		if err != nil {
			return err
		}
		if err := content.Validate(); err != nil {
			return err
		}
		catalog := portfolio.NewCatalog(content.Projects)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "#\tTITLE\tTECH\tIMAGE\tLINK")
		for i, p := range catalog.Projects() {
			image := "-"
			if p.HasImage() {
				image = p.Image
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i+1, p.Title, p.TechLine(), image, p.Link)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(projectsCmd)
}
