package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"realtime-translator/internal/config"
	"realtime-translator/internal/text"
)

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported language codes",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, l := range text.SourceLanguages() {
				note := ""
				if l.Code == config.AutoLanguage {
					note = " (source only)"
				}
				fmt.Fprintf(out, "%-5s %s%s\n", l.Code, l.Name, note)
			}
		},
	}
}
