package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"realtime-translator/internal/storage"
	"realtime-translator/services"
)

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent translations, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, opts, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw JSON snapshot")

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete all translation history",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryClear(cmd, opts)
		},
	})
	return cmd
}

func openHistory(cmd *cobra.Command, opts *rootOptions) (*services.HistoryStore, storage.Store, error) {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, nil, err
	}
	store, err := storage.Open(cfg.Storage.Backend, cfg.Storage.Path, nil)
	if err != nil {
		return nil, nil, err
	}
	history := services.NewHistoryStore(store)
	history.Load()
	return history, store, nil
}

func runHistory(cmd *cobra.Command, opts *rootOptions, asJSON bool) error {
	history, store, err := openHistory(cmd, opts)
	if err != nil {
		return err
	}
	defer store.Close()

	records := history.Records()
	out := cmd.OutOrStdout()
	if asJSON {
		data, err := records.Marshal()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, data)
		return nil
	}

	if len(records) == 0 {
		fmt.Fprintln(out, "No translations yet.")
		return nil
	}
	for i, r := range records {
		fmt.Fprintf(out, "%2d. [%s] %s → %s  %s → %s\n",
			i+1, r.Time().Format("2006-01-02 15:04"),
			strings.ToUpper(r.Source), strings.ToUpper(r.Target),
			oneLine(r.Input), oneLine(r.Output))
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, opts *rootOptions) error {
	history, store, err := openHistory(cmd, opts)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := history.Clear(); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
	return nil
}

func oneLine(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > 40 {
		return string(r[:40]) + "…"
	}
	return s
}
