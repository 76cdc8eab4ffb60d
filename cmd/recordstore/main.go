package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	recordstore "github.com/gustapinto/go-record-store"
	"github.com/gustapinto/go-record-store/codec"
	"github.com/gustapinto/go-record-store/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

type flags struct {
	file     string
	logFile  string
	format   string
	buffered bool
	raw      bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:           "recordstore",
		Short:         "Append and read text records of a single YAML or JSON file",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&f.file, "file", "f", "example.yaml", "backing file path")
	rootCmd.PersistentFlags().StringVar(&f.logFile, "log-file", logging.DefaultFilePath, "log file for write and append failures")
	rootCmd.PersistentFlags().StringVar(&f.format, "format", "", "backing file format (yaml or json), chosen from the extension when empty")
	rootCmd.PersistentFlags().BoolVar(&f.buffered, "buffered", false, "skip fsync when replacing the backing file")

	appendCmd := &cobra.Command{
		Use:   "append [text...]",
		Short: "Append one record per argument",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(f)
			if err != nil {
				return err
			}

			for _, text := range args {
				record, err := store.Append(text)
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), record.ID)
			}

			return nil
		},
	}

	readCmd := &cobra.Command{
		Use:   "read",
		Short: "Print every valid record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(f)
			if err != nil {
				return err
			}

			records, err := store.Read()
			if err != nil {
				return err
			}

			if f.raw {
				c, err := storeCodec(f)
				if err != nil {
					return err
				}

				buffer, err := c.Marshal(records)
				if err != nil {
					return err
				}

				_, err = cmd.OutOrStdout().Write(buffer)
				return err
			}

			for _, record := range records {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", record.ID, record.Text)
			}

			return nil
		},
	}
	readCmd.Flags().BoolVar(&f.raw, "raw", false, "print the records encoded in the backing file format")

	writeCmd := &cobra.Command{
		Use:   "write [source]",
		Short: "Replace the backing file with the valid records of source",
		Long: `Decodes source with the format of its extension and replaces the whole backing
file with its valid records. Malformed entries are dropped, not reported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(f)
			if err != nil {
				return err
			}

			buffer, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			value, err := codec.ForPath(args[0]).Unmarshal(buffer)
			if err != nil {
				return fmt.Errorf("cannot decode '%s': %w", args[0], err)
			}

			return store.WriteValue(value)
		},
	}

	rootCmd.AddCommand(appendCmd, readCmd, writeCmd)

	return rootCmd
}

func storeCodec(f *flags) (codec.Codec, error) {
	if f.format == "" {
		return codec.ForPath(f.file), nil
	}

	c, ok := codec.ForName(f.format)
	if !ok {
		return nil, fmt.Errorf("unknown format %q", f.format)
	}

	return c, nil
}

func openStore(f *flags) (*recordstore.RecordStore, error) {
	c, err := storeCodec(f)
	if err != nil {
		return nil, err
	}

	mode := recordstore.Sync
	if f.buffered {
		mode = recordstore.Buffered
	}

	return recordstore.New(f.file,
		recordstore.WithCodec(c),
		recordstore.WithWriteMode(mode),
		recordstore.WithConsoleLogger(logging.Console()),
		recordstore.WithFileLogger(logging.File(f.logFile)),
	)
}

// reportError Prints the failures the store did not already print to the console. Write
// and append failures only reach the log file, so a one line notice points to it
func reportError(w io.Writer, err error, logFile string) {
	var storeErr *recordstore.Error
	if !errors.As(err, &storeErr) || storeErr.Op == recordstore.OpNew {
		logging.New(zapcore.AddSync(w)).Named("recordstore").Error(err.Error())
		return
	}

	switch storeErr.Op {
	case recordstore.OpWrite, recordstore.OpAppend:
		fmt.Fprintf(w, "recordstore: %s failed, see %s\n", storeErr.Op, logFile)
	}
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		logFile, _ := rootCmd.PersistentFlags().GetString("log-file")
		reportError(os.Stderr, err, logFile)

		os.Exit(1)
	}
}
