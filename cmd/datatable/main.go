package main

import (
	"fmt"
	"os"

	"github.com/leengari/datatable"
	"github.com/leengari/datatable/internal/logging"
)

func main() {
	logger, closeFn := logging.SetupLogger(os.Getenv("SEQ_URL"))
	defer closeFn()

	if len(os.Args) < 2 {
		logger.Error("usage: datatable <csv-file>")
		closeFn()
		os.Exit(1)
	}
	path := os.Args[1]

	dt, err := datatable.FromCSV(path,
		datatable.WithLogger(logger),
		datatable.WithObserver(datatable.NewLoggingObserver(logger)),
	)
	if err != nil {
		logger.Error("failed to load table", "path", path, "error", err)
		closeFn()
		os.Exit(1)
	}

	logger.Info("table ready", "labels", dt.Labels(), "rows", dt.Len())

	// Flush any mutations back to the file on shutdown
	defer func() {
		if err := dt.FlushIfDirty(); err != nil {
			logger.Error("shutdown flush failed", "error", err)
		}
	}()

	rows, err := dt.Select(nil)
	if err != nil {
		logger.Error("select failed", "error", err)
		return
	}
	for i, row := range rows {
		logger.Info("row", "index", i, "data", map[string]datatable.Value(row))
	}

	// Per-column maxima over the numeric columns
	for _, label := range dt.Labels() {
		max, err := dt.Max(label)
		if err != nil {
			logger.Debug("column not aggregatable", "column", label, "reason", err)
			continue
		}
		logger.Info("column max", "column", label, "max", max)
	}

	text, err := dt.CSVString()
	if err != nil {
		logger.Error("export failed", "error", err)
		return
	}
	fmt.Println(text)
}
