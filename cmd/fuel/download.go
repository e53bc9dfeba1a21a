package main

import (
	"fmt"
	"os"
	"sync"

	// Packages
	tablewriter "github.com/djthorpe/go-tablewriter"
	errgroup "golang.org/x/sync/errgroup"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type DownloadCmd struct {
	URLs []string `arg:"" help:"Model URLs or unique names"`
	Jobs int      `default:"4" help:"Number of concurrent downloads"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *DownloadCmd) Run(globals *Globals) error {
	if cmd.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1")
	}

	// Download in parallel, bounded by the number of jobs
	var mu sync.Mutex
	result := make(DownloadList, 0, len(cmd.URLs))
	wg, ctx := errgroup.WithContext(globals.ctx)
	wg.SetLimit(cmd.Jobs)
	for _, rawURL := range cmd.URLs {
		wg.Go(func() error {
			path, err := globals.client.DownloadModelURL(ctx, rawURL)
			if err != nil {
				return fmt.Errorf("%s: %w", rawURL, err)
			}
			mu.Lock()
			defer mu.Unlock()
			result = append(result, Download{URL: rawURL, Path: path})
			return nil
		})
	}
	if err := wg.Wait(); err != nil {
		return err
	}

	// Write out the downloaded models
	return tablewriter.New(os.Stdout).Write(result, tablewriter.OptOutputText(), tablewriter.OptHeader())
}

////////////////////////////////////////////////////////////////////////////////
// DOWNLOAD LIST

type Download struct {
	URL  string `json:"url" writer:"URL,wrap,width:50"`
	Path string `json:"path" writer:"Path,wrap,width:50"`
}

type DownloadList []Download
