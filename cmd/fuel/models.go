package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	// Packages
	tablewriter "github.com/djthorpe/go-tablewriter"
	errgroup "golang.org/x/sync/errgroup"

	schema "github.com/fueltools/go-fuel/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ListModelsCmd struct {
	Server string `help:"Only return models from a named server"`
	Owner  string `help:"Only return models belonging to an owner"`
}

type ModelDetailCmd struct {
	URL string `arg:"" help:"Model URL or unique name"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *ListModelsCmd) Run(globals *Globals) error {
	servers, err := selectServers(globals, cmd.Server)
	if err != nil {
		return err
	}

	// Collect models from all servers in parallel
	var mu sync.Mutex
	var all []schema.ModelIdentifier
	wg, ctx := errgroup.WithContext(globals.ctx)
	for _, server := range servers {
		wg.Go(func() error {
			models := globals.client.ListModels(ctx, server)
			mu.Lock()
			defer mu.Unlock()
			all = append(all, models...)
			return nil
		})
	}
	if err := wg.Wait(); err != nil {
		return err
	}

	// Filter and sort
	result := make(ModelList, 0, len(all))
	for _, model := range all {
		if cmd.Owner != "" && model.Owner != cmd.Owner {
			continue
		}
		result = append(result, Model{
			Owner:     model.Owner,
			Name:      model.Name,
			Server:    model.Server.URL,
			Downloads: model.Downloads,
		})
	}
	sort.Sort(result)

	// Write out the models
	return tablewriter.New(os.Stdout).Write(result, tablewriter.OptOutputText(), tablewriter.OptHeader())
}

func (cmd *ModelDetailCmd) Run(globals *Globals) error {
	server, id, err := globals.client.ParseModelURL(cmd.URL)
	if err != nil {
		return err
	}
	model, err := globals.client.ModelDetails(globals.ctx, server, id)
	if err != nil {
		return err
	}
	fmt.Println(model)
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// Select the servers a command operates on, either all configured
// servers or a single one named by local name or URL.
func selectServers(globals *Globals, name string) ([]schema.ServerConfig, error) {
	servers := globals.client.Config().Servers
	if name == "" {
		return servers, nil
	}
	for _, server := range servers {
		if server.Name == name || server.URL == name {
			return []schema.ServerConfig{server}, nil
		}
	}
	return nil, fmt.Errorf("no configured server %q", name)
}

////////////////////////////////////////////////////////////////////////////////
// MODEL LIST

type Model struct {
	Owner     string `json:"owner" writer:"Owner,width:20"`
	Name      string `json:"name" writer:"Name,wrap,width:30"`
	Server    string `json:"server" writer:"Server,width:35"`
	Downloads uint64 `json:"downloads" writer:"Downloads,width:10"`
}

type ModelList []Model

func (models ModelList) Len() int {
	return len(models)
}

func (models ModelList) Less(a, b int) bool {
	if models[a].Owner != models[b].Owner {
		return strings.Compare(models[a].Owner, models[b].Owner) < 0
	}
	return strings.Compare(models[a].Name, models[b].Name) < 0
}

func (models ModelList) Swap(a, b int) {
	models[a], models[b] = models[b], models[a]
}
