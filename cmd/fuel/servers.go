package main

import (
	"os"

	// Packages
	tablewriter "github.com/djthorpe/go-tablewriter"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ListServersCmd struct{}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *ListServersCmd) Run(globals *Globals) error {
	servers := globals.client.Config().Servers
	result := make(ServerList, 0, len(servers))
	for _, server := range servers {
		result = append(result, Server{
			Name:    server.Name,
			URL:     server.URL,
			Version: server.Version,
		})
	}

	// Write out the servers
	return tablewriter.New(os.Stdout).Write(result, tablewriter.OptOutputText(), tablewriter.OptHeader())
}

////////////////////////////////////////////////////////////////////////////////
// SERVER LIST

type Server struct {
	Name    string `json:"name" writer:"Name,width:15"`
	URL     string `json:"url" writer:"URL,width:40"`
	Version string `json:"version" writer:"Version,width:10"`
}

type ServerList []Server
