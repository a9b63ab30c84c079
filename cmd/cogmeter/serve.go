package main

import (
	"github.com/pescuma/cogmeter/lib/server"
)

type ServeCmd struct {
	Port uint `default:"2428" help:"Port to listen to."`
}

func (c *ServeCmd) Run(ctx *context) error {
	return ctx.ws.Serve(&server.Options{
		Port: c.Port,
	})
}
