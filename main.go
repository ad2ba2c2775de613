package main

import (
	"github.com/laradl/laradl/cmd"
	"github.com/laradl/laradl/config"
	"github.com/laradl/laradl/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
