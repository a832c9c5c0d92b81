package main

import (
	"os"

	"github.com/joshrandall8478/color-wizard/internal/lsp"
	"github.com/joshrandall8478/color-wizard/internal/resolver"
	"github.com/joshrandall8478/color-wizard/internal/webcolor"
)

var version = "dev"

func main() {
	s := lsp.NewServer(resolver.New(webcolor.Table{}), version)
	if err := s.Run(); err != nil {
		os.Exit(1)
	}
}
