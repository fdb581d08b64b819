package main

import (
	_ "golang.org/x/crypto/x509roots/fallback"

	"github.com/Amund211/battlemetrics/internal/cli"
)

func main() {
	cli.Execute()
}
