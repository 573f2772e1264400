// cmd/folio/main.go
package main

import (
	"context"
	"os"

	"github.com/bsari/folio/internal/app"
	"github.com/bsari/folio/internal/app/bootstrap"
)

func main() {
	if err := app.Run(context.Background(), bootstrap.Hooks()); err != nil {
		os.Exit(1)
	}
}
