package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ardnew/jsonify/cli"
	"github.com/ardnew/jsonify/log"
	"github.com/ardnew/jsonify/pkg"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		log.Error(
			"run failed",
			slog.Any("error", err),
		) // slog automatically uses LogValue()
		fmt.Fprintf(os.Stderr, "%s: %v\n", pkg.Name, err)
		os.Exit(1)
	}
}
