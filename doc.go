/*
Package nbserve is a small service that exposes a directory of Jupyter
notebooks over HTTP.

It lists the notebooks in a document store, extracts their cells and recorded
outputs into a normalized JSON shape, and renders a decision-tree
visualization into the same directory. Transports (HTTP, MCP, CLI) are thin
adapters around [Service].

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/nbserve"
		"github.com/aretw0/nbserve/pkg/adapters/file"
	)

	func main() {
		store, err := file.New("documentos")
		if err != nil {
			log.Fatal(err)
		}
		svc := nbserve.New(store)

		names, err := svc.ListNotebooks(context.Background())
		if err != nil {
			log.Fatal(err)
		}
		for _, name := range names {
			cells, err := svc.ReadNotebook(context.Background(), name)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(name, len(cells))
		}
	}

# Errors

Operations return [domain.ErrNotFound] (wrapped) for missing notebooks and
images, and for names that do not qualify. Any other error is an internal
failure; its message is meant to be shown to the caller.
*/
package nbserve
