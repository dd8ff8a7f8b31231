package main

import (
	"github.com/mikededo/sort-svelte-attributes/internal/app"
)

func main() {
	app.Run()
}
