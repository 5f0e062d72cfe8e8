package main

import (
	"fmt"
	"os"

	"github.com/brieffast/brieffast-server/briefservice"
)

func main() {
	if err := briefservice.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
