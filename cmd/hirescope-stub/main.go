// Command hirescope-stub runs the fixture backend for local development.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"hirescope/stubserver"
)

func main() {
	_ = godotenv.Load()

	addr := flag.String("addr", ":8000", "listen address")
	flag.Parse()

	r := stubserver.NewRouter()
	fmt.Printf("hirescope stub backend listening on %s\n", *addr)
	if err := r.Run(*addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
