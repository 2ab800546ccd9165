package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/df07/go-sphere-caster/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	// Create and start web server
	webServer := server.NewServer(*port)

	log.Printf("Sphere Raycaster Web Server")
	log.Printf("Visit %s to render the default scene", renderURL(*port))

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}

// renderURL is the local address of the render endpoint
func renderURL(port int) string {
	return fmt.Sprintf("http://localhost:%d/api/render", port)
}
