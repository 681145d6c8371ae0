package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	webServer := server.NewServer(*port)

	log.Printf("Whitted raytracer serving scenes: %s", strings.Join(scene.Names(), ", "))
	log.Printf("Try http://localhost:%d/api/render?scene=%s&width=400&height=300", *port, scene.DefaultSceneName)

	if err := webServer.Start(); err != nil {
		log.Printf("Server stopped: %v", err)
		os.Exit(1)
	}
}
