package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/jonathan/devfolio/internal/config"
	"github.com/jonathan/devfolio/internal/server"
	"github.com/jonathan/devfolio/internal/upload"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start the HTTP server that exposes the public site endpoints and the authenticated admin API.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	var uploader upload.Uploader
	if cfg.CloudinaryURL != "" {
		uploader, err = upload.NewCloudinary(cfg.CloudinaryURL, cfg.CloudinaryFolder)
		if err != nil {
			return err
		}
	} else {
		log.Println("CLOUDINARY_URL not set, image uploads disabled")
	}

	srv, err := server.New(server.Config{
		Port:         cfg.Port,
		DatabaseURL:  cfg.DatabaseURL,
		AllowedEmail: cfg.AllowedEmail,
		Verifier:     server.NewGoogleVerifier(cfg.GoogleClientID),
		Uploader:     uploader,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
