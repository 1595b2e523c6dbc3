// smoke checks that the services the API depends on are reachable with the current
// configuration: MongoDB always, Cloudinary when credentials are set.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/xyz-asif/storefront/internal/config"
	"github.com/xyz-asif/storefront/internal/database"
	"github.com/xyz-asif/storefront/internal/pkg/cloudinary"
)

func main() {
	var requireImages bool
	var timeout time.Duration

	flags := pflag.NewFlagSet("smoke", pflag.ExitOnError)
	flags.BoolVar(&requireImages, "require-images", false, "fail when Cloudinary is not configured")
	flags.DurationVar(&timeout, "timeout", 10*time.Second, "timeout for each check")
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Load()
	if err != nil {
		fail("config", err)
	}

	fmt.Println("Testing MongoDB connection...")
	opts := database.DefaultOptions()
	opts.ConnectTimeout = timeout
	db, err := database.ConnectWithOptions(cfg.MongoURI, cfg.MongoDB, opts)
	if err != nil {
		fail("mongodb", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	defer db.Disconnect(ctx)

	if err := db.HealthCheck(ctx); err != nil {
		fail("mongodb", err)
	}
	fmt.Printf("MongoDB ok (database %q)\n", cfg.MongoDB)

	fmt.Println("\nTesting Cloudinary configuration...")
	if !cfg.CloudinaryEnabled() {
		if requireImages {
			fail("cloudinary", fmt.Errorf("CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY and CLOUDINARY_API_SECRET must be set"))
		}
		fmt.Println("Cloudinary not configured, image uploads will answer 503")
	} else {
		if _, err := cloudinary.NewService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryUploadFolder); err != nil {
			fail("cloudinary", err)
		}
		fmt.Printf("Cloudinary ok (cloud %q, folder %q)\n", cfg.CloudinaryCloudName, cfg.CloudinaryUploadFolder)
	}

	fmt.Println("\nAll checks passed.")
}

func fail(check string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", check, err)
	os.Exit(1)
}
