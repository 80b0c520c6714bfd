package core

import (
	"fmt"
	"log"
	"os"

	"github.com/danielgtaylor/huma/v2"
	"github.com/hypernetix/crtime/libs/api"
	"github.com/hypernetix/crtime/libs/config"
	"github.com/hypernetix/crtime/libs/logging"
)

// Module represents a package of callbacks and attributes required to initialize the module
// The attributes below are listed in the order of initialization flow
type Module struct {
	Name          string
	InitAPIRoutes func(api huma.API) // registers API routes
	InitMain      func() error       // main init worker, called in the end
}

// Global slice to store registered initialization routines
var modules []Module

// RegisterModule adds a new package to be executed during Init
// Packages will be executed in the order they were registered
func RegisterModule(pkg *Module) {
	modules = append(modules, *pkg)
}

func Init(cfg *config.Config) error {
	homeDir, err := serverHomeDirInit(cfg)
	if err != nil {
		return err
	}

	logging.Info("Working directory initialized: %s", homeDir)

	err = initAPIRoutes()
	if err != nil {
		return err
	}

	// Execute all registered initialization routines in order
	err = initMain()
	if err != nil {
		return err
	}

	return nil
}

func initAPIRoutes() error {
	for _, module := range modules {
		if module.InitAPIRoutes != nil {
			api.RegisterAPIRoutes(module.InitAPIRoutes)
		}
	}
	return nil
}

// initMain executes all registered initialization routines in their registration order
func initMain() error {
	for _, module := range modules {
		if module.InitMain != nil {
			logging.Debug("Initializing: %s", module.Name)
			err := module.InitMain()
			if err != nil {
				err = fmt.Errorf("failed to initialize module: %s", err)
				logging.Error(err.Error())
				return err
			}
		}
	}
	return nil
}

// serverHomeDirInit initializes the server's home directory and changes to it
func serverHomeDirInit(cfg *config.Config) (string, error) {
	homeDir, err := config.ResolveHomeDir(cfg.Server.HomeDir)
	if err != nil {
		return "", err
	}

	// Create the directory if it doesn't exist
	if err := os.MkdirAll(homeDir, 0755); err != nil {
		log.Fatalf("Failed to create home directory %s: %v", homeDir, err)
	}

	// Change to the home directory
	if err := os.Chdir(homeDir); err != nil {
		log.Fatalf("Failed to change working directory to %s: %v", homeDir, err)
	}

	return homeDir, nil
}
