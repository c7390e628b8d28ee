// Command main runs the database seeder for PaulGram.
package main

import (
	"flag"
	"log"

	"paulgram/internal/config"
	"paulgram/internal/database"
	"paulgram/internal/seed"
)

func main() {
	agentsFile := flag.String("agents", "", "Path to the agents seed file (defaults to AGENTS_SEED_FILE)")
	demoUsers := flag.Int("demo-users", 0, "Number of fake onboarded users to create")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	path := *agentsFile
	if path == "" {
		path = cfg.AgentsSeedFile
	}

	specs, err := seed.LoadAgentSpecs(path)
	if err != nil {
		log.Fatalf("Failed to load agent definitions: %v", err)
	}
	if err := seed.Agents(db, specs); err != nil {
		log.Fatalf("Agent seeding failed: %v", err)
	}

	if *demoUsers > 0 {
		users, err := seed.DemoUsers(db, *demoUsers)
		if err != nil {
			log.Fatalf("Demo user seeding failed: %v", err)
		}
		log.Printf("created %d demo users", len(users))
	}

	log.Println("Seeding complete.")
}
