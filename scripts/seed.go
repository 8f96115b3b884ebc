package main

import (
	"context"
	"log"
	"os"

	"github.com/makjesusfreak-ai/ReactWebApp99/internal/adapters/database"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/application/services"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/domain/entities"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/infrastructure/clients/postgres"
	"github.com/makjesusfreak-ai/ReactWebApp99/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	ctx := context.Background()

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, truncating ailments before seeding")
		if _, err := pgClient.DB().ExecContext(ctx, `TRUNCATE TABLE ailments`); err != nil {
			log.Fatalf("Failed to reset tables: %v", err)
		}
	}

	repo := database.NewAilmentAdapter(pgClient)
	service := services.NewAilmentService(repo, nil)

	seeds := []services.CreateAilmentInput{
		{
			Ailment: entities.AilmentDetails{
				Name:        "Migraine",
				Description: "Recurring severe headaches with light sensitivity",
				Duration:    14400,
				Intensity:   70,
				Severity:    50,
			},
			Treatments: []entities.Treatment{
				{
					Name:        "Sumatriptan",
					Description: "Triptan taken at onset",
					Application: entities.ApplicationOral,
					Efficacy:    85,
					Duration:    7200,
					Intensity:   30,
					SideEffects: []entities.SideEffect{
						{Name: "Drowsiness", Duration: 10800, Intensity: 30, Severity: 20},
						{Name: "Nausea", Duration: 3600, Intensity: 20, Severity: 15},
					},
				},
				{
					Name:         "Rest in dark room",
					Type:         entities.CareTypeHolistic,
					Setting:      entities.SettingHome,
					Efficacy:     40,
					Duration:     14400,
					IsPalliative: true,
				},
			},
			Diagnostics: []entities.Diagnostic{
				{
					Name:        "CT Scan",
					Description: "Rules out structural causes",
					Efficacy:    90,
					Duration:    1800,
					Setting:     entities.SettingHospital,
					SideEffects: []entities.SideEffect{
						{Name: "Radiation exposure", Severity: 10},
					},
				},
			},
		},
		{
			Ailment: entities.AilmentDetails{
				Name:        "Seasonal Influenza",
				Description: "Viral infection with fever and body aches",
				Duration:    604800,
				Intensity:   55,
				Severity:    35,
			},
			Treatments: []entities.Treatment{
				{
					Name:       "Oseltamivir",
					Efficacy:   60,
					Duration:   432000,
					IsCurative: true,
				},
				{
					Name:           "Flu vaccine",
					Efficacy:       70,
					IsPreventative: true,
				},
			},
			Diagnostics: []entities.Diagnostic{
				{Name: "Rapid antigen test", Efficacy: 75, Duration: 900},
			},
		},
		{
			Ailment: entities.AilmentDetails{
				Name:        "Asthma",
				Description: "Chronic airway inflammation",
				Intensity:   45,
				Severity:    60,
			},
			Treatments: []entities.Treatment{
				{
					Name:     "Salbutamol inhaler",
					Efficacy: 80,
					Duration: 14400,
					SideEffects: []entities.SideEffect{
						{Name: "Tremor", Duration: 3600, Intensity: 25, Severity: 10},
					},
				},
			},
			Diagnostics: []entities.Diagnostic{
				{Name: "Spirometry", Efficacy: 85, Duration: 2700, Setting: entities.SettingClinic},
			},
		},
	}

	for _, seed := range seeds {
		created, err := service.Create(ctx, seed)
		if err != nil {
			log.Printf("Failed to seed ailment %s: %v", seed.Ailment.Name, err)
			continue
		}
		log.Printf("Seeded ailment %s (%s)", created.Ailment.Name, created.ID)
	}

	log.Println("Seeding complete")
}
