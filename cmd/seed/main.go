// Command seed populates the database with demo employees and workflows
// for local development. It is destructive: existing employees and
// workflows are dropped first.
package main

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/worknest/workforce-api/internal/core/domain"
	"github.com/worknest/workforce-api/internal/infrastructure/config"
	mongodb "github.com/worknest/workforce-api/internal/infrastructure/db/mongo"
	"github.com/worknest/workforce-api/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongo")
	}
	defer client.Disconnect(context.Background())

	if err := drop(ctx, db, "employees", "workflows"); err != nil {
		log.Fatal().Err(err).Msg("failed to clear collections")
	}

	employees := mongodb.NewEmployeeRepository(db)
	if err := employees.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create employee indexes")
	}

	admin := seedEmployee(ctx, log, employees, "Admin User", "admin@example.com", "admin", "admin123")
	manager := seedEmployee(ctx, log, employees, "Manager User", "manager@example.com", "manager", "manager123")
	regular := seedEmployee(ctx, log, employees, "Regular User", "user@example.com", "developer", "user123")

	workflows := mongodb.NewWorkflowRepository(db)
	if err := workflows.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create workflow indexes")
	}

	due := time.Now().AddDate(0, 1, 0)
	now := time.Now().UTC()
	sample := &domain.Workflow{
		Title:       "Website Redesign Project",
		Description: "Complete redesign of company website with modern look and feel",
		Status:      domain.WorkflowActive,
		Priority:    domain.PriorityHigh,
		Category:    "Development",
		CreatedBy:   admin.ID,
		AssignedTo:  []string{manager.ID, regular.ID},
		Steps: []domain.Step{
			{Title: "Design Phase", Description: "Produce wireframes and mockups", Order: 1, Status: domain.StepCompleted, AssigneeID: manager.ID, CompletedAt: &now},
			{Title: "Implementation", Description: "Build the approved design", Order: 2, Status: domain.StepInProgress, AssigneeID: regular.ID},
			{Title: "Review", Description: "Stakeholder review and sign-off", Order: 3, Status: domain.StepPending},
		},
		DueDate:   &due,
		Tags:      []string{"web", "design"},
		Comments:  []domain.Comment{},
		IsPublic:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := workflows.Create(ctx, sample); err != nil {
		log.Fatal().Err(err).Msg("failed to create sample workflow")
	}

	log.Info().Msg("seed complete")
}

func seedEmployee(ctx context.Context, log zerolog.Logger, repo *mongodb.EmployeeRepository, fullName, email, designation, password string) *domain.Employee {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}

	now := time.Now().UTC()
	employee, err := repo.Create(ctx, &domain.Employee{
		FullName:     fullName,
		Email:        email,
		Designation:  designation,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		log.Fatal().Err(err).Str("email", email).Msg("failed to create employee")
	}

	log.Info().Str("email", email).Str("role", string(employee.Role())).Msg("created employee")
	return employee
}

func drop(ctx context.Context, db *mongo.Database, collections ...string) error {
	for _, name := range collections {
		if err := db.Collection(name).Drop(ctx); err != nil {
			return err
		}
	}
	return nil
}
