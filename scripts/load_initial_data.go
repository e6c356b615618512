package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"agent-distribution-backend/internal/config"
	"agent-distribution-backend/internal/database"
	"agent-distribution-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the DB schema
type OperatorData struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Mobile   string `yaml:"mobile,omitempty"`
}

type AgentData struct {
	Name          string `yaml:"name"`
	Email         string `yaml:"email"`
	Mobile        string `yaml:"mobile"`
	Password      string `yaml:"password"`
	Status        string `yaml:"status,omitempty"`
	OperatorEmail string `yaml:"operator_email"`
}

// File structures
type OperatorsFile struct {
	Operators []OperatorData `yaml:"operators"`
}

type AgentsFile struct {
	Agents []AgentData `yaml:"agents"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, cfg, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress GORM logs including SQL queries and "record not found"
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, cfg *config.Config, dataDir string) error {
	operators, err := loadOperators(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load operators: %w", err)
	}

	agents, err := loadAgents(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load agents: %w", err)
	}

	// Create operators first so agents can reference their creator
	operatorMap := make(map[string]*models.User)
	operatorCreated := 0
	for _, operatorData := range operators {
		operator, created, err := createOperator(db, cfg, operatorData)
		if err != nil {
			return fmt.Errorf("failed to create operator %s: %w", operatorData.Email, err)
		}
		operatorMap[strings.ToLower(operatorData.Email)] = operator
		if created {
			operatorCreated++
		}
	}
	log.Printf("Operators: %d created, %d total", operatorCreated, len(operators))

	agentCreated := 0
	for _, agentData := range agents {
		_, created, err := createAgent(db, cfg, agentData, operatorMap)
		if err != nil {
			log.Printf("Warning: failed to create agent %s: %v", agentData.Email, err)
			continue
		}
		if created {
			agentCreated++
		}
	}
	log.Printf("Agents: %d created, %d total", agentCreated, len(agents))

	return nil
}

func loadOperators(dataDir string) ([]OperatorData, error) {
	var allOperators []OperatorData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "operators") {
			var file OperatorsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allOperators = append(allOperators, file.Operators...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return allOperators, nil
}

func loadAgents(dataDir string) ([]AgentData, error) {
	var allAgents []AgentData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "agents") {
			var file AgentsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allAgents = append(allAgents, file.Agents...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return allAgents, nil
}

// createOperator creates an operator account if it does not exist yet.
// Existing accounts are left untouched so reruns are safe.
func createOperator(db *gorm.DB, cfg *config.Config, data OperatorData) (*models.User, bool, error) {
	email := strings.ToLower(data.Email)

	var existing models.User
	err := db.First(&existing, "email = ?", email).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, fmt.Errorf("failed to hash password: %w", err)
	}

	operator := &models.User{
		Name:     data.Name,
		Email:    email,
		Password: string(hash),
		Mobile:   withCountryCode(data.Mobile, cfg.DefaultCountryCode),
		Role:     models.UserRoleAdmin,
	}
	if err := db.Create(operator).Error; err != nil {
		return nil, false, err
	}
	return operator, true, nil
}

// createAgent creates an agent if it does not exist yet
func createAgent(db *gorm.DB, cfg *config.Config, data AgentData, operatorMap map[string]*models.User) (*models.Agent, bool, error) {
	email := strings.ToLower(data.Email)

	var existing models.Agent
	err := db.First(&existing, "email = ?", email).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	operator, ok := operatorMap[strings.ToLower(data.OperatorEmail)]
	if !ok {
		return nil, false, fmt.Errorf("unknown operator %s", data.OperatorEmail)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, fmt.Errorf("failed to hash password: %w", err)
	}

	status := models.AgentStatus(data.Status)
	if status == "" {
		status = models.AgentStatusActive
	}

	agent := &models.Agent{
		Name:      data.Name,
		Email:     email,
		Mobile:    withCountryCode(data.Mobile, cfg.DefaultCountryCode),
		Password:  string(hash),
		Status:    status,
		CreatedBy: operator.ID,
	}
	if err := db.Create(agent).Error; err != nil {
		return nil, false, err
	}
	return agent, true, nil
}

func withCountryCode(mobile, countryCode string) string {
	mobile = strings.TrimSpace(mobile)
	if mobile == "" || countryCode == "" || strings.HasPrefix(mobile, countryCode) {
		return mobile
	}
	return countryCode + mobile
}
