package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mailroom-backend/internal/config"
	"mailroom-backend/internal/database"
	"mailroom-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type OrganizationData struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"display_name"`
	PlanType    string `yaml:"plan_type,omitempty"`
}

type UserData struct {
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
}

type MembershipData struct {
	UserEmail        string `yaml:"user_email"`
	OrganizationName string `yaml:"organization_name"`
	Role             string `yaml:"role"`
}

type RecipientData struct {
	OrganizationName string `yaml:"organization_name"`
	FirstName        string `yaml:"first_name"`
	LastName         string `yaml:"last_name"`
	Email            string `yaml:"email,omitempty"`
	Phone            string `yaml:"phone,omitempty"`
	Unit             string `yaml:"unit,omitempty"`
	Department       string `yaml:"department,omitempty"`
	Type             string `yaml:"type,omitempty"`
}

type StorageLocationData struct {
	OrganizationName string `yaml:"organization_name"`
	Name             string `yaml:"name"`
	Description      string `yaml:"description,omitempty"`
}

type IntegrationData struct {
	OrganizationName string                 `yaml:"organization_name"`
	Type             string                 `yaml:"type"`
	Name             string                 `yaml:"name"`
	Config           map[string]interface{} `yaml:"config,omitempty"`
}

type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type MembershipsFile struct {
	Memberships []MembershipData `yaml:"memberships"`
}

type RecipientsFile struct {
	Recipients []RecipientData `yaml:"recipients"`
}

type StorageLocationsFile struct {
	StorageLocations []StorageLocationData `yaml:"storage_locations"`
}

type IntegrationsFile struct {
	Integrations []IntegrationData `yaml:"integrations"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	organizations, err := loadOrganizations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}

	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	memberships, err := loadMemberships(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load memberships: %w", err)
	}

	recipients, err := loadRecipients(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load recipients: %w", err)
	}

	locations, err := loadStorageLocations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load storage locations: %w", err)
	}

	integrations, err := loadIntegrations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load integrations: %w", err)
	}

	// Organizations first; everything else hangs off them.
	orgMap := make(map[string]*models.Organization)
	orgCreated := 0
	for _, orgData := range organizations {
		org, created, err := createOrganization(db, orgData)
		if err != nil {
			return fmt.Errorf("failed to create organization %s: %w", orgData.Name, err)
		}
		orgMap[orgData.Name] = org
		if created {
			orgCreated++
		}
	}
	log.Printf("📦 Organizations: %d loaded, %d created", len(organizations), orgCreated)

	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		userMap[userData.Email] = user
		if created {
			userCreated++
		}
	}
	log.Printf("👤 Users: %d loaded, %d created", len(users), userCreated)

	membershipCreated := 0
	for _, membershipData := range memberships {
		created, err := createMembership(db, membershipData, userMap, orgMap)
		if err != nil {
			return fmt.Errorf("failed to create membership %s/%s: %w", membershipData.UserEmail, membershipData.OrganizationName, err)
		}
		if created {
			membershipCreated++
		}
	}
	log.Printf("🔗 Memberships: %d loaded, %d created", len(memberships), membershipCreated)

	recipientCreated := 0
	for _, recipientData := range recipients {
		created, err := createRecipient(db, recipientData, orgMap)
		if err != nil {
			return fmt.Errorf("failed to create recipient %s %s: %w", recipientData.FirstName, recipientData.LastName, err)
		}
		if created {
			recipientCreated++
		}
	}
	log.Printf("📬 Recipients: %d loaded, %d created", len(recipients), recipientCreated)

	locationCreated := 0
	for _, locationData := range locations {
		created, err := createStorageLocation(db, locationData, orgMap)
		if err != nil {
			return fmt.Errorf("failed to create storage location %s: %w", locationData.Name, err)
		}
		if created {
			locationCreated++
		}
	}
	log.Printf("🗄️  Storage locations: %d loaded, %d created", len(locations), locationCreated)

	integrationCreated := 0
	for _, integrationData := range integrations {
		created, err := createIntegration(db, integrationData, orgMap)
		if err != nil {
			return fmt.Errorf("failed to create integration %s: %w", integrationData.Name, err)
		}
		if created {
			integrationCreated++
		}
	}
	log.Printf("🔔 Integrations: %d loaded, %d created", len(integrations), integrationCreated)

	return nil
}

func loadOrganizations(dataDir string) ([]OrganizationData, error) {
	var allOrgs []OrganizationData

	err := walkYAMLFiles(dataDir, "organizations", func(data []byte) error {
		var file OrganizationsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allOrgs = append(allOrgs, file.Organizations...)
		return nil
	})

	return allOrgs, err
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := walkYAMLFiles(dataDir, "users", func(data []byte) error {
		var file UsersFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allUsers = append(allUsers, file.Users...)
		return nil
	})

	return allUsers, err
}

func loadMemberships(dataDir string) ([]MembershipData, error) {
	var allMemberships []MembershipData

	err := walkYAMLFiles(dataDir, "memberships", func(data []byte) error {
		var file MembershipsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allMemberships = append(allMemberships, file.Memberships...)
		return nil
	})

	return allMemberships, err
}

func loadRecipients(dataDir string) ([]RecipientData, error) {
	var allRecipients []RecipientData

	err := walkYAMLFiles(dataDir, "recipients", func(data []byte) error {
		var file RecipientsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allRecipients = append(allRecipients, file.Recipients...)
		return nil
	})

	return allRecipients, err
}

func loadStorageLocations(dataDir string) ([]StorageLocationData, error) {
	var allLocations []StorageLocationData

	err := walkYAMLFiles(dataDir, "storage_locations", func(data []byte) error {
		var file StorageLocationsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allLocations = append(allLocations, file.StorageLocations...)
		return nil
	})

	return allLocations, err
}

func loadIntegrations(dataDir string) ([]IntegrationData, error) {
	var allIntegrations []IntegrationData

	err := walkYAMLFiles(dataDir, "integrations", func(data []byte) error {
		var file IntegrationsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allIntegrations = append(allIntegrations, file.Integrations...)
		return nil
	})

	return allIntegrations, err
}

// walkYAMLFiles feeds every .yaml file whose path mentions the entity name to fn.
func walkYAMLFiles(dataDir, entity string, fn func(data []byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, entity) {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			return fn(data)
		}
		return nil
	})
}

func createOrganization(db *gorm.DB, orgData OrganizationData) (*models.Organization, bool, error) {
	var existing models.Organization
	err := db.Where("name = ?", orgData.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	plan := models.PlanTypeTrial
	if orgData.PlanType != "" {
		plan = models.PlanType(orgData.PlanType)
		if !plan.IsValid() {
			return nil, false, fmt.Errorf("invalid plan type %q", orgData.PlanType)
		}
	}
	maxUsers, maxPackages := models.PlanLimits(plan)

	org := models.Organization{
		Name:               orgData.Name,
		DisplayName:        orgData.DisplayName,
		PlanType:           plan,
		SubscriptionStatus: models.SubscriptionStatusTrialing,
		MaxUsers:           maxUsers,
		MaxPackagesMonthly: maxPackages,
	}
	if err := db.Create(&org).Error; err != nil {
		return nil, false, err
	}
	return &org, true, nil
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	var existing models.User
	err := db.Where("email = ?", userData.Email).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(userData.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, err
	}

	user := models.User{
		Email:        userData.Email,
		PasswordHash: string(hash),
		FirstName:    userData.FirstName,
		LastName:     userData.LastName,
		IsActive:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, false, err
	}
	return &user, true, nil
}

func createMembership(db *gorm.DB, membershipData MembershipData, userMap map[string]*models.User, orgMap map[string]*models.Organization) (bool, error) {
	user, ok := userMap[membershipData.UserEmail]
	if !ok {
		return false, fmt.Errorf("unknown user %q", membershipData.UserEmail)
	}
	org, ok := orgMap[membershipData.OrganizationName]
	if !ok {
		return false, fmt.Errorf("unknown organization %q", membershipData.OrganizationName)
	}

	var existing models.Membership
	err := db.Where("user_id = ? AND organization_id = ?", user.ID, org.ID).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	role := models.MembershipRoleMember
	if membershipData.Role != "" {
		role = models.MembershipRole(membershipData.Role)
		if !role.IsValid() {
			return false, fmt.Errorf("invalid role %q", membershipData.Role)
		}
	}

	membership := models.Membership{
		UserID:         user.ID,
		OrganizationID: org.ID,
		Role:           role,
	}
	if err := db.Create(&membership).Error; err != nil {
		return false, err
	}
	return true, nil
}

func createRecipient(db *gorm.DB, recipientData RecipientData, orgMap map[string]*models.Organization) (bool, error) {
	org, ok := orgMap[recipientData.OrganizationName]
	if !ok {
		return false, fmt.Errorf("unknown organization %q", recipientData.OrganizationName)
	}

	var existing models.Recipient
	err := db.Where("organization_id = ? AND first_name = ? AND last_name = ?", org.ID, recipientData.FirstName, recipientData.LastName).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	recipientType := models.RecipientTypeEmployee
	if recipientData.Type != "" {
		recipientType = models.RecipientType(recipientData.Type)
		if !recipientType.IsValid() {
			return false, fmt.Errorf("invalid recipient type %q", recipientData.Type)
		}
	}

	recipient := models.Recipient{
		OrganizationID: org.ID,
		FirstName:      recipientData.FirstName,
		LastName:       recipientData.LastName,
		Email:          optional(recipientData.Email),
		Phone:          optional(recipientData.Phone),
		Unit:           optional(recipientData.Unit),
		Department:     optional(recipientData.Department),
		Type:           recipientType,
		IsActive:       true,
	}
	if err := db.Create(&recipient).Error; err != nil {
		return false, err
	}
	return true, nil
}

func createStorageLocation(db *gorm.DB, locationData StorageLocationData, orgMap map[string]*models.Organization) (bool, error) {
	org, ok := orgMap[locationData.OrganizationName]
	if !ok {
		return false, fmt.Errorf("unknown organization %q", locationData.OrganizationName)
	}

	var existing models.StorageLocation
	err := db.Where("organization_id = ? AND name = ?", org.ID, locationData.Name).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	location := models.StorageLocation{
		OrganizationID: org.ID,
		Name:           locationData.Name,
		Description:    locationData.Description,
		IsActive:       true,
	}
	if err := db.Create(&location).Error; err != nil {
		return false, err
	}
	return true, nil
}

func createIntegration(db *gorm.DB, integrationData IntegrationData, orgMap map[string]*models.Organization) (bool, error) {
	org, ok := orgMap[integrationData.OrganizationName]
	if !ok {
		return false, fmt.Errorf("unknown organization %q", integrationData.OrganizationName)
	}

	integrationType := models.IntegrationType(integrationData.Type)
	if !integrationType.IsValid() {
		return false, fmt.Errorf("invalid integration type %q", integrationData.Type)
	}

	var existing models.Integration
	err := db.Where("organization_id = ? AND type = ?", org.ID, integrationType).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	configJSON, err := json.Marshal(integrationData.Config)
	if err != nil {
		return false, err
	}

	integration := models.Integration{
		OrganizationID: org.ID,
		Type:           integrationType,
		Name:           integrationData.Name,
		Config:         configJSON,
		IsActive:       true,
	}
	if err := db.Create(&integration).Error; err != nil {
		return false, err
	}
	return true, nil
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	trimmed := strings.TrimSpace(s)
	return &trimmed
}
