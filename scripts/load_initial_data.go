package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"church-planning-backend/internal/config"
	"church-planning-backend/internal/database"
	"church-planning-backend/internal/database/models"
	"church-planning-backend/internal/metrics"
	"church-planning-backend/internal/repository"
	"church-planning-backend/internal/service"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type ChurchData struct {
	Name       string         `yaml:"name"`
	Slug       string         `yaml:"slug,omitempty"`
	Ministries []MinistryData `yaml:"ministries"`
	Events     []EventData    `yaml:"events,omitempty"`
}

type MinistryData struct {
	Name        string           `yaml:"name"`
	Departments []DepartmentData `yaml:"departments"`
}

type DepartmentData struct {
	Name    string       `yaml:"name"`
	Members []MemberData `yaml:"members,omitempty"`
}

type MemberData struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
}

type EventData struct {
	Title       string   `yaml:"title"`
	Type        string   `yaml:"type"`
	Date        string   `yaml:"date"` // RFC 3339
	Departments []string `yaml:"departments,omitempty"`
}

type UserData struct {
	Email string     `yaml:"email"`
	Name  string     `yaml:"name"`
	Roles []RoleData `yaml:"roles,omitempty"`
}

type RoleData struct {
	Church      string   `yaml:"church"` // church slug
	Role        string   `yaml:"role"`
	Ministry    string   `yaml:"ministry,omitempty"`
	Departments []string `yaml:"departments,omitempty"`
}

// File structures
type ChurchesFile struct {
	Churches []ChurchData `yaml:"churches"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

// churchIndex resolves names inside one seeded church
type churchIndex struct {
	church      *models.Church
	ministries  map[string]*models.Ministry
	departments map[string]*models.Department
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

	// Configured super admins get their role on every seeded church
	superAdmin := service.NewSuperAdminService(
		repository.NewUserRepository(db),
		repository.NewChurchRepository(db),
		repository.NewRoleRepository(db),
		cfg.SuperAdminEmails(),
		metrics.Noop{},
	)
	result, err := superAdmin.Reconcile(context.Background())
	if err != nil {
		log.Fatalf("Failed to reconcile super admins: %v", err)
	}
	log.Printf("📋 Super admin roles: %d created", result.Created)

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
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
	var churchesFile ChurchesFile
	if err := loadYAML(dataDir, "churches", func(data []byte) error {
		var file ChurchesFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		churchesFile.Churches = append(churchesFile.Churches, file.Churches...)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load churches: %w", err)
	}

	var usersFile UsersFile
	if err := loadYAML(dataDir, "users", func(data []byte) error {
		var file UsersFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		usersFile.Users = append(usersFile.Users, file.Users...)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	// Create the church hierarchy first
	churches := make(map[string]*churchIndex)
	var churchCreated, deptCreated, memberCreated, eventCreated int
	for _, churchData := range churchesFile.Churches {
		index, created, err := createChurch(db, churchData)
		if err != nil {
			return fmt.Errorf("failed to create church %s: %w", churchData.Name, err)
		}
		churches[index.church.Slug] = index
		if created {
			churchCreated++
		}

		for _, ministryData := range churchData.Ministries {
			ministry, _, err := createMinistry(db, index.church.ID, ministryData.Name)
			if err != nil {
				return fmt.Errorf("failed to create ministry %s: %w", ministryData.Name, err)
			}
			index.ministries[ministryData.Name] = ministry

			for _, deptData := range ministryData.Departments {
				department, created, err := createDepartment(db, ministry.ID, deptData.Name)
				if err != nil {
					return fmt.Errorf("failed to create department %s: %w", deptData.Name, err)
				}
				index.departments[deptData.Name] = department
				if created {
					deptCreated++
				}

				for _, memberData := range deptData.Members {
					created, err := createMember(db, department.ID, memberData)
					if err != nil {
						return fmt.Errorf("failed to create member %s %s: %w", memberData.FirstName, memberData.LastName, err)
					}
					if created {
						memberCreated++
					}
				}
			}
		}

		for _, eventData := range churchData.Events {
			created, err := createEvent(db, index, eventData)
			if err != nil {
				log.Printf("⚠️  Warning: failed to create event %s: %v", eventData.Title, err)
				continue // Continue with other events
			}
			if created {
				eventCreated++
			}
		}
	}
	log.Printf("📋 Churches: %d created, %d total", churchCreated, len(churchesFile.Churches))
	log.Printf("📋 Departments: %d created", deptCreated)
	log.Printf("📋 Members: %d created", memberCreated)
	log.Printf("📋 Events: %d created", eventCreated)

	// Create users and their role assignments
	roleCreated := 0
	for _, userData := range usersFile.Users {
		user, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		for _, roleData := range userData.Roles {
			created, err := createRole(db, user.ID, roleData, churches)
			if err != nil {
				log.Printf("⚠️  Warning: failed to grant %s to %s: %v", roleData.Role, userData.Email, err)
				continue
			}
			if created {
				roleCreated++
			}
		}
	}
	log.Printf("📋 Users: %d total, %d role assignments created", len(usersFile.Users), roleCreated)

	return nil
}

// loadYAML feeds every .yaml file under dataDir whose path contains kind to fn
func loadYAML(dataDir, kind string, fn func(data []byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(filepath.Base(path), kind) {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			if err := fn(data); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}
		return nil
	})
}

func createChurch(db *gorm.DB, churchData ChurchData) (*churchIndex, bool, error) {
	slug := churchData.Slug
	if slug == "" {
		slug = service.Slugify(churchData.Name)
	}

	index := &churchIndex{
		ministries:  make(map[string]*models.Ministry),
		departments: make(map[string]*models.Department),
	}

	var church models.Church
	err := db.Where("slug = ?", slug).First(&church).Error
	if err == nil {
		index.church = &church
		return index, false, nil // created = false (existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query church: %w", err)
	}

	church = models.Church{Name: churchData.Name, Slug: slug}
	if err := db.Create(&church).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create church: %w", err)
	}
	index.church = &church
	return index, true, nil
}

func createMinistry(db *gorm.DB, churchID uuid.UUID, name string) (*models.Ministry, bool, error) {
	var ministry models.Ministry
	err := db.Where("church_id = ? AND name = ?", churchID, name).First(&ministry).Error
	if err == nil {
		return &ministry, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query ministry: %w", err)
	}

	ministry = models.Ministry{ChurchID: churchID, Name: name}
	if err := db.Create(&ministry).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create ministry: %w", err)
	}
	return &ministry, true, nil
}

func createDepartment(db *gorm.DB, ministryID uuid.UUID, name string) (*models.Department, bool, error) {
	var department models.Department
	err := db.Where("ministry_id = ? AND name = ?", ministryID, name).First(&department).Error
	if err == nil {
		return &department, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query department: %w", err)
	}

	department = models.Department{MinistryID: ministryID, Name: name}
	if err := db.Create(&department).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create department: %w", err)
	}
	return &department, true, nil
}

func createMember(db *gorm.DB, departmentID uuid.UUID, memberData MemberData) (bool, error) {
	var member models.Member
	err := db.Where("department_id = ? AND first_name = ? AND last_name = ?", departmentID, memberData.FirstName, memberData.LastName).
		First(&member).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query member: %w", err)
	}

	member = models.Member{DepartmentID: departmentID, FirstName: memberData.FirstName, LastName: memberData.LastName}
	if err := db.Create(&member).Error; err != nil {
		return false, fmt.Errorf("failed to create member: %w", err)
	}
	return true, nil
}

func createEvent(db *gorm.DB, index *churchIndex, eventData EventData) (bool, error) {
	date, err := time.Parse(time.RFC3339, eventData.Date)
	if err != nil {
		return false, fmt.Errorf("invalid date %q: %w", eventData.Date, err)
	}
	date = date.UTC()

	var event models.Event
	created := false
	err = db.Where("church_id = ? AND title = ? AND date = ?", index.church.ID, eventData.Title, date).First(&event).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		event = models.Event{ChurchID: index.church.ID, Title: eventData.Title, Type: eventData.Type, Date: date}
		if err := db.Create(&event).Error; err != nil {
			return false, fmt.Errorf("failed to create event: %w", err)
		}
		created = true
	case err != nil:
		return false, fmt.Errorf("failed to query event: %w", err)
	}

	for _, name := range eventData.Departments {
		department, ok := index.departments[name]
		if !ok {
			return created, fmt.Errorf("department %q not found in church %s", name, index.church.Slug)
		}
		link := models.EventDepartment{EventID: event.ID, DepartmentID: department.ID}
		if err := db.Where("event_id = ? AND department_id = ?", event.ID, department.ID).FirstOrCreate(&link).Error; err != nil {
			return created, fmt.Errorf("failed to link department %s: %w", name, err)
		}
	}
	return created, nil
}

func createUser(db *gorm.DB, userData UserData) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(userData.Email))

	var user models.User
	err := db.Where("LOWER(email) = ?", email).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	user = models.User{Email: email, Name: userData.Name}
	if err := db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

func createRole(db *gorm.DB, userID uuid.UUID, roleData RoleData, churches map[string]*churchIndex) (bool, error) {
	index, ok := churches[roleData.Church]
	if !ok {
		return false, fmt.Errorf("church %q not found", roleData.Church)
	}

	role := models.Role(roleData.Role)
	if !role.IsValid() {
		return false, fmt.Errorf("unknown role %q", roleData.Role)
	}

	assignment := models.UserChurchRole{UserID: userID, ChurchID: index.church.ID, Role: role}
	if roleData.Ministry != "" {
		ministry, ok := index.ministries[roleData.Ministry]
		if !ok {
			return false, fmt.Errorf("ministry %q not found", roleData.Ministry)
		}
		assignment.MinistryID = &ministry.ID
	}
	for _, name := range roleData.Departments {
		department, ok := index.departments[name]
		if !ok {
			return false, fmt.Errorf("department %q not found", name)
		}
		assignment.Departments = append(assignment.Departments, models.UserDepartment{DepartmentID: department.ID})
	}

	var existing models.UserChurchRole
	err := db.Where("user_id = ? AND church_id = ? AND role = ?", userID, index.church.ID, role).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query role: %w", err)
	}

	if err := db.Create(&assignment).Error; err != nil {
		return false, fmt.Errorf("failed to create role: %w", err)
	}
	return true, nil
}
