package main

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"realty-crm-backend/internal/config"
	"realty-crm-backend/internal/database"
	"realty-crm-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type ProjectData struct {
	Name        string `yaml:"name"`
	Code        string `yaml:"code"`
	City        string `yaml:"city"`
	Address     string `yaml:"address"`
	Description string `yaml:"description"`
	IsActive    *bool  `yaml:"is_active,omitempty"`
	// Template names a stage template set from the stage templates file.
	// Empty means "default".
	Template string `yaml:"template,omitempty"`
}

type LeadData struct {
	Name        string `yaml:"name"`
	Phone       string `yaml:"phone"`
	Email       string `yaml:"email,omitempty"`
	Source      string `yaml:"source,omitempty"`
	Status      string `yaml:"status,omitempty"`
	ProjectCode string `yaml:"project_code,omitempty"`
	Notes       string `yaml:"notes,omitempty"`
}

type NoticeData struct {
	Title     string `yaml:"title"`
	Body      string `yaml:"body"`
	Category  string `yaml:"category,omitempty"`
	Published bool   `yaml:"published,omitempty"`
}

type EventData struct {
	Title    string `yaml:"title"`
	Venue    string `yaml:"venue,omitempty"`
	StartsAt string `yaml:"starts_at"`
	EndsAt   string `yaml:"ends_at"`
	Capacity int    `yaml:"capacity,omitempty"`
}

// File structures
type ProjectsFile struct {
	Projects []ProjectData `yaml:"projects"`
}

type LeadsFile struct {
	Leads []LeadData `yaml:"leads"`
}

type NoticesFile struct {
	Notices []NoticeData `yaml:"notices"`
}

type EventsFile struct {
	Events []EventData `yaml:"events"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	templates, err := config.LoadStageTemplates(cfg.StageTemplatesFile)
	if err != nil {
		log.Fatalf("Failed to load stage templates: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, templates, "scripts/data"); err != nil {
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

func loadDataFromYAMLFiles(db *gorm.DB, templates config.StageTemplates, dataDir string) error {
	projects, err := loadProjects(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}

	leads, err := loadLeads(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load leads: %w", err)
	}

	notices, err := loadNotices(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load notices: %w", err)
	}

	events, err := loadEvents(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load events: %w", err)
	}

	// Create projects first; leads reference them by code
	projectMap := make(map[string]*models.Project)
	projectCreated := 0
	for _, projectData := range projects {
		project, created, err := createProject(db, projectData, templates)
		if err != nil {
			return fmt.Errorf("failed to create project %s: %w", projectData.Code, err)
		}
		projectMap[projectData.Code] = project
		if created {
			projectCreated++
		}
	}
	log.Printf("📋 Projects: %d created, %d total", projectCreated, len(projects))

	leadCreated := 0
	for _, leadData := range leads {
		_, created, err := createLead(db, leadData, projectMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create lead %s: %v", leadData.Name, err)
			continue // Continue with other leads
		}
		if created {
			leadCreated++
		}
	}
	log.Printf("📋 Leads: %d created, %d total", leadCreated, len(leads))

	noticeCreated := 0
	for _, noticeData := range notices {
		_, created, err := createNotice(db, noticeData)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create notice %s: %v", noticeData.Title, err)
			continue
		}
		if created {
			noticeCreated++
		}
	}
	log.Printf("📋 Notices: %d created, %d total", noticeCreated, len(notices))

	eventCreated := 0
	for _, eventData := range events {
		_, created, err := createEvent(db, eventData)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create event %s: %v", eventData.Title, err)
			continue
		}
		if created {
			eventCreated++
		}
	}
	log.Printf("📋 Events: %d created, %d total", eventCreated, len(events))

	return nil
}

func loadProjects(dataDir string) ([]ProjectData, error) {
	var allProjects []ProjectData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "projects") {
			var file ProjectsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allProjects = append(allProjects, file.Projects...)
		}
		return nil
	})

	return allProjects, err
}

func loadLeads(dataDir string) ([]LeadData, error) {
	var allLeads []LeadData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "leads") {
			var file LeadsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allLeads = append(allLeads, file.Leads...)
		}
		return nil
	})

	return allLeads, err
}

func loadNotices(dataDir string) ([]NoticeData, error) {
	var allNotices []NoticeData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "notices") {
			var file NoticesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allNotices = append(allNotices, file.Notices...)
		}
		return nil
	})

	return allNotices, err
}

func loadEvents(dataDir string) ([]EventData, error) {
	var allEvents []EventData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "events") {
			var file EventsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allEvents = append(allEvents, file.Events...)
		}
		return nil
	})

	return allEvents, err
}

func createProject(db *gorm.DB, projectData ProjectData, templates config.StageTemplates) (*models.Project, bool, error) {
	var project models.Project
	if err := db.Where("code = ?", projectData.Code).First(&project).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			isActive := true
			if projectData.IsActive != nil {
				isActive = *projectData.IsActive
			}

			templateName := projectData.Template
			if templateName == "" {
				templateName = "default"
			}
			template, ok := templates[templateName]
			if !ok {
				return nil, false, fmt.Errorf("unknown stage template %q", templateName)
			}

			project = models.Project{
				Name:        projectData.Name,
				Code:        projectData.Code,
				City:        projectData.City,
				Address:     projectData.Address,
				Description: projectData.Description,
				IsActive:    isActive,
			}

			if err := db.Create(&project).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create project: %w", err)
			}

			// Seed the registration stages from the template set
			for _, stageTemplate := range template {
				stage := models.Stage{
					ProjectID: project.ID,
					Name:      stageTemplate.Name,
					SortOrder: stageTemplate.SortOrder,
				}
				if err := db.Create(&stage).Error; err != nil {
					return nil, false, fmt.Errorf("failed to create stage %s: %w", stageTemplate.Name, err)
				}
			}
			return &project, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query project: %w", err)
		}
	}

	return &project, false, nil // created = false (existing)
}

func createLead(db *gorm.DB, leadData LeadData, projectMap map[string]*models.Project) (*models.Lead, bool, error) {
	var lead models.Lead
	if err := db.Where("phone = ?", leadData.Phone).First(&lead).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			status := models.LeadStatusNew
			if leadData.Status != "" {
				status = models.LeadStatus(leadData.Status)
			}
			if !status.IsValid() {
				return nil, false, fmt.Errorf("invalid lead status %q", leadData.Status)
			}

			lead = models.Lead{
				Name:   leadData.Name,
				Phone:  leadData.Phone,
				Email:  leadData.Email,
				Source: leadData.Source,
				Status: status,
				Notes:  leadData.Notes,
			}

			if leadData.ProjectCode != "" {
				if project := projectMap[leadData.ProjectCode]; project != nil {
					lead.ProjectID = &project.ID
				}
			}

			if err := db.Create(&lead).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create lead: %w", err)
			}
			return &lead, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query lead: %w", err)
		}
	}

	return &lead, false, nil // created = false (existing)
}

func createNotice(db *gorm.DB, noticeData NoticeData) (*models.Notice, bool, error) {
	var notice models.Notice
	if err := db.Where("title = ?", noticeData.Title).First(&notice).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			category := models.NoticeCategoryGeneral
			if noticeData.Category != "" {
				category = models.NoticeCategory(noticeData.Category)
			}

			notice = models.Notice{
				Title:     noticeData.Title,
				Body:      noticeData.Body,
				Category:  category,
				Published: noticeData.Published,
			}
			if noticeData.Published {
				now := time.Now()
				notice.PublishAt = &now
			}

			if err := db.Create(&notice).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create notice: %w", err)
			}
			return &notice, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query notice: %w", err)
		}
	}

	return &notice, false, nil // created = false (existing)
}

func createEvent(db *gorm.DB, eventData EventData) (*models.Event, bool, error) {
	var event models.Event
	if err := db.Where("title = ?", eventData.Title).First(&event).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			startsAt, err := time.Parse(time.RFC3339, eventData.StartsAt)
			if err != nil {
				return nil, false, fmt.Errorf("invalid starts_at: %w", err)
			}
			endsAt, err := time.Parse(time.RFC3339, eventData.EndsAt)
			if err != nil {
				return nil, false, fmt.Errorf("invalid ends_at: %w", err)
			}
			if !endsAt.After(startsAt) {
				return nil, false, fmt.Errorf("ends_at must be after starts_at")
			}

			event = models.Event{
				Title:    eventData.Title,
				Venue:    eventData.Venue,
				StartsAt: startsAt,
				EndsAt:   endsAt,
				Capacity: eventData.Capacity,
			}

			if err := db.Create(&event).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create event: %w", err)
			}
			return &event, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query event: %w", err)
		}
	}

	return &event, false, nil // created = false (existing)
}
