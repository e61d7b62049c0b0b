package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"lab-portal-backend/internal/config"
	"lab-portal-backend/internal/database"
	"lab-portal-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the YAML seed files
type UserData struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
	Role      string `yaml:"role"`
}

type TeamData struct {
	Name        string   `yaml:"name"`
	Acro        string   `yaml:"acro,omitempty"`
	Description string   `yaml:"description,omitempty"`
	LeaderEmail string   `yaml:"leader_email"`
	Members     []string `yaml:"members,omitempty"` // member emails
}

type ProjectData struct {
	Name        string `yaml:"name"`
	TeamName    string `yaml:"team_name"`
	Description string `yaml:"description,omitempty"`
	State       string `yaml:"state,omitempty"`
}

type usersFile struct {
	Users []UserData `yaml:"users"`
}

type teamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type projectsFile struct {
	Projects []ProjectData `yaml:"projects"`
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

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
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

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	teams, err := loadTeams(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	projects, err := loadProjects(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}

	// Create users first
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
	log.Printf("Users: %d created, %d total", userCreated, len(users))

	// Create teams with rosters
	teamMap := make(map[string]*models.Team)
	teamCreated := 0
	for _, teamData := range teams {
		team, created, err := createTeam(db, teamData, userMap)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		teamMap[teamData.Name] = team
		if created {
			teamCreated++
		}
	}
	log.Printf("Teams: %d created, %d total", teamCreated, len(teams))

	// Create projects
	projectCreated := 0
	for _, projectData := range projects {
		created, err := createProject(db, projectData, teamMap)
		if err != nil {
			return fmt.Errorf("failed to create project %s: %w", projectData.Name, err)
		}
		if created {
			projectCreated++
		}
	}
	log.Printf("Projects: %d created, %d total", projectCreated, len(projects))

	return nil
}

func loadUsers(dataDir string) ([]UserData, error) {
	var out []UserData
	err := walkYAML(dataDir, "users", func(data []byte) error {
		var file usersFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		out = append(out, file.Users...)
		return nil
	})
	return out, err
}

func loadTeams(dataDir string) ([]TeamData, error) {
	var out []TeamData
	err := walkYAML(dataDir, "teams", func(data []byte) error {
		var file teamsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		out = append(out, file.Teams...)
		return nil
	})
	return out, err
}

func loadProjects(dataDir string) ([]ProjectData, error) {
	var out []ProjectData
	err := walkYAML(dataDir, "projects", func(data []byte) error {
		var file projectsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		out = append(out, file.Projects...)
		return nil
	})
	return out, err
}

// walkYAML reads every YAML file under dataDir whose name contains the given
// prefix and passes its contents to fn. Missing directories are not an error
// so partial seed sets work.
func walkYAML(dataDir, prefix string, fn func([]byte) error) error {
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		return nil
	}
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if !strings.HasPrefix(name, prefix) {
			return nil
		}
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return fn(data)
	})
}

func createUser(db *gorm.DB, data UserData) (*models.User, bool, error) {
	var existing models.User
	err := db.Where("email = ?", data.Email).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	role := models.Role(data.Role)
	if !role.Valid() {
		role = models.RoleTeamMember
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, err
	}

	user := models.User{
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        data.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, false, err
	}
	return &user, true, nil
}

func createTeam(db *gorm.DB, data TeamData, userMap map[string]*models.User) (*models.Team, bool, error) {
	var existing models.Team
	err := db.Where("name = ?", data.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	leader, ok := userMap[data.LeaderEmail]
	if !ok {
		return nil, false, fmt.Errorf("leader %s not found among seeded users", data.LeaderEmail)
	}

	team := models.Team{
		Name:        data.Name,
		Acro:        data.Acro,
		Description: data.Description,
		LeaderID:    leader.ID,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&team).Error; err != nil {
			return err
		}
		// Seeded TeamMember leaders get promoted, same as the API does
		if err := tx.Model(&models.User{}).
			Where("id = ? AND role = ?", leader.ID, models.RoleTeamMember).
			Update("role", models.RoleTeamLeader).Error; err != nil {
			return err
		}
		for _, email := range data.Members {
			member, ok := userMap[email]
			if !ok {
				return fmt.Errorf("member %s not found among seeded users", email)
			}
			membership := models.TeamMembership{TeamID: team.ID, UserID: member.ID}
			if err := tx.Where("team_id = ? AND user_id = ?", team.ID, member.ID).
				FirstOrCreate(&membership).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &team, true, nil
}

func createProject(db *gorm.DB, data ProjectData, teamMap map[string]*models.Team) (bool, error) {
	team, ok := teamMap[data.TeamName]
	if !ok {
		return false, fmt.Errorf("team %s not found among seeded teams", data.TeamName)
	}

	var existing models.Project
	err := db.Where("name = ? AND team_id = ?", data.Name, team.ID).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	state := models.ProjectState(data.State)
	if !state.Valid() {
		state = models.ProjectStatePlanning
	}

	project := models.Project{
		Name:        data.Name,
		Description: data.Description,
		State:       state,
		TeamID:      team.ID,
	}
	if err := db.Create(&project).Error; err != nil {
		return false, err
	}
	return true, nil
}
