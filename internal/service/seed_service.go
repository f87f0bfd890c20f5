package service

import (
	"fmt"
	"log"
	"time"

	"github.com/Zumgugger/vielseitig/internal/models"
	"github.com/Zumgugger/vielseitig/internal/repository"
	"github.com/Zumgugger/vielseitig/internal/security"
)

const (
	defaultListName = "Standardliste"
	defaultListSlug = "standard"
	defaultListDesc = "Standard-Adjektivliste für Berufswahl und Selbstreflexion"

	defaultAdminUsername = "admin@admin.com"
	defaultAdminPassword = "changeme"

	// Seeded premium lists get long-lived share links
	premiumShareValidity = 10 * 365 * 24 * time.Hour
)

// SeedService installs the initial data set: the standard list, the premium
// lists and a default admin account. Seeding is idempotent and safe to run
// on every startup.
type SeedService struct {
	listRepo  *repository.ListRepository
	adminRepo *repository.AdminRepository
}

// NewSeedService creates a new seed service
func NewSeedService(listRepo *repository.ListRepository, adminRepo *repository.AdminRepository) *SeedService {
	return &SeedService{listRepo: listRepo, adminRepo: adminRepo}
}

// Run executes all seed steps
func (s *SeedService) Run() error {
	if err := s.seedDefaultList(); err != nil {
		return fmt.Errorf("failed to seed default list: %w", err)
	}
	if err := s.seedPremiumLists(); err != nil {
		return fmt.Errorf("failed to seed premium lists: %w", err)
	}
	if err := s.seedDefaultAdmin(); err != nil {
		return fmt.Errorf("failed to seed default admin: %w", err)
	}
	return nil
}

func (s *SeedService) seedDefaultList() error {
	existing, err := s.listRepo.GetDefaultList()
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	slug := defaultListSlug
	list, err := s.listRepo.CreateList(&models.List{
		Name:        defaultListName,
		Slug:        &slug,
		Description: defaultListDesc,
		IsDefault:   true,
	})
	if err != nil {
		return err
	}

	if err := s.insertAdjectives(list.ID, defaultAdjectives); err != nil {
		return err
	}
	log.Printf("Seeded default list with %d adjectives", len(defaultAdjectives))
	return nil
}

func (s *SeedService) seedPremiumLists() error {
	for _, seed := range premiumLists {
		existing, err := s.listRepo.GetListBySlug(seed.Slug)
		if err != nil {
			return err
		}
		if existing != nil {
			// Backfill the share link on lists seeded before sharing existed
			if existing.ShareToken == nil {
				token, err := security.GenerateToken(32)
				if err != nil {
					return err
				}
				expiresAt := time.Now().UTC().Add(premiumShareValidity)
				existing.ShareToken = &token
				existing.ShareExpiresAt = &expiresAt
				existing.ShareEnabled = true
				if err := s.listRepo.UpdateListSharing(existing); err != nil {
					return err
				}
				log.Printf("Backfilled share token for premium list %q", seed.Name)
			}
			continue
		}

		token, err := security.GenerateToken(32)
		if err != nil {
			return err
		}
		expiresAt := time.Now().UTC().Add(premiumShareValidity)
		slug := seed.Slug

		list, err := s.listRepo.CreateList(&models.List{
			Name:           seed.Name,
			Slug:           &slug,
			Description:    seed.Description,
			IsPremium:      true,
			ShareToken:     &token,
			ShareExpiresAt: &expiresAt,
			ShareEnabled:   true,
		})
		if err != nil {
			return err
		}

		if err := s.insertAdjectives(list.ID, seed.Adjectives); err != nil {
			return err
		}
		log.Printf("Seeded premium list %q with %d adjectives", seed.Name, len(seed.Adjectives))
	}
	return nil
}

func (s *SeedService) seedDefaultAdmin() error {
	count, err := s.adminRepo.CountAdmins()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	passwordHash, err := security.HashPassword(defaultAdminPassword)
	if err != nil {
		return err
	}
	if _, err := s.adminRepo.CreateAdmin(defaultAdminUsername, passwordHash); err != nil {
		return err
	}
	log.Printf("Seeded default admin account %q; change the password after first login", defaultAdminUsername)
	return nil
}

func (s *SeedService) insertAdjectives(listID int64, adjectives []seedAdjective) error {
	for i, a := range adjectives {
		_, err := s.listRepo.CreateAdjective(&models.Adjective{
			ListID:      listID,
			Word:        a.Word,
			Explanation: a.Explanation,
			Example:     a.Example,
			OrderIndex:  int64(i + 1),
			Active:      true,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
