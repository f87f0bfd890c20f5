package service

import (
	"strings"
	"time"

	"github.com/Zumgugger/vielseitig/internal/models"
	"github.com/Zumgugger/vielseitig/internal/repository"
	"github.com/Zumgugger/vielseitig/internal/security"
)

// Share links on newly created lists expire after one year
const shareTokenValidity = 365 * 24 * time.Hour

// ListService handles adjective list management for teachers and admins
type ListService struct {
	listRepo *repository.ListRepository
	userRepo *repository.UserRepository
}

// NewListService creates a new list service
func NewListService(listRepo *repository.ListRepository, userRepo *repository.UserRepository) *ListService {
	return &ListService{listRepo: listRepo, userRepo: userRepo}
}

// CreateList creates a custom list for a teacher. Every new list gets a
// share token valid for one year, with sharing enabled from the start.
func (s *ListService) CreateList(user *models.User, name, description string, shareWithSchool bool) (*models.List, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyListName
	}

	token, err := security.GenerateToken(32)
	if err != nil {
		return nil, err
	}
	expiresAt := time.Now().UTC().Add(shareTokenValidity)

	list := &models.List{
		Name:            name,
		Description:     description,
		OwnerUserID:     &user.ID,
		ShareToken:      &token,
		ShareExpiresAt:  &expiresAt,
		ShareEnabled:    true,
		ShareWithSchool: shareWithSchool,
	}
	return s.listRepo.CreateList(list)
}

// GetListForUser loads a list with its adjectives if the user may read it:
// the default list and premium lists are readable by every teacher, custom
// lists by their owner or by colleagues the list is shared with
func (s *ListService) GetListForUser(user *models.User, listID int64) (*models.List, []models.Adjective, error) {
	list, err := s.listRepo.GetListByID(listID)
	if err != nil {
		return nil, nil, err
	}
	if list == nil {
		return nil, nil, ErrListNotFound
	}

	if err := s.checkReadAccess(user, list); err != nil {
		return nil, nil, err
	}

	adjectives, err := s.listRepo.GetAdjectives(listID, false)
	if err != nil {
		return nil, nil, err
	}
	return list, adjectives, nil
}

// ListUpdate carries the optional fields of a list update
type ListUpdate struct {
	Name            *string
	Description     *string
	ShareWithSchool *bool
}

// UpdateList applies a partial update. Only the owner can edit.
func (s *ListService) UpdateList(user *models.User, listID int64, update ListUpdate) (*models.List, error) {
	list, err := s.getOwnedList(user, listID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil && strings.TrimSpace(*update.Name) != "" {
		list.Name = strings.TrimSpace(*update.Name)
	}
	if update.Description != nil {
		list.Description = *update.Description
	}
	if update.ShareWithSchool != nil {
		list.ShareWithSchool = *update.ShareWithSchool
	}

	if err := s.listRepo.UpdateList(list); err != nil {
		return nil, err
	}
	return s.listRepo.GetListByID(listID)
}

// DeleteList removes a list. Only the owner can delete.
func (s *ListService) DeleteList(user *models.User, listID int64) error {
	if _, err := s.getOwnedList(user, listID); err != nil {
		return err
	}
	return s.listRepo.DeleteList(listID)
}

// GetAdjectivesForUser returns all adjectives of a list the user may read
func (s *ListService) GetAdjectivesForUser(user *models.User, listID int64) ([]models.Adjective, error) {
	list, err := s.listRepo.GetListByID(listID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, ErrListNotFound
	}
	if err := s.checkReadAccess(user, list); err != nil {
		return nil, err
	}
	return s.listRepo.GetAdjectives(listID, false)
}

// AddAdjective appends a word to an owned list. Without an explicit order
// index the word goes to the end of the list.
func (s *ListService) AddAdjective(user *models.User, listID int64, word, explanation, example string, orderIndex *int64) (*models.Adjective, error) {
	if _, err := s.getOwnedList(user, listID); err != nil {
		return nil, err
	}

	word = strings.TrimSpace(word)
	if word == "" {
		return nil, ErrEmptyWord
	}

	var index int64
	if orderIndex != nil {
		index = *orderIndex
	} else {
		count, err := s.listRepo.CountAdjectives(listID)
		if err != nil {
			return nil, err
		}
		index = int64(count) + 1
	}

	return s.listRepo.CreateAdjective(&models.Adjective{
		ListID:      listID,
		Word:        word,
		Explanation: explanation,
		Example:     example,
		OrderIndex:  index,
		Active:      true,
	})
}

// AdjectiveUpdate carries the optional fields of an adjective update
type AdjectiveUpdate struct {
	Word        *string
	Explanation *string
	Example     *string
	OrderIndex  *int64
}

// UpdateAdjective applies a partial update to a word in an owned list
func (s *ListService) UpdateAdjective(user *models.User, listID, adjectiveID int64, update AdjectiveUpdate) (*models.Adjective, error) {
	if _, err := s.getOwnedList(user, listID); err != nil {
		return nil, err
	}

	adjective, err := s.getListAdjective(listID, adjectiveID)
	if err != nil {
		return nil, err
	}

	if update.Word != nil {
		adjective.Word = *update.Word
	}
	if update.Explanation != nil {
		adjective.Explanation = *update.Explanation
	}
	if update.Example != nil {
		adjective.Example = *update.Example
	}
	if update.OrderIndex != nil {
		adjective.OrderIndex = *update.OrderIndex
	}

	if err := s.listRepo.UpdateAdjective(adjective); err != nil {
		return nil, err
	}
	return s.listRepo.GetAdjectiveByID(adjectiveID)
}

// DeleteAdjective removes a word from an owned list
func (s *ListService) DeleteAdjective(user *models.User, listID, adjectiveID int64) error {
	if _, err := s.getOwnedList(user, listID); err != nil {
		return err
	}
	adjective, err := s.getListAdjective(listID, adjectiveID)
	if err != nil {
		return err
	}
	return s.listRepo.DeleteAdjective(adjective.ID)
}

// GetUserLists builds the teacher's list overview: the standard list, the
// premium lists, the teacher's own lists, and lists colleagues at the same
// school have shared
func (s *ListService) GetUserLists(user *models.User) ([]models.ListSummary, error) {
	var summaries []models.ListSummary

	standard, err := s.listRepo.GetDefaultList()
	if err != nil {
		return nil, err
	}
	if standard != nil {
		summary, err := s.summarize(*standard, "", false)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	premium, err := s.listRepo.GetPremiumLists()
	if err != nil {
		return nil, err
	}
	for _, list := range premium {
		summary, err := s.summarize(list, "", false)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	own, err := s.listRepo.GetListsByOwner(user.ID)
	if err != nil {
		return nil, err
	}
	for _, list := range own {
		summary, err := s.summarize(list, user.Email, true)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	shared, err := s.listRepo.GetSchoolSharedLists(user.SchoolID, user.ID)
	if err != nil {
		return nil, err
	}
	for _, list := range shared {
		ownerEmail, err := s.listRepo.GetOwnerEmail(list.ID)
		if err != nil {
			return nil, err
		}
		summary, err := s.summarize(list, ownerEmail, true)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// GetStandardList returns the default list with all its adjectives,
// including inactive ones, for admin editing
func (s *ListService) GetStandardList() (*models.List, []models.Adjective, error) {
	list, err := s.listRepo.GetDefaultList()
	if err != nil {
		return nil, nil, err
	}
	if list == nil {
		return nil, nil, ErrDefaultListMissing
	}
	adjectives, err := s.listRepo.GetAdjectives(list.ID, false)
	if err != nil {
		return nil, nil, err
	}
	return list, adjectives, nil
}

// UpdateStandardAdjective edits a word of the default list
func (s *ListService) UpdateStandardAdjective(adjectiveID int64, word, explanation, example string, orderIndex int64) (*models.Adjective, error) {
	adjective, err := s.getStandardAdjective(adjectiveID)
	if err != nil {
		return nil, err
	}

	adjective.Word = word
	adjective.Explanation = explanation
	adjective.Example = example
	adjective.OrderIndex = orderIndex

	if err := s.listRepo.UpdateAdjective(adjective); err != nil {
		return nil, err
	}
	return s.listRepo.GetAdjectiveByID(adjectiveID)
}

// DeleteStandardAdjective removes a word from the default list
func (s *ListService) DeleteStandardAdjective(adjectiveID int64) error {
	adjective, err := s.getStandardAdjective(adjectiveID)
	if err != nil {
		return err
	}
	return s.listRepo.DeleteAdjective(adjective.ID)
}

// GetShareToken returns the share token of an owned list. Sharing must be
// enabled for a link to exist.
func (s *ListService) GetShareToken(user *models.User, listID int64) (string, error) {
	list, err := s.getOwnedList(user, listID)
	if err != nil {
		return "", err
	}
	if !list.ShareEnabled || list.ShareToken == nil {
		return "", ErrSharingDisabled
	}
	return *list.ShareToken, nil
}

// getOwnedList loads a list and verifies ownership
func (s *ListService) getOwnedList(user *models.User, listID int64) (*models.List, error) {
	list, err := s.listRepo.GetListByID(listID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, ErrListNotFound
	}
	if !list.IsOwnedBy(user.ID) {
		return nil, ErrNotListOwner
	}
	return list, nil
}

// getListAdjective loads an adjective and verifies it belongs to the list
func (s *ListService) getListAdjective(listID, adjectiveID int64) (*models.Adjective, error) {
	adjective, err := s.listRepo.GetAdjectiveByID(adjectiveID)
	if err != nil {
		return nil, err
	}
	if adjective == nil || adjective.ListID != listID {
		return nil, ErrAdjectiveNotFound
	}
	return adjective, nil
}

// getStandardAdjective loads an adjective and verifies it belongs to the
// default list
func (s *ListService) getStandardAdjective(adjectiveID int64) (*models.Adjective, error) {
	adjective, err := s.listRepo.GetAdjectiveByID(adjectiveID)
	if err != nil {
		return nil, err
	}
	if adjective == nil {
		return nil, ErrAdjectiveNotFound
	}

	list, err := s.listRepo.GetListByID(adjective.ListID)
	if err != nil {
		return nil, err
	}
	if list == nil || !list.IsDefault {
		return nil, ErrListReadOnly
	}
	return adjective, nil
}

// checkReadAccess decides whether a teacher may view a list
func (s *ListService) checkReadAccess(user *models.User, list *models.List) error {
	if list.IsDefault || list.IsPremium || list.IsOwnedBy(user.ID) {
		return nil
	}
	if list.ShareWithSchool && list.OwnerUserID != nil {
		owner, err := s.userRepo.GetUserByID(*list.OwnerUserID)
		if err != nil {
			return err
		}
		if owner != nil && owner.SchoolID == user.SchoolID {
			return nil
		}
	}
	return ErrNotListOwner
}

func (s *ListService) summarize(list models.List, ownerEmail string, includeShare bool) (models.ListSummary, error) {
	count, err := s.listRepo.CountAdjectives(list.ID)
	if err != nil {
		return models.ListSummary{}, err
	}
	summary := models.ListSummary{List: list, AdjectiveCount: count, OwnerEmail: ownerEmail}
	if !includeShare {
		// Seeded lists never expose their share tokens in the overview
		summary.ShareToken = nil
		summary.ShareWithSchool = false
	}
	return summary, nil
}
