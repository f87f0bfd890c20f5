package service

import (
	"errors"
	"testing"
	"time"

	"github.com/Zumgugger/vielseitig/internal/models"
)

func TestStartSessionDefaultList(t *testing.T) {
	env := newTestEnv(t)
	defaultList := env.createDefaultList(t)

	// No list reference means the default list
	session, err := env.analytics.StartSession(nil, nil)
	if err != nil {
		t.Fatalf("StartSession(nil) error = %v", err)
	}
	if session.ID == "" {
		t.Error("StartSession() returned empty session id")
	}
	if !session.IsStandardList {
		t.Error("IsStandardList = false, want true")
	}
	if session.ListID == nil || *session.ListID != defaultList.ID {
		t.Errorf("ListID = %v, want %d", session.ListID, defaultList.ID)
	}

	// An explicit reference to the default list works the same
	themeID := int64(3)
	session, err = env.analytics.StartSession(&defaultList.ID, &themeID)
	if err != nil {
		t.Fatalf("StartSession(default) error = %v", err)
	}
	if !session.IsStandardList {
		t.Error("IsStandardList = false, want true")
	}
	if session.ThemeID == nil || *session.ThemeID != themeID {
		t.Errorf("ThemeID = %v, want %d", session.ThemeID, themeID)
	}

	stored, err := env.analyticsRepo.GetSession(session.ID)
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if stored == nil {
		t.Fatal("GetSession() = nil, session was not persisted")
	}
}

func TestStartSessionMissingList(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.analytics.StartSession(nil, nil); !errors.Is(err, ErrDefaultListMissing) {
		t.Errorf("StartSession(nil) error = %v, want ErrDefaultListMissing", err)
	}

	unknown := int64(4711)
	if _, err := env.analytics.StartSession(&unknown, nil); !errors.Is(err, ErrListNotFound) {
		t.Errorf("StartSession(unknown) error = %v, want ErrListNotFound", err)
	}
}

func TestStartSessionVisibility(t *testing.T) {
	past := time.Now().UTC().Add(-time.Hour)

	tests := []struct {
		name    string
		setup   func(t *testing.T, env *testEnv) int64
		wantErr error
	}{
		{
			name: "shared list of active owner",
			setup: func(t *testing.T, env *testEnv) int64 {
				owner := env.createActiveUser(t, "anna@example.com", "Schule Aarau")
				return env.createSharedList(t, owner.ID, "Klasse 5a").ID
			},
		},
		{
			name: "sharing disabled",
			setup: func(t *testing.T, env *testEnv) int64 {
				owner := env.createActiveUser(t, "anna@example.com", "Schule Aarau")
				list := env.createSharedList(t, owner.ID, "Klasse 5a")
				list.ShareEnabled = false
				// An expired link on top must not change the reported reason
				list.ShareExpiresAt = &past
				if err := env.listRepo.UpdateList(list); err != nil {
					t.Fatalf("UpdateList() error = %v", err)
				}
				return list.ID
			},
			wantErr: ErrListNotShared,
		},
		{
			name: "share link expired",
			setup: func(t *testing.T, env *testEnv) int64 {
				owner := env.createActiveUser(t, "anna@example.com", "Schule Aarau")
				list := env.createSharedList(t, owner.ID, "Klasse 5a")
				list.ShareExpiresAt = &past
				if err := env.listRepo.UpdateList(list); err != nil {
					t.Fatalf("UpdateList() error = %v", err)
				}
				return list.ID
			},
			wantErr: ErrShareExpired,
		},
		{
			name: "owner not active",
			setup: func(t *testing.T, env *testEnv) int64 {
				school := env.createSchool(t, "Schule Aarau", models.StatusActive)
				owner := env.createUser(t, "anna@example.com", school.ID, models.StatusPassive)
				return env.createSharedList(t, owner.ID, "Klasse 5a").ID
			},
			wantErr: ErrOwnerNotActive,
		},
		{
			name: "school not active",
			setup: func(t *testing.T, env *testEnv) int64 {
				school := env.createSchool(t, "Schule Aarau", models.StatusPassive)
				owner := env.createUser(t, "anna@example.com", school.ID, models.StatusActive)
				return env.createSharedList(t, owner.ID, "Klasse 5a").ID
			},
			wantErr: ErrSchoolNotActive,
		},
		{
			name: "seeded premium list without owner",
			setup: func(t *testing.T, env *testEnv) int64 {
				token := "premium-token"
				slug := "sport"
				list, err := env.listRepo.CreateList(&models.List{
					Name:         "Sport",
					Slug:         &slug,
					IsPremium:    true,
					ShareToken:   &token,
					ShareEnabled: true,
				})
				if err != nil {
					t.Fatalf("CreateList() error = %v", err)
				}
				return list.ID
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			listID := tt.setup(t, env)

			_, err := env.analytics.StartSession(&listID, nil)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("StartSession() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFinishSessionIdempotent(t *testing.T) {
	env := newTestEnv(t)
	env.createDefaultList(t)

	session, err := env.analytics.StartSession(nil, nil)
	if err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}

	first, err := env.analytics.FinishSession(session.ID)
	if err != nil {
		t.Fatalf("FinishSession() error = %v", err)
	}
	if first.FinishedAt == nil {
		t.Fatal("FinishedAt = nil after finish")
	}

	time.Sleep(20 * time.Millisecond)

	second, err := env.analytics.FinishSession(session.ID)
	if err != nil {
		t.Fatalf("FinishSession() second call error = %v", err)
	}
	if !second.FinishedAt.Equal(*first.FinishedAt) {
		t.Errorf("second finish changed timestamp: %v != %v", second.FinishedAt, first.FinishedAt)
	}
}

func TestFinishSessionUnknown(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.analytics.FinishSession("no-such-session"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("FinishSession() error = %v, want ErrSessionNotFound", err)
	}
}

func TestMarkPDFExportOverwrites(t *testing.T) {
	env := newTestEnv(t)
	env.createDefaultList(t)

	session, err := env.analytics.StartSession(nil, nil)
	if err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}

	first, err := env.analytics.MarkPDFExport(session.ID)
	if err != nil {
		t.Fatalf("MarkPDFExport() error = %v", err)
	}
	if first.PDFExportedAt == nil {
		t.Fatal("PDFExportedAt = nil after export")
	}

	time.Sleep(20 * time.Millisecond)

	second, err := env.analytics.MarkPDFExport(session.ID)
	if err != nil {
		t.Fatalf("MarkPDFExport() second call error = %v", err)
	}
	if !second.PDFExportedAt.After(*first.PDFExportedAt) {
		t.Errorf("second export did not overwrite timestamp: %v <= %v", second.PDFExportedAt, first.PDFExportedAt)
	}

	if _, err := env.analytics.MarkPDFExport("no-such-session"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("MarkPDFExport(unknown) error = %v, want ErrSessionNotFound", err)
	}
}

func TestRecordAssignment(t *testing.T) {
	env := newTestEnv(t)
	defaultList := env.createDefaultList(t)
	adjective := env.createAdjective(t, defaultList.ID, "zuverlässig", 1, true)

	session, err := env.analytics.StartSession(nil, nil)
	if err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}

	assignment, err := env.analytics.RecordAssignment(session.ID, adjective.ID, "oft")
	if err != nil {
		t.Fatalf("RecordAssignment() error = %v", err)
	}
	if assignment.Bucket != models.BucketOft {
		t.Errorf("Bucket = %q, want %q", assignment.Bucket, models.BucketOft)
	}

	// Bucket values are normalized before validation
	assignment, err = env.analytics.RecordAssignment(session.ID, adjective.ID, "  Selten ")
	if err != nil {
		t.Fatalf("RecordAssignment() with padded bucket error = %v", err)
	}
	if assignment.Bucket != models.BucketSelten {
		t.Errorf("Bucket = %q, want %q", assignment.Bucket, models.BucketSelten)
	}

	// A repeated choice replaces the earlier row instead of adding one
	assignments, err := env.analyticsRepo.GetSessionAssignments(session.ID)
	if err != nil {
		t.Fatalf("GetSessionAssignments() error = %v", err)
	}
	if len(assignments) != 1 {
		t.Fatalf("len(assignments) = %d, want 1", len(assignments))
	}
	if assignments[0].Bucket != models.BucketSelten {
		t.Errorf("stored bucket = %q, want %q", assignments[0].Bucket, models.BucketSelten)
	}
}

func TestRecordAssignmentRejections(t *testing.T) {
	env := newTestEnv(t)
	defaultList := env.createDefaultList(t)
	adjective := env.createAdjective(t, defaultList.ID, "mutig", 1, true)

	owner := env.createActiveUser(t, "anna@example.com", "Schule Aarau")
	otherList := env.createSharedList(t, owner.ID, "Klasse 5a")
	foreign := env.createAdjective(t, otherList.ID, "fremd", 1, true)

	session, err := env.analytics.StartSession(&defaultList.ID, nil)
	if err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}

	tests := []struct {
		name        string
		sessionID   string
		adjectiveID int64
		bucket      string
		wantErr     error
	}{
		{"invalid bucket", session.ID, adjective.ID, "immer", ErrInvalidBucket},
		{"empty bucket", session.ID, adjective.ID, "", ErrInvalidBucket},
		{"unknown session", "no-such-session", adjective.ID, "oft", ErrSessionNotFound},
		{"adjective of another list", session.ID, foreign.ID, "oft", ErrAdjectiveNotFound},
		{"unknown adjective", session.ID, 4711, "oft", ErrAdjectiveNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.analytics.RecordAssignment(tt.sessionID, tt.adjectiveID, tt.bucket)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("RecordAssignment() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolveShareToken(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createActiveUser(t, "anna@example.com", "Schule Aarau")
	list := env.createSharedList(t, owner.ID, "Klasse 5a")

	resolved, err := env.analytics.ResolveShareToken(*list.ShareToken)
	if err != nil {
		t.Fatalf("ResolveShareToken() error = %v", err)
	}
	if resolved.ID != list.ID {
		t.Errorf("resolved list id = %d, want %d", resolved.ID, list.ID)
	}

	if _, err := env.analytics.ResolveShareToken("no-such-token"); !errors.Is(err, ErrShareLinkNotFound) {
		t.Errorf("ResolveShareToken(unknown) error = %v, want ErrShareLinkNotFound", err)
	}

	// The link dies with the sharing flag even though the token still exists
	list.ShareEnabled = false
	if err := env.listRepo.UpdateList(list); err != nil {
		t.Fatalf("UpdateList() error = %v", err)
	}
	if _, err := env.analytics.ResolveShareToken(*list.ShareToken); !errors.Is(err, ErrListNotShared) {
		t.Errorf("ResolveShareToken(disabled) error = %v, want ErrListNotShared", err)
	}
}

func TestGetListAdjectives(t *testing.T) {
	env := newTestEnv(t)
	defaultList := env.createDefaultList(t)
	env.createAdjective(t, defaultList.ID, "kreativ", 2, true)
	env.createAdjective(t, defaultList.ID, "aufmerksam", 1, true)
	env.createAdjective(t, defaultList.ID, "veraltet", 3, false)

	list, adjectives, err := env.analytics.GetListAdjectives(nil)
	if err != nil {
		t.Fatalf("GetListAdjectives(nil) error = %v", err)
	}
	if list.ID != defaultList.ID {
		t.Errorf("list id = %d, want %d", list.ID, defaultList.ID)
	}
	if len(adjectives) != 2 {
		t.Fatalf("len(adjectives) = %d, want 2 (inactive filtered)", len(adjectives))
	}
	if adjectives[0].Word != "aufmerksam" || adjectives[1].Word != "kreativ" {
		t.Errorf("adjectives not in display order: %q, %q", adjectives[0].Word, adjectives[1].Word)
	}
}

func TestGetSummary(t *testing.T) {
	env := newTestEnv(t)
	defaultList := env.createDefaultList(t)
	mutig := env.createAdjective(t, defaultList.ID, "mutig", 1, true)
	fair := env.createAdjective(t, defaultList.ID, "fair", 2, true)

	themeID := int64(2)
	first, err := env.analytics.StartSession(nil, &themeID)
	if err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}
	second, err := env.analytics.StartSession(nil, nil)
	if err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}

	for _, adjectiveID := range []int64{mutig.ID, fair.ID} {
		if _, err := env.analytics.RecordAssignment(first.ID, adjectiveID, "oft"); err != nil {
			t.Fatalf("RecordAssignment() error = %v", err)
		}
	}
	if _, err := env.analytics.RecordAssignment(second.ID, mutig.ID, "selten"); err != nil {
		t.Fatalf("RecordAssignment() error = %v", err)
	}

	if _, err := env.analytics.FinishSession(first.ID); err != nil {
		t.Fatalf("FinishSession() error = %v", err)
	}
	if _, err := env.analytics.MarkPDFExport(first.ID); err != nil {
		t.Fatalf("MarkPDFExport() error = %v", err)
	}

	summary, err := env.analytics.GetSummary()
	if err != nil {
		t.Fatalf("GetSummary() error = %v", err)
	}
	if summary.TotalSessions != 2 {
		t.Errorf("TotalSessions = %d, want 2", summary.TotalSessions)
	}
	if summary.FinishedSessions != 1 {
		t.Errorf("FinishedSessions = %d, want 1", summary.FinishedSessions)
	}
	if summary.PDFExports != 1 {
		t.Errorf("PDFExports = %d, want 1", summary.PDFExports)
	}
	if summary.TotalAssignments != 3 {
		t.Errorf("TotalAssignments = %d, want 3", summary.TotalAssignments)
	}
	if len(summary.TopAdjectives) == 0 || summary.TopAdjectives[0].Word != "mutig" {
		t.Errorf("TopAdjectives = %v, want mutig first", summary.TopAdjectives)
	}
	if len(summary.Themes) != 1 || summary.Themes[0].ThemeID != themeID {
		t.Errorf("Themes = %v, want theme %d once", summary.Themes, themeID)
	}
}

func TestGetSessionsPagination(t *testing.T) {
	env := newTestEnv(t)
	env.createDefaultList(t)

	for i := 0; i < 3; i++ {
		if _, err := env.analytics.StartSession(nil, nil); err != nil {
			t.Fatalf("StartSession() error = %v", err)
		}
	}

	sessions, total, err := env.analytics.GetSessions(2, 0)
	if err != nil {
		t.Fatalf("GetSessions() error = %v", err)
	}
	if len(sessions) != 2 {
		t.Errorf("len(sessions) = %d, want 2", len(sessions))
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}

	rest, _, err := env.analytics.GetSessions(2, 2)
	if err != nil {
		t.Fatalf("GetSessions(offset) error = %v", err)
	}
	if len(rest) != 1 {
		t.Errorf("len(rest) = %d, want 1", len(rest))
	}
}

func TestGetSessionDetails(t *testing.T) {
	env := newTestEnv(t)
	defaultList := env.createDefaultList(t)
	adjective := env.createAdjective(t, defaultList.ID, "geduldig", 1, true)

	session, err := env.analytics.StartSession(nil, nil)
	if err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}
	if _, err := env.analytics.RecordAssignment(session.ID, adjective.ID, "manchmal"); err != nil {
		t.Fatalf("RecordAssignment() error = %v", err)
	}

	details, err := env.analytics.GetSessionDetails(session.ID)
	if err != nil {
		t.Fatalf("GetSessionDetails() error = %v", err)
	}
	if details.ListName == nil || *details.ListName != defaultList.Name {
		t.Errorf("ListName = %v, want %q", details.ListName, defaultList.Name)
	}
	if len(details.Assignments) != 1 {
		t.Fatalf("len(Assignments) = %d, want 1", len(details.Assignments))
	}
	if details.Assignments[0].Word != "geduldig" {
		t.Errorf("assignment word = %q, want %q", details.Assignments[0].Word, "geduldig")
	}

	if _, err := env.analytics.GetSessionDetails("no-such-session"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("GetSessionDetails(unknown) error = %v, want ErrSessionNotFound", err)
	}
}
