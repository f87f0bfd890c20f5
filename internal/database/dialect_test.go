package database

import "testing"

func TestRewriteQuery(t *testing.T) {
	query := "INSERT INTO lists (name, slug) VALUES (?, ?)"

	tests := []struct {
		name    string
		dialect Dialect
		want    string
	}{
		{"sqlite keeps placeholders", NewSQLiteDialect(), "INSERT INTO lists (name, slug) VALUES (?, ?)"},
		{"mysql keeps placeholders", NewMySQLDialect(), "INSERT INTO lists (name, slug) VALUES (?, ?)"},
		{"postgres numbers placeholders", NewPostgresDialect(), "INSERT INTO lists (name, slug) VALUES ($1, $2)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dialect.RewriteQuery(query); got != tt.want {
				t.Errorf("RewriteQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUpsertClause(t *testing.T) {
	uniqueCols := []string{"session_id", "adjective_id"}
	updateCols := []string{"bucket", "assigned_at"}

	tests := []struct {
		name    string
		dialect Dialect
		want    string
	}{
		{
			"sqlite",
			NewSQLiteDialect(),
			"ON CONFLICT(session_id, adjective_id) DO UPDATE SET bucket = excluded.bucket, assigned_at = excluded.assigned_at",
		},
		{
			"postgres",
			NewPostgresDialect(),
			"ON CONFLICT(session_id, adjective_id) DO UPDATE SET bucket = excluded.bucket, assigned_at = excluded.assigned_at",
		},
		{
			"mysql",
			NewMySQLDialect(),
			"ON DUPLICATE KEY UPDATE bucket = VALUES(bucket), assigned_at = VALUES(assigned_at)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dialect.UpsertClause(uniqueCols, updateCols); got != tt.want {
				t.Errorf("UpsertClause() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBoolValue(t *testing.T) {
	tests := []struct {
		name      string
		dialect   Dialect
		wantTrue  string
		wantFalse string
	}{
		{"sqlite", NewSQLiteDialect(), "1", "0"},
		{"postgres", NewPostgresDialect(), "TRUE", "FALSE"},
		{"mysql", NewMySQLDialect(), "TRUE", "FALSE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dialect.BoolValue(true); got != tt.wantTrue {
				t.Errorf("BoolValue(true) = %q, want %q", got, tt.wantTrue)
			}
			if got := tt.dialect.BoolValue(false); got != tt.wantFalse {
				t.Errorf("BoolValue(false) = %q, want %q", got, tt.wantFalse)
			}
		})
	}
}

func TestSupportsLastInsertId(t *testing.T) {
	if !NewSQLiteDialect().SupportsLastInsertId() {
		t.Error("sqlite should support LastInsertId")
	}
	if !NewMySQLDialect().SupportsLastInsertId() {
		t.Error("mysql should support LastInsertId")
	}
	if NewPostgresDialect().SupportsLastInsertId() {
		t.Error("postgres must use RETURNING instead of LastInsertId")
	}
}
