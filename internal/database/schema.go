package database

import (
	"fmt"

	"gorm.io/gorm"
)

// Initialize creates the application schema if it is not there yet. It is
// run on every start; a failure is fatal to the caller since there is no
// partial-schema mode.
//
// Table order matters only where a foreign key forces it: users first, then
// skills, then the tables referencing them.
func Initialize(db *gorm.DB) error {
	if db.Dialector.Name() == "sqlite" {
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return fmt.Errorf("enable foreign keys: %w", err)
		}
	}

	pk := "BIGSERIAL PRIMARY KEY"
	if db.Dialector.Name() == "sqlite" {
		pk = "INTEGER PRIMARY KEY AUTOINCREMENT"
	}

	stmts := []struct {
		table string
		ddl   string
	}{
		{"users", fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS users (
				id %s,
				name TEXT NOT NULL,
				email TEXT NOT NULL UNIQUE,
				password TEXT NOT NULL,
				avatar TEXT NOT NULL DEFAULT '',
				avatar_public_id TEXT,
				bio TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			)`, pk)},
		{"skills", fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS skills (
				id %s,
				user_id BIGINT NOT NULL,
				title TEXT NOT NULL,
				category TEXT NOT NULL CHECK (category IN ('web', 'design', 'data', 'mobile', 'marketing', 'language')),
				level TEXT NOT NULL DEFAULT 'beginner' CHECK (level IN ('beginner', 'intermediate', 'expert')),
				description TEXT NOT NULL,
				rating REAL NOT NULL DEFAULT 0,
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,

				FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
			)`, pk)},
		{"skill_media", fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS skill_media (
				id %s,
				skill_id BIGINT NOT NULL,
				media_type TEXT NOT NULL DEFAULT 'image' CHECK (media_type IN ('image', 'video')),
				media_url TEXT NOT NULL,
				public_id TEXT,
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,

				FOREIGN KEY (skill_id) REFERENCES skills(id) ON DELETE CASCADE
			)`, pk)},
		{"comments", fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS comments (
				id %s,
				skill_id BIGINT NOT NULL,
				user_id BIGINT NOT NULL,
				text TEXT NOT NULL,
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,

				FOREIGN KEY (skill_id) REFERENCES skills(id) ON DELETE CASCADE,
				FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
			)`, pk)},
		{"user_follows", `
			CREATE TABLE IF NOT EXISTS user_follows (
				follower_id BIGINT NOT NULL,
				following_id BIGINT NOT NULL,
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,

				FOREIGN KEY (follower_id) REFERENCES users(id) ON DELETE CASCADE,
				FOREIGN KEY (following_id) REFERENCES users(id) ON DELETE CASCADE,

				UNIQUE (follower_id, following_id),
				CHECK (follower_id != following_id)
			)`},
	}

	for _, s := range stmts {
		if err := db.Exec(s.ddl).Error; err != nil {
			return fmt.Errorf("create table %s: %w", s.table, err)
		}
	}
	return nil
}
