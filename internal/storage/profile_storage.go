package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"modernc.org/sqlite"

	"MemberDirectory_UnityProject/internal/models"
)

var (
	ErrProfileExists   = errors.New("profile already exists")
	ErrProfileNotFound = errors.New("profile not found")
)

func CreateProfile(profile models.Profile) (models.Profile, error) {
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	stmt, err := db.Prepare("INSERT INTO profiles(user_id, nickname, location, hobby, tweet, introduction, created_at, updated_at) VALUES(?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return models.Profile{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(profile.UserID, profile.Nickname, profile.Location, profile.Hobby, profile.Tweet, profile.Introduction, profile.CreatedAt, profile.UpdatedAt)
	if err != nil {
		var sqliteErr *sqlite.Error
		if errors.As(err, &sqliteErr) {
			if sqliteErr.Code() == sqliteConstraintUnique {
				return models.Profile{}, ErrProfileExists
			}
		}
		return models.Profile{}, err
	}
	return profile, nil
}

func GetProfileByUserID(userID string) (models.Profile, error) {
	var profile models.Profile
	var createdStr, updatedStr string

	row := db.QueryRow(
		"SELECT user_id, nickname, location, hobby, tweet, introduction, created_at, updated_at FROM profiles WHERE user_id = ?", userID)
	if err := row.Scan(
		&profile.UserID,
		&profile.Nickname,
		&profile.Location,
		&profile.Hobby,
		&profile.Tweet,
		&profile.Introduction,
		&createdStr,
		&updatedStr,
	); err != nil {
		if err == sql.ErrNoRows {
			return profile, ErrProfileNotFound
		}
		return profile, err
	}

	// sqlite stores DATETIME columns as text
	created, err := parseStoredTime(createdStr)
	if err != nil {
		return profile, err
	}
	updated, err := parseStoredTime(updatedStr)
	if err != nil {
		return profile, err
	}
	profile.CreatedAt = created
	profile.UpdatedAt = updated
	return profile, nil
}

func UpdateProfile(profile models.Profile) (models.Profile, error) {
	profile.UpdatedAt = time.Now()

	result, err := db.Exec(
		"UPDATE profiles SET nickname = ?, location = ?, hobby = ?, tweet = ?, introduction = ?, updated_at = ? WHERE user_id = ?",
		profile.Nickname, profile.Location, profile.Hobby, profile.Tweet, profile.Introduction, profile.UpdatedAt, profile.UserID)
	if err != nil {
		return models.Profile{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return models.Profile{}, err
	}
	if affected == 0 {
		return models.Profile{}, ErrProfileNotFound
	}
	return profile, nil
}

func parseStoredTime(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q in profiles row", value)
}
