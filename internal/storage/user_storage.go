package storage

import (
	"database/sql"
	"errors"

	"modernc.org/sqlite"

	"MemberDirectory_UnityProject/internal/models"
)

var (
	ErrEmailExists  = errors.New("email already exists")
	ErrUserNotFound = errors.New("user not found")
)

// sqlite extended result code for a UNIQUE constraint violation
const sqliteConstraintUnique = 2067

func CreateUser(user models.User) error {
	stmt, err := db.Prepare("INSERT INTO users(id, email, username, password_hash, kaonavi_code, chatwork_id, is_active) VALUES(?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.Exec(user.ID, user.Email, user.Username, user.PasswordHash, user.KaonaviCode, user.ChatworkID, user.IsActive)
	if err != nil {
		var sqliteErr *sqlite.Error
		if errors.As(err, &sqliteErr) {
			if sqliteErr.Code() == sqliteConstraintUnique {
				return ErrEmailExists
			}
		}
		return err
	}
	return nil
}

func GetUserByID(id string) (models.User, error) {
	return scanUser(db.QueryRow(
		"SELECT id, email, username, password_hash, kaonavi_code, chatwork_id, is_active FROM users WHERE id = ?", id))
}

func GetUserByKaonaviCode(code string) (models.User, error) {
	return scanUser(db.QueryRow(
		"SELECT id, email, username, password_hash, kaonavi_code, chatwork_id, is_active FROM users WHERE kaonavi_code = ?", code))
}

func UpdateUser(user models.User) error {
	result, err := db.Exec(
		"UPDATE users SET email = ?, username = ?, password_hash = ?, kaonavi_code = ?, chatwork_id = ?, is_active = ? WHERE id = ?",
		user.Email, user.Username, user.PasswordHash, user.KaonaviCode, user.ChatworkID, user.IsActive, user.ID)
	if err != nil {
		var sqliteErr *sqlite.Error
		if errors.As(err, &sqliteErr) {
			if sqliteErr.Code() == sqliteConstraintUnique {
				return ErrEmailExists
			}
		}
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	if err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.PasswordHash,
		&user.KaonaviCode,
		&user.ChatworkID,
		&user.IsActive,
	); err != nil {
		if err == sql.ErrNoRows {
			return user, ErrUserNotFound
		}
		return user, err
	}
	return user, nil
}

// Users adapts the package-level queries to the directory service's
// lookup interface.
type Users struct{}

func (Users) UserByID(id string) (models.User, bool, error) {
	user, err := GetUserByID(id)
	if errors.Is(err, ErrUserNotFound) {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, err
	}
	return user, true, nil
}

func (Users) UserByKaonaviCode(code string) (models.User, bool, error) {
	user, err := GetUserByKaonaviCode(code)
	if errors.Is(err, ErrUserNotFound) {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, err
	}
	return user, true, nil
}
