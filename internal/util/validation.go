package util

import (
	"errors"
	"net/mail"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/nyaruka/phonenumbers"
)

const (
	MaxUsernameLength = 50
	MaxEmailLength    = 100
	MaxPasswordLength = 100
)

var phoneNumberPattern = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)

// ValidatePassword : минимум 6 символов, хотя бы одна цифра и одна заглавная буква
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.New("password must be at least 6 characters long")
	}
	if len(password) > MaxPasswordLength {
		return errors.New("password is too long")
	}

	var hasDigit, hasUpper bool
	for _, c := range password {
		switch {
		case unicode.IsDigit(c):
			hasDigit = true
		case unicode.IsUpper(c):
			hasUpper = true
		}
	}

	if !hasDigit {
		return errors.New("password must include at least one number")
	}
	if !hasUpper {
		return errors.New("password must include at least one upper letter")
	}
	return nil
}

func ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return errors.New("username must not be empty")
	}
	if len([]rune(username)) > MaxUsernameLength {
		return errors.New("username must be at most 50 characters long")
	}
	return nil
}

func ValidateEmail(email string) error {
	if len(email) > MaxEmailLength {
		return errors.New("email must be at most 100 characters long")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errors.New("invalid email address")
	}
	return nil
}

// ValidatePhoneNumber : формат E.164, номер должен быть возможным для кода страны
func ValidatePhoneNumber(phone string) error {
	if !phoneNumberPattern.MatchString(phone) {
		return errors.New("invalid phone number")
	}
	parsed, err := phonenumbers.Parse(phone, "")
	if err != nil || !phonenumbers.IsPossibleNumber(parsed) {
		return errors.New("invalid phone number")
	}
	return nil
}

// ParseDateOfBirth : YYYY-MM-DD, не раньше 1900 года и не в будущем
func ParseDateOfBirth(value string, now time.Time) (time.Time, error) {
	date, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, errors.New("date of birth must be in YYYY-MM-DD format")
	}
	if date.Year() < 1900 {
		return time.Time{}, errors.New("date of birth cannot be before 1900")
	}
	if date.After(now) {
		return time.Time{}, errors.New("date of birth cannot be in the future")
	}
	return date, nil
}

// ValidateImageName : разрешены jpeg, jpg и png, двойные расширения запрещены
func ValidateImageName(filename string) error {
	parts := strings.Split(filename, ".")
	if len(parts) > 2 {
		return errors.New("invalid file name: double extensions are not allowed")
	}
	if len(parts) < 2 {
		return errors.New("only jpeg, jpg, and png files are allowed for images")
	}
	switch strings.ToLower(parts[1]) {
	case "jpeg", "jpg", "png":
		return nil
	default:
		return errors.New("only jpeg, jpg, and png files are allowed for images")
	}
}

// ContentType определяет MIME type изображения по расширению
func ContentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	default:
		return "application/octet-stream"
	}
}
