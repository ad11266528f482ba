package password

import (
	"fmt"
	"strings"
	"unicode"
)

// Параметры политики надёжности паролей.
const (
	MinLength = 8
	// MaxBytes ограничение bcrypt на длину входа.
	MaxBytes = 72
)

var commonPasswords = map[string]struct{}{
	"password": {}, "password1": {}, "password123": {}, "12345678": {}, "123456789": {},
	"1234567890": {}, "qwerty123": {}, "qwertyuiop": {}, "iloveyou": {}, "sunshine": {},
	"princess": {}, "football": {}, "baseball": {}, "welcome1": {}, "admin123": {},
	"letmein1": {}, "abc12345": {}, "11111111": {}, "00000000": {}, "passw0rd": {},
	"trustno1": {}, "superman": {}, "whatever": {}, "starwars": {}, "dragon123": {},
}

// Policy проверяет пароль при регистрации.
type Policy struct {
	MinLength int
}

// DefaultPolicy политика по умолчанию.
func DefaultPolicy() Policy {
	return Policy{MinLength: MinLength}
}

// Check возвращает список нарушений. Пустой список означает, что пароль подходит.
// username и email используются для проверки на сходство с личными данными.
func (p Policy) Check(password, username, email string) []string {
	var problems []string

	if len([]rune(password)) < p.MinLength {
		problems = append(problems,
			fmt.Sprintf("this password is too short. It must contain at least %d characters.", p.MinLength))
	}
	if len(password) > MaxBytes {
		problems = append(problems,
			fmt.Sprintf("this password is too long. It must contain at most %d bytes.", MaxBytes))
	}
	if password != "" && isNumeric(password) {
		problems = append(problems, "this password is entirely numeric.")
	}
	if _, ok := commonPasswords[strings.ToLower(password)]; ok {
		problems = append(problems, "this password is too common.")
	}
	if similar(password, username) || similar(password, localPart(email)) {
		problems = append(problems, "the password is too similar to the personal information.")
	}
	return problems
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// similar считает пароль похожим на атрибут, если один содержит другой
// без учёта регистра. Атрибуты короче трёх символов не проверяются.
func similar(password, attr string) bool {
	if len(attr) < 3 || password == "" {
		return false
	}
	p, a := strings.ToLower(password), strings.ToLower(attr)
	return strings.Contains(p, a) || strings.Contains(a, p)
}

func localPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
