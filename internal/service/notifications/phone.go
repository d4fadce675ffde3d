package notifications

import "strings"

// FormatPhoneNumber приводит номер телефона к формату E.164.
// Номера с префиксом "+" не изменяются. Национальный формат
// (trunkPrefix + 11 цифр, например "07911123456") переводится в
// международный с кодом страны. Все остальное очищается от нецифровых
// символов и получает префикс "+"; номер никогда не отклоняется.
func FormatPhoneNumber(phoneNumber, countryCode, trunkPrefix string) string {
	if strings.HasPrefix(phoneNumber, "+") {
		return phoneNumber
	}

	var digits strings.Builder
	for _, r := range phoneNumber {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	digitsOnly := digits.String()

	if strings.HasPrefix(digitsOnly, trunkPrefix) && len(digitsOnly) == 11 {
		// Отбрасываем ведущий ноль национального формата
		return countryCode + digitsOnly[1:]
	}

	return "+" + digitsOnly
}
