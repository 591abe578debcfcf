package utils

import "time"

// AgeAt derives whole years between dateOfBirth and the reference day,
// subtracting one when the birthday has not yet occurred that year.
func AgeAt(dateOfBirth, at time.Time) int {
	age := at.Year() - dateOfBirth.Year()
	if at.Month() < dateOfBirth.Month() ||
		(at.Month() == dateOfBirth.Month() && at.Day() < dateOfBirth.Day()) {
		age--
	}
	return age
}

// Age derives the current age from a date of birth.
func Age(dateOfBirth time.Time) int {
	return AgeAt(dateOfBirth, time.Now())
}
