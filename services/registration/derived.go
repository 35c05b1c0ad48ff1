package registration

import (
	"fmt"
	"strings"
	"time"
)

// timeNow is stubbed in tests that pin the clock for age boundaries.
var timeNow = time.Now

// birthDateLayout is the wire format for date-of-birth values.
const birthDateLayout = "2006-01-02"

// ParseBirthDate parses a date-of-birth string.
func ParseBirthDate(s string) (time.Time, error) {
	return time.Parse(birthDateLayout, s)
}

// AgeFromDate computes whole years between dob and now, calendar-accurate:
// the year difference is reduced by one until the birthday has passed.
func AgeFromDate(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() ||
		(now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// ZodiacSign returns the western zodiac sign for a month/day pair.
func ZodiacSign(month time.Month, day int) string {
	switch month {
	case time.January:
		if day <= 19 {
			return "Capricorn"
		}
		return "Aquarius"
	case time.February:
		if day <= 18 {
			return "Aquarius"
		}
		return "Pisces"
	case time.March:
		if day <= 20 {
			return "Pisces"
		}
		return "Aries"
	case time.April:
		if day <= 19 {
			return "Aries"
		}
		return "Taurus"
	case time.May:
		if day <= 20 {
			return "Taurus"
		}
		return "Gemini"
	case time.June:
		if day <= 20 {
			return "Gemini"
		}
		return "Cancer"
	case time.July:
		if day <= 22 {
			return "Cancer"
		}
		return "Leo"
	case time.August:
		if day <= 22 {
			return "Leo"
		}
		return "Virgo"
	case time.September:
		if day <= 22 {
			return "Virgo"
		}
		return "Libra"
	case time.October:
		if day <= 22 {
			return "Libra"
		}
		return "Scorpio"
	case time.November:
		if day <= 21 {
			return "Scorpio"
		}
		return "Sagittarius"
	default:
		if day <= 21 {
			return "Sagittarius"
		}
		return "Capricorn"
	}
}

// RecomputeDerived refreshes the derived age and zodiacSign values from the
// current date-of-birth input. It only ever writes the "age" and "zodiacSign"
// keys, so recomputation is idempotent and cannot clobber unrelated fields.
// The birth date is taken from the schema's date-of-birth field when set, or
// assembled from the birthDay/birthMonth/birthYear trio.
func RecomputeDerived(schema CompiledSchema, values map[string]any) {
	dob, ok := currentBirthDate(schema, values)
	if !ok {
		return
	}
	values["age"] = AgeFromDate(dob, timeNow())
	values["zodiacSign"] = ZodiacSign(dob.Month(), dob.Day())
}

func currentBirthDate(schema CompiledSchema, values map[string]any) (time.Time, bool) {
	for key, rule := range schema {
		if rule.Kind != RuleDateOfBirth {
			continue
		}
		str := strings.TrimSpace(asString(values[key]))
		if str == "" {
			continue
		}
		if dob, err := ParseBirthDate(str); err == nil {
			return dob, true
		}
	}

	day, dayOK := asNumber(values["birthDay"])
	month, monthOK := asNumber(values["birthMonth"])
	year, yearOK := asNumber(values["birthYear"])
	if !dayOK || !monthOK || !yearOK {
		return time.Time{}, false
	}
	dob := time.Date(int(year), time.Month(int(month)), int(day), 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (e.g. Feb 30); reject inputs that moved.
	if dob.Day() != int(day) || dob.Month() != time.Month(int(month)) {
		return time.Time{}, false
	}
	return dob, true
}

// isDerivedTrigger reports whether changing this field must refresh the
// derived age/zodiac values.
func isDerivedTrigger(schema CompiledSchema, id string) bool {
	if id == "birthDay" || id == "birthMonth" || id == "birthYear" {
		return true
	}
	rule, ok := schema[id]
	return ok && rule.Kind == RuleDateOfBirth
}

// GenerateBio synthesizes a profile bio from values already present in the
// form. It is deterministic: the same form values always yield the same bio.
func GenerateBio(values map[string]any) string {
	name := strings.TrimSpace(asString(values["firstName"]))
	if name == "" {
		name = "New here"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hi, I'm %s", name)

	if occupations, _ := asStringList(values["occupation"]); len(occupations) > 0 {
		fmt.Fprintf(&b, ", working in %s", strings.ToLower(occupations[0]))
	}
	if location := strings.TrimSpace(asString(values["location"])); location != "" {
		fmt.Fprintf(&b, ", based in %s", location)
	}
	b.WriteString(".")

	likes, _ := asStringList(values["hobbies"])
	if len(likes) == 0 {
		likes, _ = asStringList(values["interests"])
	}
	if len(likes) > 0 {
		if len(likes) > 3 {
			likes = likes[:3]
		}
		fmt.Fprintf(&b, " I love %s.", joinNaturally(likes))
	}

	if goal := strings.TrimSpace(asString(values["relationshipGoals"])); goal != "" {
		fmt.Fprintf(&b, " Looking for %s.", strings.ToLower(goal))
	} else {
		b.WriteString(" Excited to meet someone genuine.")
	}
	return b.String()
}

// joinNaturally renders ["a","b","c"] as "a, b and c".
func joinNaturally(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}
