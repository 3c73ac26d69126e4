package catalog

import "sort"

// CoursesByDifficulty filters courses by difficulty, preserving order.
func CoursesByDifficulty(courses []Course, d Difficulty) []Course {
	var out []Course
	for _, c := range courses {
		if c.Difficulty == d {
			out = append(out, c)
		}
	}
	return out
}

// CoursesByLanguage filters courses by language, preserving order.
func CoursesByLanguage(courses []Course, language string) []Course {
	var out []Course
	for _, c := range courses {
		if c.Language == language {
			out = append(out, c)
		}
	}
	return out
}

// Languages returns the distinct course languages, sorted.
func Languages(courses []Course) []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range courses {
		if !seen[c.Language] {
			seen[c.Language] = true
			out = append(out, c.Language)
		}
	}
	sort.Strings(out)
	return out
}

// SkillsByCategory filters skills by category, preserving order.
func SkillsByCategory(skills []BusinessSkill, cat SkillCategory) []BusinessSkill {
	var out []BusinessSkill
	for _, s := range skills {
		if s.Category == cat {
			out = append(out, s)
		}
	}
	return out
}

// ChallengesByType filters challenges by type, preserving order.
func ChallengesByType(challenges []EntertainmentChallenge, t ChallengeType) []EntertainmentChallenge {
	var out []EntertainmentChallenge
	for _, c := range challenges {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// ChallengesByLanguage filters challenges by language, preserving order.
func ChallengesByLanguage(challenges []EntertainmentChallenge, language string) []EntertainmentChallenge {
	var out []EntertainmentChallenge
	for _, c := range challenges {
		if c.Language == language {
			out = append(out, c)
		}
	}
	return out
}

// ChallengesByDifficulty filters challenges by difficulty, preserving order.
func ChallengesByDifficulty(challenges []EntertainmentChallenge, d ChallengeDifficulty) []EntertainmentChallenge {
	var out []EntertainmentChallenge
	for _, c := range challenges {
		if c.Difficulty == d {
			out = append(out, c)
		}
	}
	return out
}
