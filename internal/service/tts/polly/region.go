package polly

import "strings"

// DefaultRegion используется, если регион не задан ни флагом, ни окружением AWS.
const DefaultRegion = "eu-west-1"

// ResolveRegion возвращает первый непустой кандидат: явный override,
// регион из окружения/shared config AWS, затем DefaultRegion.
func ResolveRegion(override, fromEnv string) string {
	for _, cand := range []string{override, fromEnv} {
		if c := strings.TrimSpace(cand); c != "" {
			return c
		}
	}
	return DefaultRegion
}
