package models

const OtherPlatform = "Other"

// Platforms lists the request platforms offered by the creation form.
var Platforms = []string{"AA", "BB", "CC", "DD", OtherPlatform}

func IsKnownPlatform(platform string) bool {
	for _, p := range Platforms {
		if p == platform {
			return true
		}
	}
	return false
}
