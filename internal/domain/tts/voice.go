package tts

// Gender is the SSML gender a voice reports.
type Gender int

const (
	GenderUnspecified Gender = iota
	GenderMale
	GenderFemale
	GenderNeutral
)

// String returns the label the service uses for the gender.
func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "MALE"
	case GenderFemale:
		return "FEMALE"
	case GenderNeutral:
		return "NEUTRAL"
	default:
		return "SSML_VOICE_GENDER_UNSPECIFIED"
	}
}

// Voice is a named synthetic speaker profile.
type Voice struct {
	Name                   string
	LanguageCodes          []string
	Gender                 Gender
	NaturalSampleRateHertz int32
}
