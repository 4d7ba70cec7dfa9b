package domain

// Voice describes one provider voice as listed by /voices.
type Voice struct {
	Name                   string   `json:"name"`
	LanguageCodes          []string `json:"languageCodes"`
	SsmlGender             string   `json:"ssmlGender"`
	NaturalSampleRateHertz int      `json:"naturalSampleRateHertz"`
}

// PrimaryLanguage is the language code sent with synthesis requests.
func (v Voice) PrimaryLanguage() string {
	if len(v.LanguageCodes) > 0 && v.LanguageCodes[0] != "" {
		return v.LanguageCodes[0]
	}
	return "en-US"
}

// Gender falls back to NEUTRAL when the provider left it unspecified.
func (v Voice) Gender() string {
	if v.SsmlGender == "" || v.SsmlGender == "SSML_VOICE_GENDER_UNSPECIFIED" {
		return "NEUTRAL"
	}
	return v.SsmlGender
}

type VoiceList struct {
	Voices []Voice `json:"voices"`
}
