package chartab

// Code points of the hub script the rule pipelines rely on.
const (
	HubConsonantFirst = 'ක' // ka
	HubConsonantLast  = 'ෆ'
	HubVirama         = '්' // al-lakuna
	HubSignFirst      = 'ා' // first dependent vowel sign
	HubSignLast       = 'ෟ'
	HubNiggahita      = 'ං'
	HubVowelA         = 'අ' // independent a
)

// IsHubConsonant reports whether r is a consonant letter of the hub script.
func IsHubConsonant(r rune) bool {
	return r >= HubConsonantFirst && r <= HubConsonantLast
}

// IsHubVowelSign reports whether r is a dependent vowel sign of the hub script.
func IsHubVowelSign(r rune) bool {
	return r >= HubSignFirst && r <= HubSignLast
}

// independentToDependent maps hub independent vowels to the dependent sign
// written after a consonant. Independent a maps to nothing, the inherent vowel.
var independentToDependent = map[rune]string{
	'අ': "",
	'ආ': "ා",
	'ඉ': "ි",
	'ඊ': "ී",
	'උ': "ු",
	'ඌ': "ූ",
	'එ': "ෙ",
	'ඔ': "ො",
}

// DependentSign returns the dependent vowel sign for hub independent vowel r.
func DependentSign(r rune) (string, bool) {
	sign, ok := independentToDependent[r]
	return sign, ok
}
