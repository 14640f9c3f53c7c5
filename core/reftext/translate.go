package reftext

// Translate re-expresses a reference written in one language in another.
func Translate(text, from, to string) (string, error) {
	r, err := Parse(text, from)
	if err != nil {
		return "", err
	}
	return Format(r, to)
}

// Validate checks that text parses as a reference in the given language.
func Validate(text, code string) error {
	_, err := Parse(text, code)
	return err
}
