package core

// Religion is the confession a parish belongs to.
type Religion string

const (
	ReligionOrthodox      Religion = "orthodox"
	ReligionGreekCatholic Religion = "greek_catholic"
	ReligionRomanCatholic Religion = "roman_catholic"
	ReligionLutheran      Religion = "lutheran"
	ReligionJudaism       Religion = "judaism"
)

// religionLabels maps religions to their Ukrainian display names.
var religionLabels = map[Religion]string{
	ReligionGreekCatholic: "Греко-католицька",
	ReligionRomanCatholic: "Римо-католицька",
	ReligionOrthodox:      "Православна",
	ReligionLutheran:      "Лютеранська",
	ReligionJudaism:       "Іудаїзм",
}

// ParseReligion converts a raw religion value from a data artifact.
// The legacy "jewish" value is remapped to judaism. Unknown values are
// passed through unchanged so that parishes with unexpected confessions
// are still indexed; Known reports whether the value is recognized.
func ParseReligion(raw string) Religion {
	if raw == "jewish" {
		return ReligionJudaism
	}
	return Religion(raw)
}

// Known reports whether the religion is one of the recognized confessions.
func (r Religion) Known() bool {
	_, ok := religionLabels[r]
	return ok
}

// Label returns the Ukrainian display name, falling back to the raw value
// for unrecognized confessions.
func (r Religion) Label() string {
	if label, ok := religionLabels[r]; ok {
		return label
	}
	return string(r)
}
