package sqlcgen

type Category struct {
	ID   int64
	Type string
}

type Question struct {
	ID         int64
	Question   string
	Answer     string
	Category   int64
	Difficulty int16
}
