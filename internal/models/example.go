package models

// Example is one generated sentence pair. Danish is the sentence in the
// language being learned, English is its translation.
type Example struct {
	Danish  string `json:"danish"`
	English string `json:"english"`
}

func (e Example) IsEmpty() bool {
	return e.Danish == "" && e.English == ""
}

type AddExampleOptions struct {
	Append  bool
	Force   bool
	MaxKeep int
}

type ExampleResult struct {
	Example  Example   `json:"example"`
	Examples []Example `json:"examples"`
}
